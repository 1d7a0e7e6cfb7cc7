package postgres

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder with PostgreSQL placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Contains builds a "column contains s" LIKE predicate.
func Contains(column, s string) squirrel.Sqlizer {
	return squirrel.Expr(column+" LIKE ?", "%"+EscapeLike(s)+"%")
}

// HasPrefix builds a "column starts with s" LIKE predicate.
func HasPrefix(column, s string) squirrel.Sqlizer {
	return squirrel.Expr(column+" LIKE ?", EscapeLike(s)+"%")
}
