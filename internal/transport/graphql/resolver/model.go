package resolver

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	gql "github.com/SiphoChris/afrilex/internal/transport/graphql"
)

// WordFilter is the words query filter input.
type WordFilter struct {
	Language  string
	Search    string
	Letter    string
	Status    *domain.WordStatus
	Published *bool
	CreatedBy *uuid.UUID
}

// WordConnection is one page of words with the total match count.
type WordConnection struct {
	Items []domain.Word
	Total int
}

func wordFilterArg(v any) (*WordFilter, error) {
	if v == nil {
		return nil, nil
	}
	in, ok := v.(map[string]any)
	if !ok {
		return nil, domain.NewValidationError("filter", "must be an object")
	}

	f := &WordFilter{}
	f.Language, _ = in["language"].(string)
	f.Search, _ = in["search"].(string)
	f.Letter, _ = in["letter"].(string)
	if s, ok := in["status"].(string); ok {
		status := domain.WordStatus(s)
		if !status.IsValid() {
			return nil, domain.NewValidationError("filter.status", "invalid status")
		}
		f.Status = &status
	}
	if b, ok := in["published"].(bool); ok {
		f.Published = &b
	}
	if raw, ok := in["createdBy"]; ok && raw != nil {
		id, err := gql.UnmarshalUUID(raw)
		if err != nil {
			return nil, domain.NewValidationError("filter.createdBy", "invalid UUID")
		}
		f.CreatedBy = &id
	}
	return f, nil
}

// intArg reads an Int argument. Literals arrive as int64 and variables as
// int64 or json.Number.
func intArg(args map[string]any, name string) (int, error) {
	switch n := args[name].(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, domain.NewValidationError(name, "must be an integer")
		}
		return int(i), nil
	default:
		return 0, domain.NewValidationError(name, fmt.Sprintf("unexpected %T", n))
	}
}
