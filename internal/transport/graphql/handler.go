// Package graphql serves the read-only admin GraphQL surface. Queries are
// parsed and validated against the embedded schema and resolved by the
// field resolvers registered in Objects.
package graphql

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/errcode"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator"
)

const maxBodyBytes = 1 << 20

//go:embed schema.graphqls
var schemaSDL string

var schema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL})

// Schema returns the parsed admin schema.
func Schema() *ast.Schema { return schema }

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler executes POSTed GraphQL queries.
type Handler struct {
	objects Objects
	present graphql.ErrorPresenterFunc
	log     *slog.Logger
}

// NewHandler creates a Handler resolving fields through objects.
func NewHandler(objects Objects, log *slog.Logger) *Handler {
	return &Handler{objects: objects, present: NewErrorPresenter(log), log: log}
}

// ServeHTTP runs one query.
// POST /api/v1/admin/graphql
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, nil, gqlerror.List{gqlerror.Errorf("json request body could not be decoded: %s", err)})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		h.write(w, http.StatusUnprocessableEntity, nil, gqlerror.List{withCode(gqlerror.Errorf("no operation provided"), errcode.ValidationFailed)})
		return
	}

	doc, errs := gqlparser.LoadQueryWithRules(schema, req.Query, nil)
	if len(errs) > 0 {
		for _, err := range errs {
			code := errcode.ParseFailed
			if err.Rule != "" {
				code = errcode.ValidationFailed
			}
			withCode(err, code)
		}
		h.write(w, http.StatusUnprocessableEntity, nil, errs)
		return
	}

	op := doc.Operations.ForName(req.OperationName)
	if op == nil {
		h.write(w, http.StatusUnprocessableEntity, nil, gqlerror.List{withCode(gqlerror.Errorf("operation %q not found", req.OperationName), errcode.ValidationFailed)})
		return
	}
	if op.Operation != ast.Query {
		h.write(w, http.StatusUnprocessableEntity, nil, gqlerror.List{withCode(gqlerror.Errorf("only queries are served"), errcode.ValidationFailed)})
		return
	}

	vars, err := validator.VariableValues(schema, op, req.Variables)
	if err != nil {
		h.write(w, http.StatusUnprocessableEntity, nil, gqlerror.List{withCode(gqlerror.WrapIfUnwrapped(err), errcode.ValidationFailed)})
		return
	}

	exec := &executor{
		schema:    schema,
		objects:   h.objects,
		present:   h.present,
		vars:      vars,
		fragments: doc.Fragments,
	}
	data, fieldErrs := exec.run(r.Context(), op)
	h.write(w, http.StatusOK, data, fieldErrs)
}

func (h *Handler) write(w http.ResponseWriter, status int, data graphql.Marshaler, errs gqlerror.List) {
	resp := graphql.Response{Errors: errs}
	if data != nil {
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		resp.Data = buf.Bytes()
	}

	body, err := json.Marshal(resp)
	if err != nil {
		h.log.Error("encode graphql response", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func withCode(err *gqlerror.Error, code string) *gqlerror.Error {
	if err.Extensions == nil {
		err.Extensions = map[string]any{}
	}
	err.Extensions["code"] = code
	return err
}
