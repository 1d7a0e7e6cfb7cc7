package graphql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// FieldFunc resolves one field of obj. args holds the coerced arguments.
// A nil result is GraphQL null.
type FieldFunc func(ctx context.Context, obj any, args map[string]any) (any, error)

// Objects maps an object type name to the resolvers of its fields.
type Objects map[string]map[string]FieldFunc

var errNull = errors.New("must not be null")

// executor runs one validated operation. Field errors are collected and the
// nearest nullable ancestor of a failed non-null field becomes null.
type executor struct {
	schema    *ast.Schema
	objects   Objects
	present   graphql.ErrorPresenterFunc
	vars      map[string]any
	fragments ast.FragmentDefinitionList

	mu   sync.Mutex
	errs gqlerror.List
}

// collectedField is a response key with its merged sub-selections.
type collectedField struct {
	key        string
	field      *ast.Field
	selections ast.SelectionSet
}

func (e *executor) run(ctx context.Context, op *ast.OperationDefinition) (graphql.Marshaler, gqlerror.List) {
	root := e.schema.Query
	data, ok := e.executeObject(ctx, root, op.SelectionSet, nil, nil)
	if !ok {
		data = graphql.Null
	}
	return data, e.errs
}

// executeObject resolves set against obj. It reports false when a non-null
// field of the object ended up null.
func (e *executor) executeObject(ctx context.Context, def *ast.Definition, set ast.SelectionSet, obj any, path ast.Path) (graphql.Marshaler, bool) {
	fields := e.collectFields(def.Name, set)
	out := &object{
		keys:   make([]string, 0, len(fields)),
		values: make([]graphql.Marshaler, 0, len(fields)),
	}
	for _, cf := range fields {
		if cf.field.Name == "__typename" {
			out.add(cf.key, graphql.MarshalString(def.Name))
			continue
		}
		val, ok := e.executeField(ctx, def, cf, obj, appendPath(path, ast.PathName(cf.key)))
		if !ok {
			return nil, false
		}
		out.add(cf.key, val)
	}
	return out, true
}

func (e *executor) executeField(ctx context.Context, parent *ast.Definition, cf *collectedField, obj any, path ast.Path) (graphql.Marshaler, bool) {
	def := cf.field.Definition
	resolve, found := e.objects[parent.Name][cf.field.Name]
	if def == nil || !found {
		e.addError(ctx, path, fmt.Errorf("field %s.%s is not resolvable", parent.Name, cf.field.Name))
		return graphql.Null, def == nil || !def.Type.NonNull
	}

	val, err := e.resolve(ctx, resolve, cf.field, obj)
	if err != nil {
		e.addError(ctx, path, err)
		return graphql.Null, !def.Type.NonNull
	}
	return e.complete(ctx, def.Type, cf.selections, val, path)
}

// resolve calls fn, turning a panic into a field error.
func (e *executor) resolve(ctx context.Context, fn FieldFunc, field *ast.Field, obj any) (val any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val, err = nil, fmt.Errorf("panic resolving %s: %v", field.Name, rec)
		}
	}()
	return fn(ctx, obj, field.ArgumentMap(e.vars))
}

func (e *executor) complete(ctx context.Context, typ *ast.Type, set ast.SelectionSet, val any, path ast.Path) (graphql.Marshaler, bool) {
	if val == nil {
		if typ.NonNull {
			e.addError(ctx, path, errNull)
			return nil, false
		}
		return graphql.Null, true
	}

	if typ.Elem != nil {
		items, ok := val.([]any)
		if !ok {
			e.addError(ctx, path, fmt.Errorf("expected a list, got %T", val))
			return graphql.Null, !typ.NonNull
		}
		list, ok := e.completeList(ctx, typ.Elem, set, items, path)
		if !ok {
			return graphql.Null, !typ.NonNull
		}
		return list, true
	}

	def := e.schema.Types[typ.NamedType]
	if def.Kind == ast.Object {
		out, ok := e.executeObject(ctx, def, set, val, path)
		if !ok {
			return graphql.Null, !typ.NonNull
		}
		return out, true
	}

	out, err := marshalLeaf(def, val)
	if err != nil {
		e.addError(ctx, path, err)
		return graphql.Null, !typ.NonNull
	}
	return out, true
}

// completeList completes object items concurrently so that batch loaders
// see every key of the page in one window.
func (e *executor) completeList(ctx context.Context, elem *ast.Type, set ast.SelectionSet, items []any, path ast.Path) (graphql.Array, bool) {
	out := make(graphql.Array, len(items))
	if e.schema.Types[elem.Name()].Kind != ast.Object {
		for i, item := range items {
			v, ok := e.complete(ctx, elem, set, item, appendPath(path, ast.PathIndex(i)))
			if !ok {
				return nil, false
			}
			out[i] = v
		}
		return out, true
	}

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok := e.complete(ctx, elem, set, item, appendPath(path, ast.PathIndex(i)))
			if !ok {
				failed.Store(true)
				return
			}
			out[i] = v
		}()
	}
	wg.Wait()
	if failed.Load() {
		return nil, false
	}
	return out, true
}

// collectFields flattens fragments and merges fields sharing a response key.
func (e *executor) collectFields(typeName string, set ast.SelectionSet) []*collectedField {
	var (
		fields  []*collectedField
		byKey   = make(map[string]*collectedField)
		visited = make(map[string]bool)
	)

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.Field:
				if !e.included(s.Directives) {
					continue
				}
				key := s.Alias
				if key == "" {
					key = s.Name
				}
				if cf, ok := byKey[key]; ok {
					cf.selections = append(cf.selections, s.SelectionSet...)
					continue
				}
				cf := &collectedField{key: key, field: s, selections: slices.Clone(s.SelectionSet)}
				byKey[key] = cf
				fields = append(fields, cf)

			case *ast.InlineFragment:
				if !e.included(s.Directives) || (s.TypeCondition != "" && s.TypeCondition != typeName) {
					continue
				}
				walk(s.SelectionSet)

			case *ast.FragmentSpread:
				if !e.included(s.Directives) || visited[s.Name] {
					continue
				}
				visited[s.Name] = true
				frag := s.Definition
				if frag == nil {
					frag = e.fragments.ForName(s.Name)
				}
				if frag == nil || frag.TypeCondition != typeName {
					continue
				}
				walk(frag.SelectionSet)
			}
		}
	}
	walk(set)
	return fields
}

// included applies @skip and @include.
func (e *executor) included(dirs ast.DirectiveList) bool {
	if d := dirs.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(e.vars)["if"].(bool); skip {
			return false
		}
	}
	if d := dirs.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(e.vars)["if"].(bool); !include {
			return false
		}
	}
	return true
}

func (e *executor) addError(ctx context.Context, path ast.Path, err error) {
	gqlErr := e.present(ctx, gqlerror.WrapPath(path, err))
	e.mu.Lock()
	e.errs = append(e.errs, gqlErr)
	e.mu.Unlock()
}

func appendPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}

func marshalLeaf(def *ast.Definition, v any) (graphql.Marshaler, error) {
	switch def.Name {
	case "UUID":
		if id, ok := v.(uuid.UUID); ok {
			return MarshalUUID(id), nil
		}
	case "DateTime":
		if t, ok := v.(time.Time); ok {
			return MarshalDateTime(t), nil
		}
	case "Int":
		if n, ok := v.(int); ok {
			return graphql.MarshalInt(n), nil
		}
	case "Boolean":
		if b, ok := v.(bool); ok {
			return graphql.MarshalBoolean(b), nil
		}
	case "String":
		if s, ok := v.(string); ok {
			return graphql.MarshalString(s), nil
		}
	}
	if def.Kind == ast.Enum {
		if s, ok := v.(string); ok && def.EnumValues.ForName(s) != nil {
			return graphql.MarshalString(s), nil
		}
	}
	return nil, fmt.Errorf("cannot marshal %T as %s", v, def.Name)
}

// object is a JSON object that keeps the selection order.
type object struct {
	keys   []string
	values []graphql.Marshaler
}

func (o *object) add(key string, v graphql.Marshaler) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

func (o *object) MarshalGQL(w io.Writer) {
	io.WriteString(w, "{")
	for i, key := range o.keys {
		if i > 0 {
			io.WriteString(w, ",")
		}
		graphql.MarshalString(key).MarshalGQL(w)
		io.WriteString(w, ":")
		o.values[i].MarshalGQL(w)
	}
	io.WriteString(w, "}")
}
