package resolver

import (
	"context"
	"log/slog"

	"github.com/SiphoChris/afrilex/internal/domain"
	gql "github.com/SiphoChris/afrilex/internal/transport/graphql"
)

// dictionaryService defines what resolver needs from Dictionary service.
type dictionaryService interface {
	List(ctx context.Context) ([]domain.Dictionary, error)
	GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error)
}

// wordService defines what resolver needs from Word service.
type wordService interface {
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
}

// dashboardService defines what resolver needs from Dashboard service.
type dashboardService interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

// Resolver is the root resolver. Related users and dictionaries are read
// through the request's data loaders.
type Resolver struct {
	log        *slog.Logger
	dictionary dictionaryService
	word       wordService
	dashboard  dashboardService
}

// NewResolver creates a Resolver.
func NewResolver(
	log *slog.Logger,
	dictionary dictionaryService,
	word wordService,
	dashboard dashboardService,
) *Resolver {
	return &Resolver{
		log:        log.With("component", "graphql"),
		dictionary: dictionary,
		word:       word,
		dashboard:  dashboard,
	}
}

type queryResolver struct{ *Resolver }
type dictionaryResolver struct{ *Resolver }
type wordResolver struct{ *Resolver }
type auditRecordResolver struct{ *Resolver }

// Objects returns the field resolvers of every schema object.
func (r *Resolver) Objects() gql.Objects {
	q := &queryResolver{r}
	d := &dictionaryResolver{r}
	w := &wordResolver{r}
	a := &auditRecordResolver{r}

	return gql.Objects{
		"Query": {
			"dictionaries": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
				dicts, err := q.Dictionaries(ctx)
				if err != nil {
					return nil, err
				}
				return listOf(dicts), nil
			},
			"dictionary": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				language, _ := args["language"].(string)
				dict, err := q.Dictionary(ctx, language)
				if err != nil {
					return nil, err
				}
				return dict, nil
			},
			"words": func(ctx context.Context, _ any, args map[string]any) (any, error) {
				filter, err := wordFilterArg(args["filter"])
				if err != nil {
					return nil, err
				}
				limit, err := intArg(args, "limit")
				if err != nil {
					return nil, err
				}
				offset, err := intArg(args, "offset")
				if err != nil {
					return nil, err
				}
				conn, err := q.Words(ctx, filter, limit, offset)
				if err != nil {
					return nil, err
				}
				return conn, nil
			},
			"dashboard": func(ctx context.Context, _ any, _ map[string]any) (any, error) {
				summary, err := q.Dashboard(ctx)
				if err != nil {
					return nil, err
				}
				return summary, nil
			},
		},

		"User": {
			"id":    field(func(u *domain.User) any { return u.ID }),
			"name":  field(func(u *domain.User) any { return u.Name }),
			"email": field(func(u *domain.User) any { return u.Email }),
			"role":  field(func(u *domain.User) any { return u.Role.String() }),
		},

		"Dictionary": {
			"id":            field(func(x *domain.Dictionary) any { return x.ID }),
			"languageCode":  field(func(x *domain.Dictionary) any { return x.LanguageCode }),
			"nativeName":    field(func(x *domain.Dictionary) any { return x.Name.Native }),
			"bilingualName": field(func(x *domain.Dictionary) any { return x.Name.Bilingual }),
			"description": field(func(x *domain.Dictionary) any {
				if x.Description == "" {
					return nil
				}
				return x.Description
			}),
			"wordCount":   field(func(x *domain.Dictionary) any { return x.WordCount }),
			"isPublished": field(func(x *domain.Dictionary) any { return x.Metadata.IsPublished }),
			"createdAt":   field(func(x *domain.Dictionary) any { return x.Metadata.CreatedAt }),
			"updatedAt":   field(func(x *domain.Dictionary) any { return x.Metadata.UpdatedAt }),
			"creator": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				u, err := d.Creator(ctx, obj.(*domain.Dictionary))
				return orNil(u), err
			},
		},

		"Word": {
			"id":           field(func(x *domain.Word) any { return x.ID }),
			"word":         field(func(x *domain.Word) any { return x.Word }),
			"languageCode": field(func(x *domain.Word) any { return x.LanguageCode }),
			"status":       field(func(x *domain.Word) any { return x.Metadata.Status.String() }),
			"isPublished":  field(func(x *domain.Word) any { return x.Metadata.IsPublished }),
			"translations": field(func(x *domain.Word) any { return stringList(x.Translations.Content) }),
			"createdAt":    field(func(x *domain.Word) any { return x.Metadata.CreatedAt }),
			"updatedAt":    field(func(x *domain.Word) any { return x.Metadata.UpdatedAt }),
			"creator": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				u, err := w.Creator(ctx, obj.(*domain.Word))
				return orNil(u), err
			},
			"dictionary": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				dict, err := w.Dictionary(ctx, obj.(*domain.Word))
				return orNil(dict), err
			},
		},

		"WordConnection": {
			"items": field(func(c *WordConnection) any { return listOf(c.Items) }),
			"total": field(func(c *WordConnection) any { return c.Total }),
		},

		"AuditRecord": {
			"id":         field(func(x *domain.AuditRecord) any { return x.ID }),
			"entityType": field(func(x *domain.AuditRecord) any { return x.EntityType.String() }),
			"entityId": field(func(x *domain.AuditRecord) any {
				if x.EntityID == nil {
					return nil
				}
				return *x.EntityID
			}),
			"action":    field(func(x *domain.AuditRecord) any { return x.Action.String() }),
			"createdAt": field(func(x *domain.AuditRecord) any { return x.CreatedAt }),
			"user": func(ctx context.Context, obj any, _ map[string]any) (any, error) {
				u, err := a.User(ctx, obj.(*domain.AuditRecord))
				return orNil(u), err
			},
		},

		"Dashboard": {
			"dictionaries":    field(func(s *domain.DashboardSummary) any { return s.Dictionaries }),
			"words":           field(func(s *domain.DashboardSummary) any { return s.Words }),
			"publishedWords":  field(func(s *domain.DashboardSummary) any { return s.PublishedWords }),
			"incompleteWords": field(func(s *domain.DashboardSummary) any { return s.IncompleteWords }),
			"users":           field(func(s *domain.DashboardSummary) any { return s.Users }),
			"languages":       field(func(s *domain.DashboardSummary) any { return s.Languages }),
			"recentActivity":  field(func(s *domain.DashboardSummary) any { return listOf(s.RecentActivity) }),
		},
	}
}

// field adapts a plain getter on *T to a FieldFunc.
func field[T any](get func(*T) any) gql.FieldFunc {
	return func(_ context.Context, obj any, _ map[string]any) (any, error) {
		return get(obj.(*T)), nil
	}
}

func listOf[T any](items []T) []any {
	out := make([]any, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}

func stringList(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

// orNil keeps a nil pointer from becoming a non-nil interface.
func orNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
