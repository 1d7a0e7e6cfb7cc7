package resolver

import (
	"context"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/transport/dataloader"
)

// Dictionaries is the resolver for the dictionaries field.
func (r *queryResolver) Dictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	return r.dictionary.List(ctx)
}

// Dictionary is the resolver for the dictionary field.
func (r *queryResolver) Dictionary(ctx context.Context, language string) (*domain.Dictionary, error) {
	d, err := r.dictionary.GetByLanguage(ctx, language)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Words is the resolver for the words field.
func (r *queryResolver) Words(ctx context.Context, filter *WordFilter, limit, offset int) (*WordConnection, error) {
	f := domain.WordFilter{Limit: limit, Offset: offset}
	if filter != nil {
		f.LanguageCode = filter.Language
		f.Search = filter.Search
		f.Letter = filter.Letter
		f.Status = filter.Status
		f.Published = filter.Published
		f.CreatedBy = filter.CreatedBy
	}

	words, total, err := r.word.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &WordConnection{Items: words, Total: total}, nil
}

// Dashboard is the resolver for the dashboard field.
func (r *queryResolver) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	s, err := r.dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Creator is the resolver for the creator field.
func (r *dictionaryResolver) Creator(ctx context.Context, obj *domain.Dictionary) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.Metadata.CreatedBy)()
}

// Creator is the resolver for the creator field.
func (r *wordResolver) Creator(ctx context.Context, obj *domain.Word) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.Metadata.CreatedBy)()
}

// Dictionary is the resolver for the dictionary field.
func (r *wordResolver) Dictionary(ctx context.Context, obj *domain.Word) (*domain.Dictionary, error) {
	return dataloader.FromContext(ctx).DictionaryByLanguage.Load(ctx, obj.LanguageCode)()
}

// User is the resolver for the user field.
func (r *auditRecordResolver) User(ctx context.Context, obj *domain.AuditRecord) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.UserID)()
}
