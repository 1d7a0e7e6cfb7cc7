package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// NewErrorPresenter returns an error presenter that maps domain errors to
// GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		origErr := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			origErr = unwrapped
		}

		switch {
		case errors.Is(origErr, domain.ErrNotFound):
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(origErr, domain.ErrAlreadyExists):
			gqlErr.Extensions = map[string]any{"code": "ALREADY_EXISTS"}

		case errors.Is(origErr, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}
			if fields := domain.FieldErrorsOf(err); fields != nil {
				gqlErr.Extensions["fields"] = fields
			}

		case errors.Is(origErr, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]any{"code": "UNAUTHENTICATED"}

		case errors.Is(origErr, domain.ErrForbidden):
			gqlErr.Extensions = map[string]any{"code": "FORBIDDEN"}

		case errors.Is(origErr, domain.ErrConflict):
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", origErr.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
