// Package dashboard builds the admin overview.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// RecentActivityLimit is the number of audit records shown on the dashboard.
const RecentActivityLimit = 10

type dictionaryCounter interface {
	Count(ctx context.Context) (int, error)
}

type wordCounter interface {
	Counts(ctx context.Context) (domain.WordCounts, error)
}

type userCounter interface {
	Count(ctx context.Context) (int, error)
}

type auditReader interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// Service aggregates the dashboard counts.
type Service struct {
	log          *slog.Logger
	dictionaries dictionaryCounter
	words        wordCounter
	users        userCounter
	audit        auditReader
}

// NewService creates a new dashboard service.
func NewService(
	logger *slog.Logger,
	dictionaries dictionaryCounter,
	words wordCounter,
	users userCounter,
	audit auditReader,
) *Service {
	return &Service{
		log:          logger.With("service", "dashboard"),
		dictionaries: dictionaries,
		words:        words,
		users:        users,
		audit:        audit,
	}
}

// Summary returns the admin overview (admin only). The counts are fetched
// concurrently; the first failure cancels the rest.
func (s *Service) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.DashboardSummary{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.DashboardSummary{}, domain.ErrForbidden
	}

	var (
		sum    domain.DashboardSummary
		counts domain.WordCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.dictionaries.Count(gctx)
		if err != nil {
			return fmt.Errorf("count dictionaries: %w", err)
		}
		sum.Dictionaries = n
		return nil
	})
	g.Go(func() error {
		c, err := s.words.Counts(gctx)
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		counts = c
		return nil
	})
	g.Go(func() error {
		n, err := s.users.Count(gctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		sum.Users = n
		return nil
	})
	g.Go(func() error {
		recent, err := s.audit.Recent(gctx, RecentActivityLimit)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		sum.RecentActivity = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard summary failed", slog.String("error", err.Error()))
		return domain.DashboardSummary{}, err
	}

	sum.Words = counts.Total
	sum.PublishedWords = counts.Published
	sum.IncompleteWords = counts.Incomplete
	sum.Languages = len(domain.Languages())
	if sum.RecentActivity == nil {
		sum.RecentActivity = []domain.AuditRecord{}
	}
	return sum, nil
}
