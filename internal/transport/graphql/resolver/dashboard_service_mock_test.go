package resolver

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	SummaryFunc func(ctx context.Context) (domain.DashboardSummary, error)

	calls struct {
		Summary []struct {
			Ctx context.Context
		}
	}
	lockSummary sync.RWMutex
}

func (mock *dashboardServiceMock) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	if mock.SummaryFunc == nil {
		panic("dashboardServiceMock.SummaryFunc: method is nil but dashboardService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *dashboardServiceMock) SummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
