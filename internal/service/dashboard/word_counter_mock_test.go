package dashboard

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ wordCounter = &wordCounterMock{}

type wordCounterMock struct {
	CountsFunc func(ctx context.Context) (domain.WordCounts, error)

	calls struct {
		Counts []struct {
			Ctx context.Context
		}
	}
	lockCounts sync.RWMutex
}

func (mock *wordCounterMock) Counts(ctx context.Context) (domain.WordCounts, error) {
	if mock.CountsFunc == nil {
		panic("wordCounterMock.CountsFunc: method is nil but wordCounter.Counts was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx)
}

func (mock *wordCounterMock) CountsCalls() []struct {
	Ctx context.Context
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}
