package resolver

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ wordService = &wordServiceMock{}

type wordServiceMock struct {
	ListFunc func(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *wordServiceMock) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	if mock.ListFunc == nil {
		panic("wordServiceMock.ListFunc: method is nil but wordService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *wordServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
