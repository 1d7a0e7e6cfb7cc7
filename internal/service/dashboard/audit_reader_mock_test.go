package dashboard

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	RecentFunc func(ctx context.Context, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Recent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockRecent sync.RWMutex
}

func (mock *auditReaderMock) Recent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if mock.RecentFunc == nil {
		panic("auditReaderMock.RecentFunc: method is nil but auditReader.Recent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, limit)
}

func (mock *auditReaderMock) RecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
