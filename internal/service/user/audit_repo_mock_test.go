package user

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc func(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Record domain.AuditRecord
		}
	}
	lockCreate sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.AuditRecord
	}{Ctx: ctx, Record: record}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Record domain.AuditRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
