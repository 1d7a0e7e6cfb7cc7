package middleware

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"sync"
)

var _ userToucher = &userToucherMock{}

type userToucherMock struct {
	TouchFunc func(ctx context.Context, u domain.User) (domain.UserRole, error)

	calls struct {
		Touch []struct {
			Ctx context.Context
			U   domain.User
		}
	}
	lockTouch sync.RWMutex
}

func (mock *userToucherMock) Touch(ctx context.Context, u domain.User) (domain.UserRole, error) {
	if mock.TouchFunc == nil {
		panic("userToucherMock.TouchFunc: method is nil but userToucher.Touch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, u)
}

func (mock *userToucherMock) TouchCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}
