package user

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	TouchFunc      func(ctx context.Context, u domain.User) (domain.User, error)
	UpdateRoleFunc func(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (domain.User, error)
	ListFunc       func(ctx context.Context, limit int, offset int) ([]domain.User, int, error)

	calls struct {
		Touch []struct {
			Ctx context.Context
			U   domain.User
		}
		UpdateRole []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Role domain.UserRole
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockTouch      sync.RWMutex
	lockUpdateRole sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
}

func (mock *userRepoMock) Touch(ctx context.Context, u domain.User) (domain.User, error) {
	if mock.TouchFunc == nil {
		panic("userRepoMock.TouchFunc: method is nil but userRepo.Touch was just called")
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

func (mock *userRepoMock) TouchCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockTouch.RLock()
	calls := mock.calls.Touch
	mock.lockTouch.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, Id: id, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Role domain.UserRole
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
