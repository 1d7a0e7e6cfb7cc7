package rest

import (
	"context"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ProfileFunc     func(ctx context.Context) (domain.User, error)
	ListUsersFunc   func(ctx context.Context, limit int, offset int) ([]domain.User, int, error)
	SetUserRoleFunc func(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (domain.User, error)

	calls struct {
		Profile []struct {
			Ctx context.Context
		}
		ListUsers []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetUserRole []struct {
			Ctx          context.Context
			TargetUserID uuid.UUID
			Role         domain.UserRole
		}
	}
	lockProfile     sync.RWMutex
	lockListUsers   sync.RWMutex
	lockSetUserRole sync.RWMutex
}

func (mock *userServiceMock) Profile(ctx context.Context) (domain.User, error) {
	if mock.ProfileFunc == nil {
		panic("userServiceMock.ProfileFunc: method is nil but userService.Profile was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx)
}

func (mock *userServiceMock) ProfileCalls() []struct {
	Ctx context.Context
} {
	mock.lockProfile.RLock()
	calls := mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, int, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, limit, offset)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (domain.User, error) {
	if mock.SetUserRoleFunc == nil {
		panic("userServiceMock.SetUserRoleFunc: method is nil but userService.SetUserRole was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID uuid.UUID
		Role         domain.UserRole
	}{Ctx: ctx, TargetUserID: targetUserID, Role: role}
	mock.lockSetUserRole.Lock()
	mock.calls.SetUserRole = append(mock.calls.SetUserRole, callInfo)
	mock.lockSetUserRole.Unlock()
	return mock.SetUserRoleFunc(ctx, targetUserID, role)
}

func (mock *userServiceMock) SetUserRoleCalls() []struct {
	Ctx          context.Context
	TargetUserID uuid.UUID
	Role         domain.UserRole
} {
	mock.lockSetUserRole.RLock()
	calls := mock.calls.SetUserRole
	mock.lockSetUserRole.RUnlock()
	return calls
}
