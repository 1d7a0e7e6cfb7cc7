package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := UserIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for valid UUID")
	}
	if got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
}

func TestUserIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := UserIDFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestUserIDFromCtx_NilUUID(t *testing.T) {
	t.Parallel()

	ctx := WithUserID(context.Background(), uuid.Nil)

	got, ok := UserIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for uuid.Nil")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestUserIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("user_id"), "not-a-uuid")

	got, ok := UserIDFromCtx(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type")
	}
	if got != uuid.Nil {
		t.Fatalf("expected uuid.Nil, got %s", got)
	}
}

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-123")

	got := RequestIDFromCtx(ctx)
	if got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got := RequestIDFromCtx(context.Background())
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestRequestIDFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), ctxKey("request_id"), 12345)

	got := RequestIDFromCtx(ctx)
	if got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}

func TestUserRole_AdminChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role       string
		admin      bool
		superAdmin bool
	}{
		{RoleSuperAdmin, true, true},
		{RoleAdmin, true, false},
		{RolePublic, false, false},
		{"", false, false},
		{"user", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()
			ctx := WithUserRole(context.Background(), tt.role)
			if got := UserRoleFromCtx(ctx); got != tt.role {
				t.Fatalf("UserRoleFromCtx = %q, want %q", got, tt.role)
			}
			if got := IsAdminCtx(ctx); got != tt.admin {
				t.Errorf("IsAdminCtx = %v, want %v", got, tt.admin)
			}
			if got := IsSuperAdminCtx(ctx); got != tt.superAdmin {
				t.Errorf("IsSuperAdminCtx = %v, want %v", got, tt.superAdmin)
			}
		})
	}
}

func TestUserRoleFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := UserRoleFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty role, got %q", got)
	}
	if IsAdminCtx(context.Background()) {
		t.Fatal("anonymous context must not be admin")
	}
}
