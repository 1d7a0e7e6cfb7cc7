package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
)

type dashboardService interface {
	Summary(ctx context.Context) (domain.DashboardSummary, error)
}

type userService interface {
	Profile(ctx context.Context) (domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (domain.User, error)
}

// AdminHandler serves the dashboard and user management endpoints.
type AdminHandler struct {
	dashboard dashboardService
	users     userService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(dashboard dashboardService, users userService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, users: users, log: logger.With("handler", "admin")}
}

// Dashboard returns the admin overview.
// GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Me returns the caller's profile.
// GET /api/v1/me
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Profile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ListUsers returns a page of users.
// GET /api/v1/admin/users?limit=50&offset=0
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, total, err := h.users.ListUsers(r.Context(), queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[domain.User]{Items: users, Total: total})
}

type setRoleRequest struct {
	Role domain.UserRole `json:"role"`
}

// SetUserRole changes a user's role (super admin only).
// PUT /api/v1/admin/users/{id}/role
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.users.SetUserRole(r.Context(), id, req.Role)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
