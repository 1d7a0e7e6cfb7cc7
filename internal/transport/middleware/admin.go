package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// RequireAdmin rejects anonymous callers with 401 and callers without an
// admin role with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, r, http.StatusUnauthorized, "authentication required")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, r, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// errorBody matches the error shape of the REST handlers, plus the request
// ID so a rejected caller can quote it.
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, RequestID: ctxutil.RequestIDFromCtx(r.Context())})
}
