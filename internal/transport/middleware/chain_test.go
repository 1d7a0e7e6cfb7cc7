package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagging(order *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name+"-before")
			next.ServeHTTP(w, r)
			*order = append(*order, name+"-after")
		})
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	h := Chain(tagging(&order, "outer"), tagging(&order, "inner"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer-before", "inner-before", "handler", "inner-after", "outer-after"}, order)
}

func TestChain_EmptyAndPassthrough(t *testing.T) {
	for name, mw := range map[string]Middleware{"empty chain": Chain(), "passthrough": Passthrough} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusTeapot, rec.Code)
		})
	}
}

func TestSkip_Probes(t *testing.T) {
	tests := []struct {
		path        string
		wantWrapped bool
	}{
		{path: "/live", wantWrapped: false},
		{path: "/ready", wantWrapped: false},
		{path: "/health", wantWrapped: true},
		{path: "/api/v1/browse", wantWrapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var order []string
			h := Skip(IsProbe, tagging(&order, "mw"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				order = append(order, "handler")
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantWrapped {
				assert.Equal(t, []string{"mw-before", "handler", "mw-after"}, order)
			} else {
				assert.Equal(t, []string{"handler"}, order)
			}
		})
	}
}
