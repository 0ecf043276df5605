package rmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
)

func TestAuthorize(t *testing.T) {
	admin := &common.Principal{Role: "ADMIN", Permissions: []string{"READ", "WRITE", "UPDATE", "DELETE"}}
	manager := &common.Principal{Role: "CLUB_MANAGER", Permissions: []string{"READ", "WRITE"}}
	readOnlyAdmin := &common.Principal{Role: "ADMIN", Permissions: []string{"READ"}}

	tests := []struct {
		name string
		p    *common.Principal
		req  Requirement
		kind error
	}{
		{"empty requirement", nil, Requirement{}, nil},
		{"no principal", nil, Requirement{Role: "REFEREE"}, apperr.ErrUnauthorized},
		{"admin overrides role", admin, Requirement{Role: "REFEREE", Permissions: []string{"UPDATE"}}, nil},
		{"matching role", manager, Requirement{Role: "CLUB_MANAGER", Permissions: []string{"WRITE"}}, nil},
		{"wrong role", manager, Requirement{Role: "ORGANIZER"}, apperr.ErrForbidden},
		{"one of several permissions missing", manager, Requirement{Role: "CLUB_MANAGER", Permissions: []string{"WRITE", "DELETE"}}, apperr.ErrForbidden},
		{"admin still needs permissions", readOnlyAdmin, Requirement{Role: "CLUB_MANAGER", Permissions: []string{"WRITE"}}, apperr.ErrForbidden},
		{"permissions only", manager, Requirement{Permissions: []string{"READ"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.req)
			if tt.kind == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestAuthorizeIsOrderIndependent(t *testing.T) {
	p := &common.Principal{Role: "ORGANIZER", Permissions: []string{"UPDATE", "READ", "WRITE"}}
	require.NoError(t, Authorize(p, Requirement{Permissions: []string{"READ", "WRITE", "UPDATE"}}))
	require.NoError(t, Authorize(p, Requirement{Permissions: []string{"UPDATE", "WRITE", "READ"}}))
}

func newEngine(t *testing.T, p *common.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	table := NewTable()
	r := gin.New()
	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		if p != nil {
			common.SetPrincipal(c, p)
		}
		c.Next()
	}, Gate(table))

	clubs := api.Group("/clubs")
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	table.Handle(clubs, http.MethodPost, "", Requirement{Role: "CLUB_MANAGER", Permissions: []string{"WRITE"}}, ok)
	table.Handle(clubs, http.MethodDelete, "/:id", Requirement{Role: "CLUB_MANAGER", Permissions: []string{"DELETE"}}, ok)
	clubs.GET("/:id", ok)
	return r
}

func serve(r *gin.Engine, method, target string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w.Code
}

func TestGate(t *testing.T) {
	manager := &common.Principal{UserID: 2, Role: "CLUB_MANAGER", Permissions: []string{"READ", "WRITE"}}

	r := newEngine(t, manager)
	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/clubs"))
	require.Equal(t, http.StatusForbidden, serve(r, http.MethodDelete, "/api/clubs/4"))
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/clubs/4"))

	anonymous := newEngine(t, nil)
	require.Equal(t, http.StatusUnauthorized, serve(anonymous, http.MethodPost, "/api/clubs"))
}

func TestHandleDeclaresFullTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	table := NewTable()
	r := gin.New()
	g := r.Group("/api").Group("/matches")
	table.Handle(g, http.MethodPatch, "/:id/status", Requirement{Role: "REFEREE"}, func(c *gin.Context) {})

	req, ok := table.Lookup("patch", "/api/matches/:id/status")
	require.True(t, ok)
	require.Equal(t, "REFEREE", req.Role)
	require.Equal(t, 1, table.Len())
}
