package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/clubhub/config"
	"github.com/DhavalSuthar-24/clubhub/internal/auth"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/testutil"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
	"github.com/DhavalSuthar-24/clubhub/pkg/validator"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.Register())
	db := testutil.NewDB(t)
	testutil.SeedRBAC(t, db)

	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = testutil.JWTSecret
	cfg.JWT.AccessTokenExpiryMinutes = 60
	cfg.RateLimit.PerSecond = 5
	cfg.RateLimit.Burst = 10
	cfg.App.FrontendURL = "http://localhost:3000"

	r := SetupRoutes(Deps{DB: db, Config: cfg, Store: storage.NewMemoryStore()})
	return r, db
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newRouter(t)

	w := testutil.Do(t, r, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = testutil.Do(t, r, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAuthenticationAndGate(t *testing.T) {
	r, db := newRouter(t)
	viewer := testutil.CreateUser(t, db, "viewer", models.RoleUser)
	admin := testutil.CreateUser(t, db, "boss", models.RoleAdmin)

	w := testutil.Do(t, r, http.MethodGet, "/api/clubs", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/clubs", nil, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "boss@clubhub.test", "password": "wrong-pass"}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "boss@clubhub.test", "password": "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login auth.AuthResponse
	testutil.Decode(t, w, &login)
	require.NotEmpty(t, login.AccessToken)

	viewerToken := testutil.Token(t, db, viewer)
	w = testutil.Do(t, r, http.MethodGet, "/api/clubs", nil, viewerToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/events", gin.H{
		"name": "Copa Valle", "start_date": "2030-05-01", "end_date": "2030-05-03", "type": "tournament", "location": "Coliseo",
	}, viewerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	// ADMIN passes every role requirement
	w = testutil.Do(t, r, http.MethodPost, "/api/events", gin.H{
		"name": "Copa Valle", "start_date": "2030-05-01", "end_date": "2030-05-03", "type": "tournament", "location": "Coliseo",
	}, login.AccessToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var e models.Event
	testutil.Decode(t, w, &e)
	require.Equal(t, admin.ID, e.OrganizerID)
}

func TestClubCreationScenario(t *testing.T) {
	r, db := newRouter(t)
	manager := testutil.CreateUser(t, db, "manager", models.RoleClubManager)
	managerToken := testutil.Token(t, db, manager)

	body := gin.H{
		"name":           "Winners",
		"founded_at":     "1985-01-22",
		"branch":         "senior",
		"address":        "Calle 5 #10-20",
		"phone":          "3001234567",
		"email":          "club@winners.test",
		"responsible_id": manager.ID,
	}
	w := testutil.Do(t, r, http.MethodPost, "/api/clubs", body, managerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var c models.Club
	testutil.Decode(t, w, &c)
	require.Equal(t, models.StatusActive, c.Status)

	w = testutil.Do(t, r, http.MethodPost, "/api/clubs", body, managerToken)
	require.Equal(t, http.StatusConflict, w.Code)
}
