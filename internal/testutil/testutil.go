// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/token"
	"github.com/DhavalSuthar-24/clubhub/utils"
)

const JWTSecret = "test-secret"

// Epoch is the instant fixed clocks start at.
var Epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// NewDB opens a private in-memory sqlite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.Migrate(db))
	return db
}

func NewClock() *clock.Fixed {
	return clock.NewFixed(Epoch)
}

// SeedRBAC creates the four permissions and the five roles.
func SeedRBAC(t *testing.T, db *gorm.DB) map[string]models.Role {
	t.Helper()
	perms := map[string]models.Permission{}
	for _, name := range []string{models.PermRead, models.PermWrite, models.PermUpdate, models.PermDelete} {
		p := models.Permission{Name: name}
		require.NoError(t, db.Create(&p).Error)
		perms[name] = p
	}
	all := []models.Permission{perms[models.PermRead], perms[models.PermWrite], perms[models.PermUpdate], perms[models.PermDelete]}
	roles := map[string]models.Role{}
	for _, name := range []string{models.RoleAdmin, models.RoleClubManager, models.RoleOrganizer, models.RoleReferee} {
		r := models.Role{Name: name, Permissions: all}
		require.NoError(t, db.Create(&r).Error)
		roles[name] = r
	}
	u := models.Role{Name: models.RoleUser, Permissions: []models.Permission{perms[models.PermRead]}}
	require.NoError(t, db.Create(&u).Error)
	roles[models.RoleUser] = u
	return roles
}

// CreateUser stores a user with password "password123" holding the named role.
func CreateUser(t *testing.T, db *gorm.DB, username, roleName string) models.User {
	t.Helper()
	var role models.Role
	require.NoError(t, db.Where("name = ?", roleName).First(&role).Error)
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	u := models.User{Username: username, Email: username + "@clubhub.test", Password: hash, RoleID: role.ID}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func CreateClub(t *testing.T, db *gorm.DB, name string, responsibleID uint) models.Club {
	t.Helper()
	c := models.Club{
		Name:          name,
		FoundedAt:     time.Date(1985, 1, 22, 0, 0, 0, 0, time.UTC),
		Branch:        "senior",
		Category:      "female",
		Address:       "calle 1 #03",
		Phone:         "3008213278",
		Email:         strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@clubs.test",
		Status:        models.StatusActive,
		ResponsibleID: responsibleID,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

// DeactivateClub soft-deletes the club the way DELETE /clubs/:id does.
func DeactivateClub(t *testing.T, db *gorm.DB, id uint) {
	t.Helper()
	require.NoError(t, db.Model(&models.Club{}).Where("id = ?", id).Update("status", models.StatusInactive).Error)
}

func CreateAthlete(t *testing.T, db *gorm.DB, document string) models.Athlete {
	t.Helper()
	a := models.Athlete{
		FirstName:      "Ana",
		LastName:       "Rojas",
		BirthDate:      time.Date(2008, 5, 14, 0, 0, 0, 0, time.UTC),
		Gender:         "female",
		DocumentNumber: document,
		DocumentType:   "identity_card",
		BloodType:      "O+",
		Phone:          "3001112233",
		Email:          document + "@athletes.test",
		Address:        "carrera 7",
		Status:         models.StatusActive,
		Position:       "setter",
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

func AddMember(t *testing.T, db *gorm.DB, clubID, athleteID uint) models.ClubAthlete {
	t.Helper()
	ca := models.ClubAthlete{ClubID: clubID, AthleteID: athleteID, JoinedAt: Epoch.AddDate(-1, 0, 0), Status: models.StatusActive}
	require.NoError(t, db.Create(&ca).Error)
	return ca
}

func CreateEvent(t *testing.T, db *gorm.DB, organizerID uint, location string, start time.Time) models.Event {
	t.Helper()
	e := models.Event{
		Name:        "Open " + location,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 3),
		Type:        models.EventTournament,
		Location:    location,
		OrganizerID: organizerID,
		Status:      models.EventPlanned,
	}
	require.NoError(t, db.Create(&e).Error)
	return e
}

func Enroll(t *testing.T, db *gorm.DB, eventID, clubID, userID uint, status models.ApprovalStatus) models.Enrollment {
	t.Helper()
	en := models.Enrollment{EventID: eventID, ClubID: clubID, EnrolledAt: Epoch, Status: status, RegisteredByID: userID}
	require.NoError(t, db.Create(&en).Error)
	return en
}

func CreateMatch(t *testing.T, db *gorm.DB, eventID, homeID, awayID uint, at time.Time, status models.MatchStatus) models.Match {
	t.Helper()
	m := models.Match{EventID: eventID, HomeClubID: homeID, AwayClubID: awayID, ScheduledAt: at, Location: "Coliseo", Status: status}
	require.NoError(t, db.Create(&m).Error)
	return m
}

// Principal builds the principal a token for u would carry.
func Principal(t *testing.T, db *gorm.DB, u models.User) *common.Principal {
	t.Helper()
	var role models.Role
	require.NoError(t, db.Preload("Permissions").First(&role, u.RoleID).Error)
	return &common.Principal{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		RoleID:      role.ID,
		Role:        role.Name,
		Permissions: role.PermissionNames(),
	}
}

// Token mints a bearer token for u signed with JWTSecret.
func Token(t *testing.T, db *gorm.DB, u models.User) string {
	t.Helper()
	p := Principal(t, db, u)
	signed, err := token.GenerateJWT(token.Claims{
		UserID:      p.UserID,
		Email:       p.Email,
		Username:    p.Username,
		Role:        token.RoleClaim{ID: p.RoleID, Name: p.Role},
		Permissions: p.Permissions,
	}, JWTSecret, time.Hour, time.Now())
	require.NoError(t, err)
	return signed
}

// Do sends a JSON request through r. body may be nil.
func Do(t *testing.T, r http.Handler, method, target string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the data member of a success envelope into out.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// WithPrincipal is a gin middleware that injects p, standing in for token auth.
func WithPrincipal(p *common.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		common.SetPrincipal(c, p)
		c.Next()
	}
}
