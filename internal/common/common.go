package common

import (
	"errors"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
)

const (
	// Context key the principal is stored under
	ContextPrincipalKey = "principal"
)

var ErrNoPrincipal = errors.New("principal not found in context")

// Principal is the verified identity of the caller.
type Principal struct {
	UserID      uint
	Username    string
	Email       string
	RoleID      uint
	Role        string
	Permissions []string
}

func (p *Principal) HasPermission(name string) bool {
	return slices.Contains(p.Permissions, name)
}

func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(ContextPrincipalKey, p)
}

// GetPrincipal retrieves the authenticated caller from the Gin context.
func GetPrincipal(c *gin.Context) (*Principal, error) {
	v, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil, ErrNoPrincipal
	}
	p, ok := v.(*Principal)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}

// GetUserIDFromContext retrieves the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	p, err := GetPrincipal(c)
	if err != nil {
		return 0, err
	}
	return p.UserID, nil
}

// DateLayout is the wire format of calendar dates such as birth dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date or RFC3339 timestamp, reporting failures
// as a validation error on field.
func ParseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperr.Validation(field, field+" must be a date (YYYY-MM-DD) or RFC3339 timestamp")
	}
	return t, nil
}
