package rmiddleware

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/internal/apperr"
	"github.com/DhavalSuthar-24/clubhub/internal/common"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/pkg/responses"
)

// Requirement is what a route demands from its caller.
type Requirement struct {
	Role        string
	Permissions []string
}

// Need builds a requirement.
func Need(role string, permissions ...string) Requirement {
	return Requirement{Role: role, Permissions: permissions}
}

func (r Requirement) Empty() bool {
	return r.Role == "" && len(r.Permissions) == 0
}

func (r Requirement) String() string {
	return fmt.Sprintf("role=%q permissions=%v", r.Role, r.Permissions)
}

// Authorize reports whether p satisfies req. ADMIN passes any role
// requirement; permission requirements always apply.
func Authorize(p *common.Principal, req Requirement) error {
	if req.Empty() {
		return nil
	}
	if p == nil {
		return apperr.Unauthorized("authentication required")
	}
	if req.Role != "" && p.Role != req.Role && p.Role != models.RoleAdmin {
		return apperr.Forbidden(fmt.Sprintf("role %s is required", req.Role))
	}
	for _, perm := range req.Permissions {
		if !p.HasPermission(perm) {
			return apperr.Forbidden(fmt.Sprintf("permission %s is required", perm))
		}
	}
	return nil
}

// Table maps "METHOD /full/route/template" to the route's requirement.
type Table struct {
	mu    sync.RWMutex
	rules map[string]Requirement
}

func NewTable() *Table {
	return &Table{rules: make(map[string]Requirement)}
}

func key(method, fullPath string) string {
	return strings.ToUpper(method) + " " + fullPath
}

// Declare records req for the route.
func (t *Table) Declare(method, fullPath string, req Requirement) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rules[key(method, fullPath)] = req
}

func (t *Table) Lookup(method, fullPath string) (Requirement, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	req, ok := t.rules[key(method, fullPath)]
	return req, ok
}

// Len returns the number of declared routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}

// Handle registers the handlers on rg and declares req for the resulting route.
func (t *Table) Handle(rg *gin.RouterGroup, method, relativePath string, req Requirement, handlers ...gin.HandlerFunc) {
	t.Declare(method, joinPaths(rg.BasePath(), relativePath), req)
	rg.Handle(method, relativePath, handlers...)
}

// Gate enforces the table. It must run after authentication on the groups
// whose routes were registered through Handle.
func Gate(t *Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := t.Lookup(c.Request.Method, c.FullPath())
		if !ok {
			c.Next()
			return
		}
		p, err := common.GetPrincipal(c)
		if err != nil {
			responses.Unauthorized(c, "authentication required")
			return
		}
		if err := Authorize(p, req); err != nil {
			responses.SendAppError(c, err)
			return
		}
		c.Next()
	}
}

func joinPaths(absolutePath, relativePath string) string {
	if relativePath == "" {
		return absolutePath
	}
	finalPath := path.Join(absolutePath, relativePath)
	if strings.HasSuffix(relativePath, "/") && !strings.HasSuffix(finalPath, "/") {
		return finalPath + "/"
	}
	return finalPath
}
