package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	tenantHeader = "X-Tenant"
	ctxKeyDB     = "showbench.db"
	ctxKeyTenant = "showbench.tenant"
	ctxKeyUserID = "showbench.user_id"
	ctxKeyRole   = "showbench.role"
)

// resolveTenant maps the X-Tenant header (or the configured default) to that
// tenant's database handle. Tenants are isolated databases: no row-level
// tenancy exists past this point.
func (s *Server) resolveTenant(c *gin.Context) {
	name := c.GetHeader(tenantHeader)
	if name == "" {
		name = s.cfg.DefaultTenant
	}
	conn, ok := s.tenants[name]
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
		return
	}
	c.Set(ctxKeyTenant, name)
	c.Set(ctxKeyDB, conn)
	c.Next()
}

func tenantDB(c *gin.Context) *gorm.DB {
	return c.MustGet(ctxKeyDB).(*gorm.DB)
}

func tenantName(c *gin.Context) string {
	return c.GetString(ctxKeyTenant)
}
