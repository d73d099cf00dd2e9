package middleware

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/access"
	"github.com/hakwonlab/acadpanel/web/entity"
	"github.com/hakwonlab/acadpanel/web/locale"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// RequirePage denies callers whose role may not view the given page,
// according to the organization's stored permission table. Runs after
// OrgScope.
func RequirePage(permissionService *service.PermissionService, page access.Page) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgId := ScopeOrgId(c)
		role := ScopeRole(c)
		allowed, err := permissionService.CanAccessPage(orgId, page, role)
		if err != nil {
			logger.Warning("page gate lookup failed:", err)
			abortForbidden(c, "errors.serverError", http.StatusInternalServerError)
			return
		}
		if !allowed {
			abortForbidden(c, "errors.pageForbidden", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// RequireMutate denies destructive operations for roles below manager.
func RequireMutate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.CanMutate(ScopeRole(c)) {
			abortForbidden(c, "errors.forbidden", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func abortForbidden(c *gin.Context, i18nKey string, status int) {
	message := locale.I18n(locale.Web, i18nKey)
	if isAjax(c) {
		c.AbortWithStatusJSON(status, entity.Msg{Success: false, Msg: message})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"panel/")
	c.Abort()
}
