package middleware

import (
	"errors"
	"net/http"

	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/entity"
	"github.com/hakwonlab/acadpanel/web/locale"
	"github.com/hakwonlab/acadpanel/web/service"
	"github.com/hakwonlab/acadpanel/web/session"

	"github.com/gin-gonic/gin"
)

const (
	CtxUser  = "scope_user"
	CtxOrgId = "scope_org_id"
	CtxRole  = "scope_role"
)

// OrgScope resolves the caller's session into (user, org id, role) and puts
// them on the context. Every protected route runs behind this; handlers must
// never read an org id from the request itself.
func OrgScope(userService *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			abortScope(c, http.StatusUnauthorized, "errors.authRequired")
			return
		}
		loginUser := session.GetLoginUser(c)
		if loginUser == nil {
			abortScope(c, http.StatusUnauthorized, "errors.authRequired")
			return
		}

		user, err := userService.GetUser(loginUser.Id)
		if err != nil {
			if errors.Is(err, service.ErrProfileNotFound) {
				abortScope(c, http.StatusUnauthorized, "errors.profileNotFound")
				return
			}
			logger.Warning("scope resolution failed:", err)
			abortScope(c, http.StatusInternalServerError, "errors.serverError")
			return
		}
		if user.OrgId == 0 {
			abortScope(c, http.StatusUnauthorized, "errors.profileNotFound")
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxOrgId, user.OrgId)
		c.Set(CtxRole, user.Role)
		c.Next()
	}
}

// ScopeUser returns the resolved account, or nil outside OrgScope.
func ScopeUser(c *gin.Context) *model.User {
	if user, ok := c.Get(CtxUser); ok {
		return user.(*model.User)
	}
	return nil
}

func ScopeOrgId(c *gin.Context) int {
	if orgId, ok := c.Get(CtxOrgId); ok {
		return orgId.(int)
	}
	return 0
}

func ScopeRole(c *gin.Context) model.Role {
	if role, ok := c.Get(CtxRole); ok {
		return role.(model.Role)
	}
	return ""
}

func abortScope(c *gin.Context, status int, i18nKey string) {
	message := locale.I18n(locale.Web, i18nKey)
	if isAjax(c) {
		c.AbortWithStatusJSON(status, entity.Msg{Success: false, Msg: message})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
	c.Abort()
}

func isAjax(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest" ||
		c.GetHeader("Accept") == "application/json" ||
		c.ContentType() == "application/json"
}
