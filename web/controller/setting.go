package controller

import (
	"net/http"
	"time"

	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/web/access"
	"github.com/hakwonlab/acadpanel/web/entity"
	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// permissionForm updates one flag of the page-permission table.
type permissionForm struct {
	Page      string `json:"page" form:"page"`
	Role      string `json:"role" form:"role"`
	HasAccess bool   `json:"hasAccess" form:"hasAccess"`
}

// SettingController handles panel settings, organization settings, the
// page-permission table and the account list. Every write on this
// controller is owner/manager only.
type SettingController struct {
	settingService    service.SettingService
	orgService        service.OrgService
	permissionService service.PermissionService
	userService       service.UserService
	panelService      service.PanelService
}

func NewSettingController(g *gin.RouterGroup) *SettingController {
	a := &SettingController{}
	a.initRouter(g)
	return a
}

func (a *SettingController) initRouter(g *gin.RouterGroup) {
	g.GET("/all", a.getAllSetting)
	g.GET("/org", a.getOrg)
	g.GET("/permissions", a.getPermissions)
	g.GET("/accounts", a.getAccounts)

	mutate := g.Group("", middleware.RequireMutate())
	mutate.POST("/update", a.updateSetting)
	mutate.POST("/org/update", a.updateOrg)
	mutate.POST("/permissions/update", a.updatePermission)
	mutate.POST("/permissions/reset", a.resetPermissions)
	mutate.POST("/accounts/add", a.addAccount)
	mutate.POST("/accounts/update/:id", a.updateAccount)
	mutate.POST("/accounts/del/:id", a.delAccount)
	mutate.POST("/restartPanel", a.restartPanel)
}

func (a *SettingController) getAllSetting(c *gin.Context) {
	allSetting, err := a.settingService.GetAllSetting()
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, allSetting, nil)
}

func (a *SettingController) updateSetting(c *gin.Context) {
	allSetting := &entity.AllSetting{}
	if err := c.ShouldBind(allSetting); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	if err := a.settingService.UpdateAllSetting(allSetting); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.settings.toasts.saved"), nil)
}

func (a *SettingController) getOrg(c *gin.Context) {
	org, err := a.orgService.GetOrg(middleware.ScopeOrgId(c))
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, org, nil)
}

func (a *SettingController) updateOrg(c *gin.Context) {
	form := &service.OrgSettingsForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	org, err := a.orgService.UpdateSettings(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.settings.toasts.saved"), org, nil)
}

func (a *SettingController) getPermissions(c *gin.Context) {
	table, err := a.permissionService.GetTable(middleware.ScopeOrgId(c))
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, table, nil)
}

func (a *SettingController) updatePermission(c *gin.Context) {
	var form permissionForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	err := a.permissionService.UpdatePagePermission(
		middleware.ScopeOrgId(c), access.Page(form.Page), model.Role(form.Role), form.HasAccess)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.settings.toasts.permissionUpdated"), nil)
}

func (a *SettingController) resetPermissions(c *gin.Context) {
	if err := a.permissionService.ResetPermissions(middleware.ScopeOrgId(c)); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.settings.toasts.permissionsReset"), nil)
}

func (a *SettingController) getAccounts(c *gin.Context) {
	accounts, err := a.userService.GetAccounts(middleware.ScopeOrgId(c))
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, accounts, nil)
}

func (a *SettingController) addAccount(c *gin.Context) {
	form := &service.AccountForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	account, err := a.userService.AddAccount(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.settings.toasts.usernameTaken")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.settings.toasts.accountCreated"), account, nil)
}

func (a *SettingController) updateAccount(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.AccountForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	account, err := a.userService.UpdateAccount(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.settings.toasts.usernameTaken")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.settings.toasts.accountUpdated"), account, nil)
}

func (a *SettingController) delAccount(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.userService.DeleteAccount(middleware.ScopeOrgId(c), id); err != nil {
		if err == service.ErrForbidden {
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "pages.settings.toasts.lastOwner"))
			return
		}
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.settings.toasts.accountDeleted"), nil)
}

// restartPanel restarts the panel service after a delay.
func (a *SettingController) restartPanel(c *gin.Context) {
	err := a.panelService.RestartPanel(time.Second * 3)
	jsonMsg(c, I18nWeb(c, "pages.settings.toasts.saved"), err)
}
