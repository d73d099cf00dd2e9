package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// ReorderForm carries the new tile order, first to last.
type ReorderForm struct {
	Types []string `json:"types" form:"types"`
}

// WidgetController handles the caller's dashboard layout.
type WidgetController struct {
	widgetService service.WidgetService
}

func NewWidgetController(g *gin.RouterGroup) *WidgetController {
	a := &WidgetController{}
	a.initRouter(g)
	return a
}

func (a *WidgetController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getWidgets)

	g.POST("/update", a.updateWidget)
	g.POST("/reorder", a.reorder)
	g.POST("/reset", a.reset)
}

func (a *WidgetController) getWidgets(c *gin.Context) {
	user := middleware.ScopeUser(c)
	widgets, err := a.widgetService.GetWidgets(middleware.ScopeOrgId(c), user.Id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, widgets, nil)
}

func (a *WidgetController) updateWidget(c *gin.Context) {
	form := &service.WidgetForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	user := middleware.ScopeUser(c)
	widget, err := a.widgetService.UpdateWidget(middleware.ScopeOrgId(c), user.Id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.dashboard.toasts.layoutSaved"), widget, nil)
}

func (a *WidgetController) reorder(c *gin.Context) {
	var form ReorderForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	user := middleware.ScopeUser(c)
	if err := a.widgetService.Reorder(middleware.ScopeOrgId(c), user.Id, form.Types); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.dashboard.toasts.layoutSaved"), nil)
}

func (a *WidgetController) reset(c *gin.Context) {
	user := middleware.ScopeUser(c)
	if err := a.widgetService.ResetWidgets(middleware.ScopeOrgId(c), user.Id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.dashboard.toasts.layoutSaved"), nil)
}
