package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// ClassController handles classes and their rosters.
type ClassController struct {
	classService service.ClassService
}

func NewClassController(g *gin.RouterGroup) *ClassController {
	a := &ClassController{}
	a.initRouter(g)
	return a
}

func (a *ClassController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getClasses)
	g.GET("/get/:id", a.getClass)
	g.GET("/:id/roster", a.getRoster)

	g.POST("/add", a.addClass)
	g.POST("/update/:id", a.updateClass)
	g.POST("/del/:id", middleware.RequireMutate(), a.delClass)
	g.POST("/:id/enroll/:studentId", a.enroll)
	g.POST("/:id/unenroll/:studentId", a.unenroll)
}

func (a *ClassController) getClasses(c *gin.Context) {
	var filter service.ClassFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	classes, err := a.classService.GetClasses(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, classes, nil)
}

func (a *ClassController) getClass(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	class, err := a.classService.GetClass(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, class, nil)
}

func (a *ClassController) getRoster(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	students, err := a.classService.GetRoster(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, students, nil)
}

func (a *ClassController) addClass(c *gin.Context) {
	form := &service.ClassForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	class, err := a.classService.AddClass(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.classes.toasts.created"), class, nil)
}

func (a *ClassController) updateClass(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ClassForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	class, err := a.classService.UpdateClass(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.classes.toasts.updated"), class, nil)
}

func (a *ClassController) delClass(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.classService.DeleteClass(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.classes.toasts.deleted"), nil)
}

func (a *ClassController) enroll(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	studentId, ok := pathParamId(c, "studentId")
	if !ok {
		return
	}
	if err := a.classService.Enroll(middleware.ScopeOrgId(c), id, studentId); err != nil {
		if err == service.ErrCapacity {
			pureJsonMsg(c, http.StatusConflict, false, I18nWeb(c, "pages.classes.toasts.classFull"))
			return
		}
		jsonConflictMsg(c, err, "pages.classes.toasts.alreadyEnrolled")
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.classes.toasts.enrolled"), nil)
}

func (a *ClassController) unenroll(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	studentId, ok := pathParamId(c, "studentId")
	if !ok {
		return
	}
	if err := a.classService.Unenroll(middleware.ScopeOrgId(c), id, studentId); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.classes.toasts.unenrolled"), nil)
}
