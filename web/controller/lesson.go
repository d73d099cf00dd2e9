package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	lessonService service.LessonService
}

func NewLessonController(g *gin.RouterGroup) *LessonController {
	a := &LessonController{}
	a.initRouter(g)
	return a
}

func (a *LessonController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getLessons)
	g.GET("/get/:id", a.getLesson)

	g.POST("/add", a.addLesson)
	g.POST("/update/:id", a.updateLesson)
	g.POST("/del/:id", middleware.RequireMutate(), a.delLesson)
}

func (a *LessonController) getLessons(c *gin.Context) {
	var filter service.LessonFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	lessons, err := a.lessonService.GetLessons(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, lessons, nil)
}

func (a *LessonController) getLesson(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	lesson, err := a.lessonService.GetLesson(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, lesson, nil)
}

func (a *LessonController) addLesson(c *gin.Context) {
	form := &service.LessonForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	lesson, err := a.lessonService.AddLesson(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.lessons.toasts.created"), lesson, nil)
}

func (a *LessonController) updateLesson(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.LessonForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	lesson, err := a.lessonService.UpdateLesson(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.lessons.toasts.updated"), lesson, nil)
}

func (a *LessonController) delLesson(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.lessonService.DeleteLesson(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.lessons.toasts.deleted"), nil)
}
