package controller

import (
	"net/http"
	"strconv"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

type HomeworkController struct {
	homeworkService service.HomeworkService
}

func NewHomeworkController(g *gin.RouterGroup) *HomeworkController {
	a := &HomeworkController{}
	a.initRouter(g)
	return a
}

func (a *HomeworkController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getHomeworks)
	g.GET("/get/:id", a.getHomework)

	g.POST("/add", a.addHomework)
	g.POST("/update/:id", a.updateHomework)
	g.POST("/del/:id", middleware.RequireMutate(), a.delHomework)
}

func (a *HomeworkController) getHomeworks(c *gin.Context) {
	classId, _ := strconv.Atoi(c.Query("classId"))
	homeworks, err := a.homeworkService.GetHomeworks(middleware.ScopeOrgId(c), classId, c.Query("status"))
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, homeworks, nil)
}

func (a *HomeworkController) getHomework(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	homework, err := a.homeworkService.GetHomework(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, homework, nil)
}

func (a *HomeworkController) addHomework(c *gin.Context) {
	form := &service.HomeworkForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	homework, err := a.homeworkService.AddHomework(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.homework.toasts.created"), homework, nil)
}

func (a *HomeworkController) updateHomework(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.HomeworkForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	homework, err := a.homeworkService.UpdateHomework(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.homework.toasts.updated"), homework, nil)
}

func (a *HomeworkController) delHomework(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.homeworkService.DeleteHomework(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.homework.toasts.deleted"), nil)
}
