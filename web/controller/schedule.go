package controller

import (
	"net/http"
	"strconv"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	scheduleService service.ScheduleService
}

func NewScheduleController(g *gin.RouterGroup) *ScheduleController {
	a := &ScheduleController{}
	a.initRouter(g)
	return a
}

func (a *ScheduleController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getSchedules)
	g.GET("/get/:id", a.getSchedule)

	g.POST("/add", a.addSchedule)
	g.POST("/update/:id", a.updateSchedule)
	g.POST("/del/:id", middleware.RequireMutate(), a.delSchedule)
}

func (a *ScheduleController) getSchedules(c *gin.Context) {
	classId, _ := strconv.Atoi(c.Query("classId"))
	dayOfWeek := -1
	if day := c.Query("dayOfWeek"); day != "" {
		dayOfWeek, _ = strconv.Atoi(day)
	}
	schedules, err := a.scheduleService.GetSchedules(middleware.ScopeOrgId(c), classId, dayOfWeek)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, schedules, nil)
}

func (a *ScheduleController) getSchedule(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	schedule, err := a.scheduleService.GetSchedule(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, schedule, nil)
}

func (a *ScheduleController) addSchedule(c *gin.Context) {
	form := &service.ScheduleForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	schedule, err := a.scheduleService.AddSchedule(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.schedule.toasts.overlap")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.schedule.toasts.created"), schedule, nil)
}

func (a *ScheduleController) updateSchedule(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ScheduleForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	schedule, err := a.scheduleService.UpdateSchedule(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.schedule.toasts.overlap")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.schedule.toasts.updated"), schedule, nil)
}

func (a *ScheduleController) delSchedule(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.scheduleService.DeleteSchedule(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.schedule.toasts.deleted"), nil)
}
