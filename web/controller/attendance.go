package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// AttendanceController handles attendance records for the panel. Kiosk
// check-in by code lives on the public index routes instead.
type AttendanceController struct {
	attendanceService service.AttendanceService
}

func NewAttendanceController(g *gin.RouterGroup) *AttendanceController {
	a := &AttendanceController{}
	a.initRouter(g)
	return a
}

func (a *AttendanceController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getRecords)
	g.GET("/get/:id", a.getRecord)

	g.POST("/add", a.addRecord)
	g.POST("/update/:id", a.updateRecord)
	g.POST("/del/:id", middleware.RequireMutate(), a.delRecord)
}

func (a *AttendanceController) getRecords(c *gin.Context) {
	var filter service.AttendanceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	records, err := a.attendanceService.GetRecords(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, records, nil)
}

func (a *AttendanceController) getRecord(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	record, err := a.attendanceService.GetRecord(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, record, nil)
}

func (a *AttendanceController) addRecord(c *gin.Context) {
	form := &service.AttendanceForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	record, err := a.attendanceService.AddRecord(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.attendance.toasts.alreadyRecorded")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.attendance.toasts.recorded"), record, nil)
}

func (a *AttendanceController) updateRecord(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.AttendanceForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	record, err := a.attendanceService.UpdateRecord(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.attendance.toasts.alreadyRecorded")
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.attendance.toasts.updated"), record, nil)
}

func (a *AttendanceController) delRecord(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.attendanceService.DeleteRecord(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.attendance.toasts.deleted"), nil)
}
