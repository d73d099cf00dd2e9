package controller

import (
	"net/http"
	"strconv"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// ExamController handles exams and per-exam score entry.
type ExamController struct {
	examService service.ExamService
}

func NewExamController(g *gin.RouterGroup) *ExamController {
	a := &ExamController{}
	a.initRouter(g)
	return a
}

func (a *ExamController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getExams)
	g.GET("/get/:id", a.getExam)
	g.GET("/:id/results", a.getResults)

	g.POST("/add", a.addExam)
	g.POST("/update/:id", a.updateExam)
	g.POST("/del/:id", middleware.RequireMutate(), a.delExam)
	g.POST("/:id/results", a.saveResult)
	g.POST("/:id/results/del/:studentId", middleware.RequireMutate(), a.delResult)
}

func (a *ExamController) getExams(c *gin.Context) {
	classId, _ := strconv.Atoi(c.Query("classId"))
	exams, err := a.examService.GetExams(middleware.ScopeOrgId(c), classId)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, exams, nil)
}

func (a *ExamController) getExam(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	exam, err := a.examService.GetExam(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, exam, nil)
}

func (a *ExamController) getResults(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	results, err := a.examService.GetResults(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, results, nil)
}

func (a *ExamController) addExam(c *gin.Context) {
	form := &service.ExamForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	exam, err := a.examService.AddExam(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.exams.toasts.created"), exam, nil)
}

func (a *ExamController) updateExam(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ExamForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	exam, err := a.examService.UpdateExam(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.exams.toasts.updated"), exam, nil)
}

func (a *ExamController) delExam(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.examService.DeleteExam(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.exams.toasts.deleted"), nil)
}

func (a *ExamController) saveResult(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ExamResultForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	result, err := a.examService.SaveResult(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.exams.toasts.scoreSaved"), result, nil)
}

func (a *ExamController) delResult(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	studentId, ok := pathParamId(c, "studentId")
	if !ok {
		return
	}
	if err := a.examService.DeleteResult(middleware.ScopeOrgId(c), id, studentId); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.exams.toasts.scoreDeleted"), nil)
}
