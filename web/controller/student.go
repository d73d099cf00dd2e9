package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// StudentController handles the student roster API.
type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(g *gin.RouterGroup) *StudentController {
	a := &StudentController{}
	a.initRouter(g)
	return a
}

func (a *StudentController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getStudents)
	g.GET("/get/:id", a.getStudent)
	g.GET("/qr/:id", a.checkinQR)

	g.POST("/add", a.addStudent)
	g.POST("/update/:id", a.updateStudent)
	g.POST("/del/:id", middleware.RequireMutate(), a.delStudent)
}

func (a *StudentController) getStudents(c *gin.Context) {
	var filter service.StudentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	students, err := a.studentService.GetStudents(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, students, nil)
}

func (a *StudentController) getStudent(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	student, err := a.studentService.GetStudent(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, student, nil)
}

// checkinQR serves the student's check-in code as a QR PNG for printing.
func (a *StudentController) checkinQR(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	png, err := a.studentService.CheckinQR(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (a *StudentController) addStudent(c *gin.Context) {
	form := &service.StudentForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	student, err := a.studentService.AddStudent(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.students.toasts.created"), student, nil)
}

func (a *StudentController) updateStudent(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.StudentForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	student, err := a.studentService.UpdateStudent(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.students.toasts.updated"), student, nil)
}

func (a *StudentController) delStudent(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.studentService.DeleteStudent(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.students.toasts.deleted"), nil)
}
