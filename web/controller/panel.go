package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/hakwonlab/acadpanel/web/access"
	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"
)

// PanelController mounts the protected dashboard: one HTML route per page,
// each behind the organization's permission table, and the JSON API the
// pages talk to.
type PanelController struct {
	BaseController

	userService       service.UserService
	permissionService service.PermissionService
	aiService         *service.AIService

	studentController      *StudentController
	classController        *ClassController
	attendanceController   *AttendanceController
	consultationController *ConsultationController
	examController         *ExamController
	homeworkController     *HomeworkController
	lessonController       *LessonController
	invoiceController      *InvoiceController
	expenseController      *ExpenseController
	roomController         *RoomController
	scheduleController     *ScheduleController
	widgetController       *WidgetController
	serverController       *ServerController
	settingController      *SettingController
}

func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	a.initRouter(g)
	return a
}

func (a *PanelController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/panel")
	g.Use(a.checkLogin)
	g.Use(middleware.OrgScope(&a.userService))

	pages := map[access.Page]gin.HandlerFunc{
		access.PageOverview:      a.overview,
		access.PageStudents:      a.page("students"),
		access.PageClasses:       a.page("classes"),
		access.PageAttendance:    a.page("attendance"),
		access.PageConsultations: a.page("consultations"),
		access.PageExams:         a.page("exams"),
		access.PageHomework:      a.page("homework"),
		access.PageLessons:       a.page("lessons"),
		access.PageBilling:       a.page("billing"),
		access.PageSchedule:      a.page("schedule"),
		access.PageRooms:         a.page("rooms"),
		access.PageSeats:         a.page("seats"),
		access.PageExpenses:      a.page("expenses"),
		access.PageSettings:      a.page("settings"),
	}
	g.GET("/", a.overview)
	for page, handler := range pages {
		g.GET("/"+string(page), middleware.RequirePage(&a.permissionService, page), handler)
	}

	gate := func(page access.Page) gin.HandlerFunc {
		return middleware.RequirePage(&a.permissionService, page)
	}

	a.studentController = NewStudentController(g.Group("/api/students", gate(access.PageStudents)))
	a.classController = NewClassController(g.Group("/api/classes", gate(access.PageClasses)))
	a.attendanceController = NewAttendanceController(g.Group("/api/attendance", gate(access.PageAttendance)))
	a.aiService = service.NewAIService()
	a.consultationController = NewConsultationController(g.Group("/api/consultations", gate(access.PageConsultations)), a.aiService)
	a.examController = NewExamController(g.Group("/api/exams", gate(access.PageExams)))
	a.homeworkController = NewHomeworkController(g.Group("/api/homework", gate(access.PageHomework)))
	a.lessonController = NewLessonController(g.Group("/api/lessons", gate(access.PageLessons)))
	a.invoiceController = NewInvoiceController(g.Group("/api/invoices", gate(access.PageBilling)))
	a.expenseController = NewExpenseController(g.Group("/api/expenses", gate(access.PageExpenses)))
	a.roomController = NewRoomController(g.Group("/api/rooms", gate(access.PageRooms)))
	a.scheduleController = NewScheduleController(g.Group("/api/schedules", gate(access.PageSchedule)))
	a.widgetController = NewWidgetController(g.Group("/api/widgets"))
	a.serverController = NewServerController(g.Group("/api/server"))
	a.settingController = NewSettingController(g.Group("/api/settings", gate(access.PageSettings)))
}

func (a *PanelController) overview(c *gin.Context) {
	html(c, "index.html", "pages.overview.title", nil)
}

// page renders the shared panel shell for one dashboard section.
func (a *PanelController) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		html(c, "index.html", "pages."+name+".title", gin.H{"page": name})
	}
}
