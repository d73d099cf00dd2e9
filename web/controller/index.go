package controller

import (
	"net/http"
	"text/template"
	"time"

	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"
	"github.com/hakwonlab/acadpanel/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username      string `json:"username" form:"username"`
	Password      string `json:"password" form:"password"`
	TwoFactorCode string `json:"twoFactorCode" form:"twoFactorCode"`
}

// CheckinForm carries a student check-in code from the entrance kiosk.
type CheckinForm struct {
	Code string `json:"code" form:"code"`
}

// IndexController handles the login, registration and kiosk check-in routes.
type IndexController struct {
	BaseController

	settingService    service.SettingService
	userService       service.UserService
	orgService        service.OrgService
	attendanceService service.AttendanceService
	tgbot             service.Tgbot
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/logout", a.logout)

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig())
	g.POST("/login", loginLimit, a.login)
	g.POST("/register", a.register)
	g.POST("/checkin", a.checkin)
	g.POST("/getTwoFactorEnable", a.getTwoFactorEnable)
}

// index handles the root route, redirecting logged-in users to the panel or showing the login page.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "panel/")
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.invalidFormData"))
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyUsername"))
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.emptyPassword"))
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password, form.TwoFactorCode)
	timeStr := time.Now().Format("2006-01-02 15:04:05")
	safeUser := template.HTMLEscapeString(form.Username)

	if user == nil {
		logger.Warningf("wrong username or password for \"%s\", IP: \"%s\"", safeUser, getRemoteIp(c))
		a.tgbot.UserLoginNotify(safeUser, getRemoteIp(c), timeStr, service.LoginFail)
		pureJsonMsg(c, http.StatusOK, false, I18nWeb(c, "pages.login.toasts.wrongUsernameOrPassword"))
		return
	}

	logger.Infof("%s logged in successfully, Ip Address: %s", safeUser, getRemoteIp(c))
	a.tgbot.UserLoginNotify(safeUser, getRemoteIp(c), timeStr, service.LoginSuccess)

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("Unable to get session's max age from DB")
	}

	session.SetMaxAge(c, sessionMaxAge*60)
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("Unable to save session: ", err)
		return
	}

	jsonMsg(c, I18nWeb(c, "pages.login.toasts.successLogin"), nil)
}

// register creates a new academy with its owner account.
func (a *IndexController) register(c *gin.Context) {
	form := &service.RegisterForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	org, owner, err := a.orgService.Register(form)
	if err != nil {
		jsonConflictMsg(c, err, "pages.register.toasts.usernameTaken")
		return
	}
	logger.Infof("organization %q registered by %s", org.Name, owner.Username)
	jsonMsgObj(c, I18nWeb(c, "pages.register.toasts.orgCreated"), org, nil)
}

// checkin records a present mark from a kiosk by check-in code. The code is
// unguessable, so the route is public.
func (a *IndexController) checkin(c *gin.Context) {
	var form CheckinForm
	if err := c.ShouldBind(&form); err != nil || form.Code == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	student, err := a.attendanceService.CheckinByCode(form.Code)
	if err != nil {
		switch {
		case err == service.ErrNotFound:
			pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "pages.attendance.toasts.unknownCode"))
		default:
			jsonConflictMsg(c, err, "pages.attendance.toasts.alreadyRecorded")
		}
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.attendance.toasts.checkedIn"), student.Name, nil)
}

// logout handles user logout by clearing the session and redirecting to the login page.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	session.ClearSession(c)
	if err := sessions.Default(c).Save(); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
}

// getTwoFactorEnable retrieves the current status of two-factor authentication.
func (a *IndexController) getTwoFactorEnable(c *gin.Context) {
	status, err := a.settingService.GetTwoFactorEnable()
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, status, nil)
}
