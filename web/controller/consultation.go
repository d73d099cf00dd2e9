package controller

import (
	"errors"
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// SuggestForm carries raw consultation notes for the AI summary endpoint.
type SuggestForm struct {
	Notes string `json:"notes" form:"notes"`
}

// ConsultationController handles consultation records and the AI summary
// suggestion endpoint.
type ConsultationController struct {
	consultationService service.ConsultationService
	aiService           *service.AIService
}

func NewConsultationController(g *gin.RouterGroup, aiService *service.AIService) *ConsultationController {
	a := &ConsultationController{aiService: aiService}
	a.initRouter(g)
	return a
}

func (a *ConsultationController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getConsultations)
	g.GET("/get/:id", a.getConsultation)

	g.POST("/add", a.addConsultation)
	g.POST("/update/:id", a.updateConsultation)
	g.POST("/del/:id", middleware.RequireMutate(), a.delConsultation)
	g.POST("/suggestSummary", a.suggestSummary)
}

func (a *ConsultationController) getConsultations(c *gin.Context) {
	var filter service.ConsultationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	consultations, err := a.consultationService.GetConsultations(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, consultations, nil)
}

func (a *ConsultationController) getConsultation(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	consultation, err := a.consultationService.GetConsultation(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, consultation, nil)
}

func (a *ConsultationController) addConsultation(c *gin.Context) {
	form := &service.ConsultationForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	consultation, err := a.consultationService.AddConsultation(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.consultations.toasts.created"), consultation, nil)
}

func (a *ConsultationController) updateConsultation(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ConsultationForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	consultation, err := a.consultationService.UpdateConsultation(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.consultations.toasts.updated"), consultation, nil)
}

func (a *ConsultationController) delConsultation(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.consultationService.DeleteConsultation(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.consultations.toasts.deleted"), nil)
}

// suggestSummary asks Gemini for a short summary of raw consultation notes.
func (a *ConsultationController) suggestSummary(c *gin.Context) {
	var form SuggestForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	user := middleware.ScopeUser(c)
	summary, err := a.aiService.SuggestSummary(c.Request.Context(), user.Id, form.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureDisabled):
			pureJsonMsg(c, http.StatusForbidden, false, I18nWeb(c, "pages.consultations.toasts.aiDisabled"))
		case errors.Is(err, service.ErrConflict):
			pureJsonMsg(c, http.StatusTooManyRequests, false, I18nWeb(c, "pages.consultations.toasts.aiRateLimited"))
		default:
			jsonErr(c, err)
		}
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.consultations.toasts.aiSuggested"), summary, nil)
}
