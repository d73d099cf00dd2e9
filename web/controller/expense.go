package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	expenseService service.ExpenseService
}

func NewExpenseController(g *gin.RouterGroup) *ExpenseController {
	a := &ExpenseController{}
	a.initRouter(g)
	return a
}

func (a *ExpenseController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getExpenses)
	g.GET("/get/:id", a.getExpense)

	g.POST("/add", a.addExpense)
	g.POST("/update/:id", a.updateExpense)
	g.POST("/del/:id", middleware.RequireMutate(), a.delExpense)
}

func (a *ExpenseController) getExpenses(c *gin.Context) {
	var filter service.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	expenses, err := a.expenseService.GetExpenses(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, expenses, nil)
}

func (a *ExpenseController) getExpense(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	expense, err := a.expenseService.GetExpense(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, expense, nil)
}

func (a *ExpenseController) addExpense(c *gin.Context) {
	form := &service.ExpenseForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	expense, err := a.expenseService.AddExpense(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.expenses.toasts.created"), expense, nil)
}

func (a *ExpenseController) updateExpense(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.ExpenseForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	expense, err := a.expenseService.UpdateExpense(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.expenses.toasts.updated"), expense, nil)
}

func (a *ExpenseController) delExpense(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.expenseService.DeleteExpense(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.expenses.toasts.deleted"), nil)
}
