package controller

import (
	"net/http"

	"github.com/hakwonlab/acadpanel/web/middleware"
	"github.com/hakwonlab/acadpanel/web/service"

	"github.com/gin-gonic/gin"
)

// InvoiceController handles tuition invoices and payment links.
type InvoiceController struct {
	invoiceService service.InvoiceService
}

func NewInvoiceController(g *gin.RouterGroup) *InvoiceController {
	a := &InvoiceController{}
	a.initRouter(g)
	return a
}

func (a *InvoiceController) initRouter(g *gin.RouterGroup) {
	g.GET("/list", a.getInvoices)
	g.GET("/get/:id", a.getInvoice)
	g.GET("/monthlyTotals", a.monthlyTotals)

	g.POST("/add", a.addInvoice)
	g.POST("/update/:id", a.updateInvoice)
	g.POST("/del/:id", middleware.RequireMutate(), a.delInvoice)
	g.POST("/:id/paymentLink", a.createPaymentLink)
	g.POST("/:id/syncPayment", a.syncPayment)
	g.POST("/:id/markPaid", middleware.RequireMutate(), a.markPaid)
}

func (a *InvoiceController) getInvoices(c *gin.Context) {
	var filter service.InvoiceFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	invoices, err := a.invoiceService.GetInvoices(middleware.ScopeOrgId(c), filter)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, invoices, nil)
}

func (a *InvoiceController) getInvoice(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	invoice, err := a.invoiceService.GetInvoice(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, invoice, nil)
}

func (a *InvoiceController) monthlyTotals(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	income, expense, err := a.invoiceService.MonthlyTotals(middleware.ScopeOrgId(c), month)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, gin.H{"income": income, "expense": expense}, nil)
}

func (a *InvoiceController) addInvoice(c *gin.Context) {
	form := &service.InvoiceForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	invoice, err := a.invoiceService.AddInvoice(middleware.ScopeOrgId(c), form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.billing.toasts.created"), invoice, nil)
}

func (a *InvoiceController) updateInvoice(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	form := &service.InvoiceForm{}
	if err := c.ShouldBind(form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "errors.invalidPayload"))
		return
	}
	invoice, err := a.invoiceService.UpdateInvoice(middleware.ScopeOrgId(c), id, form)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.billing.toasts.updated"), invoice, nil)
}

func (a *InvoiceController) delInvoice(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	if err := a.invoiceService.DeleteInvoice(middleware.ScopeOrgId(c), id); err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsg(c, I18nWeb(c, "pages.billing.toasts.deleted"), nil)
}

func (a *InvoiceController) createPaymentLink(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	url, err := a.invoiceService.CreatePaymentLink(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.billing.toasts.paymentCreated"), url, nil)
}

func (a *InvoiceController) syncPayment(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	invoice, err := a.invoiceService.SyncPayment(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonObj(c, invoice, nil)
}

func (a *InvoiceController) markPaid(c *gin.Context) {
	id, ok := pathParamId(c, "id")
	if !ok {
		return
	}
	invoice, err := a.invoiceService.MarkPaid(middleware.ScopeOrgId(c), id)
	if err != nil {
		jsonErr(c, err)
		return
	}
	jsonMsgObj(c, I18nWeb(c, "pages.billing.toasts.invoicePaid"), invoice, nil)
}
