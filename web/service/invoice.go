package service

import (
	"fmt"
	"time"

	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
	"github.com/hakwonlab/acadpanel/logger"
	"github.com/hakwonlab/acadpanel/web/payment"

	yoopayment "github.com/rvinnie/yookassa-sdk-go/yookassa/payment"
)

type InvoiceForm struct {
	StudentId int    `json:"studentId" form:"studentId" validate:"required,min=1"`
	Title     string `json:"title" form:"title" validate:"required,min=2,max=100"`
	Amount    int64  `json:"amount" form:"amount" validate:"required,min=1"`
	DueDate   string `json:"dueDate" form:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Status    string `json:"status" form:"status" validate:"omitempty,oneof=pending paid overdue cancelled"`
}

type InvoiceFilter struct {
	StudentId int    `form:"studentId"`
	Status    string `form:"status"`
	Month     string `form:"month"`
}

type InvoiceService struct {
	settingService SettingService
}

func (s *InvoiceService) GetInvoices(orgId int, filter InvoiceFilter) ([]model.Invoice, error) {
	db := database.GetDB()
	query := db.Model(model.Invoice{}).
		Where("org_id = ?", orgId).
		Order("created_at desc")
	if filter.StudentId > 0 {
		query = query.Where("student_id = ?", filter.StudentId)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Month != "" {
		query = query.Where("due_date LIKE ?", filter.Month+"%")
	}
	var invoices []model.Invoice
	err := query.Find(&invoices).Error
	return invoices, err
}

func (s *InvoiceService) GetInvoice(orgId int, id int) (*model.Invoice, error) {
	db := database.GetDB()
	invoice := &model.Invoice{}
	err := db.Model(model.Invoice{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(invoice).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *InvoiceService) AddInvoice(orgId int, form *InvoiceForm) (*model.Invoice, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "pending"
	}
	invoice := &model.Invoice{
		OrgId:     orgId,
		StudentId: form.StudentId,
		Title:     form.Title,
		Amount:    form.Amount,
		DueDate:   form.DueDate,
		Status:    status,
	}
	return invoice, database.GetDB().Create(invoice).Error
}

func (s *InvoiceService) UpdateInvoice(orgId int, id int, form *InvoiceForm) (*model.Invoice, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	if err := checkStudentScope(orgId, form.StudentId); err != nil {
		return nil, err
	}
	invoice, err := s.GetInvoice(orgId, id)
	if err != nil {
		return nil, err
	}
	invoice.StudentId = form.StudentId
	invoice.Title = form.Title
	invoice.Amount = form.Amount
	invoice.DueDate = form.DueDate
	if form.Status != "" {
		invoice.Status = form.Status
	}
	return invoice, database.GetDB().Save(invoice).Error
}

func (s *InvoiceService) DeleteInvoice(orgId int, id int) error {
	invoice, err := s.GetInvoice(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Invoice{}, invoice.Id).Error
}

func (s *InvoiceService) MarkPaid(orgId int, id int) (*model.Invoice, error) {
	invoice, err := s.GetInvoice(orgId, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == "paid" {
		return nil, ErrConflict
	}
	invoice.Status = "paid"
	invoice.PaidAt = time.Now().UnixMilli()
	return invoice, database.GetDB().Save(invoice).Error
}

func (s *InvoiceService) gateway() (*payment.Gateway, error) {
	enabled, err := s.settingService.GetPayEnable()
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, ErrFeatureDisabled
	}
	accountId, err := s.settingService.GetPayAccountId()
	if err != nil {
		return nil, err
	}
	secretKey, err := s.settingService.GetPaySecretKey()
	if err != nil {
		return nil, err
	}
	returnURL, err := s.settingService.GetPayReturnURL()
	if err != nil {
		return nil, err
	}
	return payment.New(accountId, secretKey, returnURL), nil
}

// CreatePaymentLink opens a gateway payment for a pending invoice and returns
// the confirmation URL the parent should be sent to.
func (s *InvoiceService) CreatePaymentLink(orgId int, id int) (string, error) {
	invoice, err := s.GetInvoice(orgId, id)
	if err != nil {
		return "", err
	}
	if invoice.Status == "paid" {
		return "", ErrConflict
	}
	gateway, err := s.gateway()
	if err != nil {
		return "", err
	}
	p, err := gateway.CreatePayment(invoice.Amount, fmt.Sprintf("%s #%d", invoice.Title, invoice.Id))
	if err != nil {
		return "", err
	}
	invoice.PaymentId = p.ID
	if err := database.GetDB().Save(invoice).Error; err != nil {
		return "", err
	}
	// The SDK round-trips Confirmation through JSON, so it may come back as
	// either the concrete type or a raw map.
	switch conf := p.Confirmation.(type) {
	case *yoopayment.Redirect:
		return conf.ConfirmationURL, nil
	case yoopayment.Redirect:
		return conf.ConfirmationURL, nil
	case map[string]any:
		if u, ok := conf["confirmation_url"].(string); ok {
			return u, nil
		}
	}
	return "", nil
}

// SyncPayment polls the gateway for an invoice that has an open payment and
// flips it to paid once the payment settles.
func (s *InvoiceService) SyncPayment(orgId int, id int) (*model.Invoice, error) {
	invoice, err := s.GetInvoice(orgId, id)
	if err != nil {
		return nil, err
	}
	if invoice.PaymentId == "" || invoice.Status == "paid" {
		return invoice, nil
	}
	gateway, err := s.gateway()
	if err != nil {
		return nil, err
	}
	info, err := gateway.GetPaymentInfo(invoice.PaymentId)
	if err != nil {
		logger.Warning("payment lookup failed:", err)
		return nil, err
	}
	if payment.IsSucceeded(info) {
		invoice.Status = "paid"
		invoice.PaidAt = time.Now().UnixMilli()
		if err := database.GetDB().Save(invoice).Error; err != nil {
			return nil, err
		}
	}
	return invoice, nil
}

// MonthlyTotals sums paid invoices and expenses for one yyyy-MM month. The
// overview widgets show both numbers side by side.
func (s *InvoiceService) MonthlyTotals(orgId int, month string) (income int64, expense int64, err error) {
	db := database.GetDB()
	err = db.Model(model.Invoice{}).
		Where("org_id = ? AND status = ? AND due_date LIKE ?", orgId, "paid", month+"%").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&income).Error
	if err != nil {
		return 0, 0, err
	}
	err = db.Model(model.Expense{}).
		Where("org_id = ? AND expense_date LIKE ?", orgId, month+"%").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&expense).Error
	return income, expense, err
}
