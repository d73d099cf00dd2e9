package service

import (
	"github.com/hakwonlab/acadpanel/database"
	"github.com/hakwonlab/acadpanel/database/model"
)

type ExpenseForm struct {
	Category      string `json:"category" form:"category" validate:"required,max=50"`
	Amount        int64  `json:"amount" form:"amount" validate:"required,min=1"`
	Description   string `json:"description" form:"description" validate:"required,max=200"`
	ExpenseDate   string `json:"expenseDate" form:"expenseDate" validate:"required,datetime=2006-01-02"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" validate:"omitempty,oneof=card cash transfer"`
	Status        string `json:"status" form:"status" validate:"omitempty,oneof=pending approved rejected"`
	Notes         string `json:"notes" form:"notes"`
}

type ExpenseFilter struct {
	Category string `form:"category"`
	Status   string `form:"status"`
	Month    string `form:"month"`
}

type ExpenseService struct{}

func (s *ExpenseService) GetExpenses(orgId int, filter ExpenseFilter) ([]model.Expense, error) {
	db := database.GetDB()
	query := db.Model(model.Expense{}).
		Where("org_id = ?", orgId).
		Order("expense_date desc")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Month != "" {
		query = query.Where("expense_date LIKE ?", filter.Month+"%")
	}
	var expenses []model.Expense
	err := query.Find(&expenses).Error
	return expenses, err
}

func (s *ExpenseService) GetExpense(orgId int, id int) (*model.Expense, error) {
	db := database.GetDB()
	expense := &model.Expense{}
	err := db.Model(model.Expense{}).
		Where("id = ? AND org_id = ?", id, orgId).
		First(expense).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) AddExpense(orgId int, form *ExpenseForm) (*model.Expense, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	status := form.Status
	if status == "" {
		status = "pending"
	}
	expense := &model.Expense{
		OrgId:         orgId,
		Category:      form.Category,
		Amount:        form.Amount,
		Description:   form.Description,
		ExpenseDate:   form.ExpenseDate,
		PaymentMethod: form.PaymentMethod,
		Status:        status,
		Notes:         form.Notes,
	}
	return expense, database.GetDB().Create(expense).Error
}

func (s *ExpenseService) UpdateExpense(orgId int, id int, form *ExpenseForm) (*model.Expense, error) {
	if err := checkStruct(form); err != nil {
		return nil, err
	}
	expense, err := s.GetExpense(orgId, id)
	if err != nil {
		return nil, err
	}
	expense.Category = form.Category
	expense.Amount = form.Amount
	expense.Description = form.Description
	expense.ExpenseDate = form.ExpenseDate
	expense.PaymentMethod = form.PaymentMethod
	if form.Status != "" {
		expense.Status = form.Status
	}
	expense.Notes = form.Notes
	return expense, database.GetDB().Save(expense).Error
}

func (s *ExpenseService) DeleteExpense(orgId int, id int) error {
	expense, err := s.GetExpense(orgId, id)
	if err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Expense{}, expense.Id).Error
}
