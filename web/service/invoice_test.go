package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPaid(t *testing.T) {
	setupTest(t)

	invoiceService := InvoiceService{}
	studentId := seedStudent(t, 1, "Kwon Serin")

	invoice, err := invoiceService.AddInvoice(1, &InvoiceForm{
		StudentId: studentId,
		Title:     "March tuition",
		Amount:    450000,
		DueDate:   "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", invoice.Status)

	paid, err := invoiceService.MarkPaid(1, invoice.Id)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.NotZero(t, paid.PaidAt)

	// Paying twice is a conflict.
	_, err = invoiceService.MarkPaid(1, invoice.Id)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPaymentLinkDisabledByDefault(t *testing.T) {
	setupTest(t)

	invoiceService := InvoiceService{}
	studentId := seedStudent(t, 1, "Shin Taeyang")

	invoice, err := invoiceService.AddInvoice(1, &InvoiceForm{
		StudentId: studentId,
		Title:     "April tuition",
		Amount:    450000,
	})
	require.NoError(t, err)

	_, err = invoiceService.CreatePaymentLink(1, invoice.Id)
	assert.ErrorIs(t, err, ErrFeatureDisabled)
}

func TestMonthlyTotals(t *testing.T) {
	setupTest(t)

	invoiceService := InvoiceService{}
	expenseService := ExpenseService{}
	studentId := seedStudent(t, 1, "Joo Minseo")

	mk := func(title, due string, amount int64, pay bool) {
		invoice, err := invoiceService.AddInvoice(1, &InvoiceForm{
			StudentId: studentId,
			Title:     title,
			Amount:    amount,
			DueDate:   due,
		})
		require.NoError(t, err)
		if pay {
			_, err = invoiceService.MarkPaid(1, invoice.Id)
			require.NoError(t, err)
		}
	}

	mk("March tuition", "2026-03-10", 450000, true)
	mk("March materials", "2026-03-15", 50000, true)
	mk("March unpaid", "2026-03-20", 99999, false)
	mk("April tuition", "2026-04-10", 450000, true)

	_, err := expenseService.AddExpense(1, &ExpenseForm{
		Category:    "rent",
		Amount:      1200000,
		Description: "March rent",
		ExpenseDate: "2026-03-01",
	})
	require.NoError(t, err)

	income, expense, err := invoiceService.MonthlyTotals(1, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, int64(500000), income, "only paid invoices due in the month count")
	assert.Equal(t, int64(1200000), expense)
}

func TestInvoiceUpdateRejectsForeignStudent(t *testing.T) {
	setupTest(t)
	otherOrg := seedOrg(t, "invoice-owner")

	invoiceService := InvoiceService{}
	studentId := seedStudent(t, 1, "Bae Jiho")
	foreignStudent := seedStudent(t, otherOrg, "Outside Kid")

	invoice, err := invoiceService.AddInvoice(1, &InvoiceForm{
		StudentId: studentId,
		Title:     "March tuition",
		Amount:    450000,
	})
	require.NoError(t, err)

	_, err = invoiceService.UpdateInvoice(1, invoice.Id, &InvoiceForm{
		StudentId: foreignStudent,
		Title:     "March tuition",
		Amount:    450000,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	kept, err := invoiceService.GetInvoice(1, invoice.Id)
	require.NoError(t, err)
	assert.Equal(t, studentId, kept.StudentId)
}
