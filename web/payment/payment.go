package payment

import (
	"fmt"

	"github.com/rvinnie/yookassa-sdk-go/yookassa"
	yoocommon "github.com/rvinnie/yookassa-sdk-go/yookassa/common"
	yoopayment "github.com/rvinnie/yookassa-sdk-go/yookassa/payment"

	"github.com/hakwonlab/acadpanel/logger"
)

// Gateway wraps the YooKassa client used for tuition invoices.
type Gateway struct {
	kassa     *yookassa.Client
	returnURL string
}

func New(accountID, secretKey, returnURL string) *Gateway {
	return &Gateway{
		kassa:     yookassa.NewClient(accountID, secretKey),
		returnURL: returnURL,
	}
}

// CreatePayment opens a redirect payment for one invoice and returns it with
// the confirmation URL filled in.
func (g *Gateway) CreatePayment(amount int64, description string) (*yoopayment.Payment, error) {
	paymentHandler := yookassa.NewPaymentHandler(g.kassa)

	newPayment, err := paymentHandler.CreatePayment(
		&yoopayment.Payment{
			Amount: &yoocommon.Amount{
				Value:    fmt.Sprintf("%d.00", amount),
				Currency: "KRW",
			},
			Confirmation: yoopayment.Redirect{
				Type:      "redirect",
				ReturnURL: g.returnURL,
			},
			Description: description,
		})
	if err != nil {
		logger.Warning("error occurred while creating payment", err)
		return nil, err
	}

	return newPayment, nil
}

func (g *Gateway) GetPaymentInfo(paymentID string) (*yoopayment.Payment, error) {
	paymentHandler := yookassa.NewPaymentHandler(g.kassa)

	paymentInfo, err := paymentHandler.FindPayment(paymentID)
	if err != nil {
		return nil, err
	}

	return paymentInfo, nil
}

// IsSucceeded reports whether a payment has settled.
func IsSucceeded(p *yoopayment.Payment) bool {
	return p != nil && p.Status == yoopayment.Succeeded
}
