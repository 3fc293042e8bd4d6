package domain

import "errors"

var (
	MessageSuccessPaymentUpdate = "payment status updated successfully"
	MessageFailedPaymentUpdate  = "failed to update payment status"

	ErrPaymentFailed = errors.New("payment processing failed")
)

type (
	PaymentRequest struct {
		OrderID string
		Amount  int64
		Email   string
	}

	PaymentResponse struct {
		Token      string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	// PaymentNotificationRequest is the Midtrans HTTP notification payload,
	// trimmed to the fields we act on.
	PaymentNotificationRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
