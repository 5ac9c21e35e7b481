package domain

import "errors"

var (
	MessageSuccessCreateTransaction = "transaction created"
	MessageSuccessHandleWebhook     = "webhook processed"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedHandleWebhook     = "failed to process webhook"

	ErrPaymentFailed       = errors.New("payment processing failed")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// SubscriptionPriceIDR is the flat price of one month of premium access.
const SubscriptionPriceIDR int64 = 49000

type (
	MidtransPaymentRequest struct {
		Amount int64  `json:"amount"`
		Email  string `json:"email" validate:"required,email"`
	}

	MidtransPaymentResponse struct {
		OrderID string `json:"order_id"`
		Invoice string `json:"invoice"`
	}

	MidtransWebhookRequest struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
)
