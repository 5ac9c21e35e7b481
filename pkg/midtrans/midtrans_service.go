package midtrans

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/internal/utils"
	"Meal-Planner-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.MidtransPaymentRequest, userID string) (domain.MidtransPaymentResponse, error)
		HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error
	}

	midtransService struct {
		midtransRepository MidtransRepository
		userRepository     user.UserRepository
		snapClient         snap.Client
	}
)

func NewMidtransService(midtransRepository MidtransRepository, userRepository user.UserRepository) MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{
		midtransRepository: midtransRepository,
		userRepository:     userRepository,
		snapClient:         client,
	}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.MidtransPaymentRequest, userID string) (domain.MidtransPaymentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MidtransPaymentResponse{}, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("SUB-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.MidtransPaymentResponse{}, domain.ErrPaymentFailed
	}

	transaction := &entities.Transaction{
		ID:      uuid.New(),
		UserID:  userUUID,
		OrderID: orderID,
		Amount:  req.Amount,
		Status:  "Pending",
	}

	if err := s.midtransRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.MidtransPaymentResponse{}, err
	}

	return domain.MidtransPaymentResponse{
		OrderID: orderID,
		Invoice: snapResp.RedirectURL,
	}, nil
}

func (s *midtransService) HandleWebhook(ctx context.Context, req domain.MidtransWebhookRequest) error {
	transaction, err := s.midtransRepository.GetTransactionByOrderID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTransactionNotFound
		}
		return err
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus != "" && req.FraudStatus != "accept" {
			transaction.Status = "Failed"
			break
		}
		transaction.Status = "Settled"
		transaction.PaymentType = req.PaymentType

		until := time.Now().AddDate(0, 1, 0)
		if err := s.userRepository.ActivatePremium(ctx, transaction.UserID.String(), until); err != nil {
			return err
		}
	case "deny", "cancel", "expire", "failure":
		transaction.Status = "Failed"
	default:
		// "pending" and anything unrecognized leaves the transaction as is.
		return nil
	}

	return s.midtransRepository.UpdateTransaction(ctx, transaction)
}
