package midtrans

import (
	"context"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/internal/utils"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type (
	MidtransService interface {
		CreateTransaction(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResponse, error)
	}

	midtransService struct {
		client snap.Client
	}
)

func NewMidtransService() MidtransService {
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &midtransService{client: client}
}

func (s *midtransService) CreateTransaction(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResponse, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	resp, err := s.client.CreateTransaction(snapReq)
	if err != nil {
		return domain.PaymentResponse{}, domain.ErrPaymentFailed
	}

	return domain.PaymentResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
