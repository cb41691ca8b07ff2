package core

import (
	"context"
	"fmt"

	"github.com/dayeon/seoulite/internal/model"
)

type TipService struct {
	db DB
}

func NewTipService(db DB) *TipService {
	return &TipService{db: db}
}

// Record stores a tip after its checkout session has been created at the
// payment gateway.
func (s *TipService) Record(ctx context.Context, userID string, amount int, currency, contextType, contextID, checkoutID string) (*model.Tip, error) {
	var tip model.Tip
	err := s.db.QueryRow(ctx,
		`INSERT INTO tips (user_id, amount, currency, context_type, context_id, checkout_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, amount, currency, context_type, context_id, checkout_id, created_at`,
		userID, amount, currency, contextType, contextID, checkoutID,
	).Scan(&tip.ID, &tip.UserID, &tip.Amount, &tip.Currency, &tip.ContextType, &tip.ContextID, &tip.CheckoutID, &tip.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record tip: %w", err)
	}
	return &tip, nil
}
