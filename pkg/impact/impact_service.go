package impact

import (
	"context"
	"sort"
	"strings"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
)

type (
	ImpactService interface {
		GetSavings(ctx context.Context, userID string) (domain.SavingsResponse, error)
		GetTransactions(ctx context.Context, userID string) ([]domain.SavingsTransactionResponse, error)
		GetImpact(ctx context.Context, userID string) (domain.ImpactResponse, error)
	}

	impactService struct {
		impactRepository ImpactRepository
	}
)

func NewImpactService(impactRepository ImpactRepository) ImpactService {
	return &impactService{impactRepository: impactRepository}
}

// WeekStart truncates t to the preceding Monday at midnight.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) + 6) % 7
	return midnight.AddDate(0, 0, -offset)
}

func logCost(usageLog *entities.UsageLog) float64 {
	if usageLog.Cost == nil {
		return 0
	}
	return *usageLog.Cost
}

// EstimateKg converts a logged quantity to kilograms. Weights convert
// directly; unitless counts fall back to a half-kilogram per piece, which is
// the rough average for household grocery items.
func EstimateKg(quantity int, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kg":
		return float64(quantity)
	case "g", "gr", "gram", "grams":
		return float64(quantity) / 1000
	default:
		return float64(quantity) * 0.5
	}
}

func (s *impactService) GetSavings(ctx context.Context, userID string) (domain.SavingsResponse, error) {
	logs, err := s.impactRepository.GetUsageLogs(ctx, userID)
	if err != nil {
		return domain.SavingsResponse{}, err
	}

	balance, err := s.impactRepository.GetAvailableBalance(ctx, userID)
	if err != nil {
		return domain.SavingsResponse{}, err
	}

	weekly := make(map[time.Time]*domain.WeeklySavings)
	var totalSaved float64

	for _, usageLog := range logs {
		cost := logCost(usageLog)
		week := WeekStart(usageLog.ActionDate)
		bucket, ok := weekly[week]
		if !ok {
			bucket = &domain.WeeklySavings{WeekStart: week}
			weekly[week] = bucket
		}

		switch usageLog.ActionType {
		case "cooked":
			bucket.CookedValue += cost
			totalSaved += cost
		case "used":
			bucket.WastePreventedValue += cost
			totalSaved += cost
		case "donated":
			bucket.DonatedValue += cost
			totalSaved += cost
		}
	}

	weeks := make([]domain.WeeklySavings, 0, len(weekly))
	for _, bucket := range weekly {
		weeks = append(weeks, *bucket)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})

	return domain.SavingsResponse{
		TotalSaved: totalSaved,
		Balance:    balance,
		Weekly:     weeks,
	}, nil
}

// GetTransactions lists the savings ledger, oldest first, so the client can
// show where the balance came from.
func (s *impactService) GetTransactions(ctx context.Context, userID string) ([]domain.SavingsTransactionResponse, error) {
	txns, err := s.impactRepository.GetSavingsTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SavingsTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		response = append(response, domain.SavingsTransactionResponse{
			ID:          txn.ID.String(),
			Amount:      txn.Amount,
			Type:        txn.Type,
			Description: txn.Description,
			Balance:     txn.Balance,
			CreatedAt:   txn.CreatedAt,
		})
	}
	return response, nil
}

func (s *impactService) GetImpact(ctx context.Context, userID string) (domain.ImpactResponse, error) {
	logs, err := s.impactRepository.GetUsageLogs(ctx, userID)
	if err != nil {
		return domain.ImpactResponse{}, err
	}

	var response domain.ImpactResponse
	for _, usageLog := range logs {
		switch usageLog.ActionType {
		case "cooked":
			response.MealsCreated++
			response.FoodSavedKg += EstimateKg(usageLog.Quantity, usageLog.Unit)
		case "used":
			response.FoodSavedKg += EstimateKg(usageLog.Quantity, usageLog.Unit)
		case "donated":
			response.DonationsMade++
			response.FoodSavedKg += EstimateKg(usageLog.Quantity, usageLog.Unit)
		case "wasted":
			response.ItemsWasted++
		}
	}

	response.CO2PreventedKg = response.FoodSavedKg * domain.CO2PerKgFood
	response.WaterSavedL = response.FoodSavedKg * domain.WaterLPerKgFood
	return response, nil
}
