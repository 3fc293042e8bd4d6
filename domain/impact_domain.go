package domain

import "time"

// Conversion factors for the impact dashboard. One kg of food saved from
// waste roughly corresponds to 2.5 kg CO2e and 1000 L of embedded water.
const (
	CO2PerKgFood    = 2.5
	WaterLPerKgFood = 1000.0
)

var (
	MessageSuccessGetSavings      = "savings retrieved successfully"
	MessageSuccessGetImpact       = "impact statistics retrieved successfully"
	MessageSuccessGetTransactions = "savings transactions retrieved successfully"

	MessageFailedGetSavings      = "failed to retrieve savings"
	MessageFailedGetImpact       = "failed to retrieve impact statistics"
	MessageFailedGetTransactions = "failed to retrieve savings transactions"
)

type (
	WeeklySavings struct {
		WeekStart           time.Time `json:"week_start"`
		CookedValue         float64   `json:"cooked_value"`
		WastePreventedValue float64   `json:"waste_prevented_value"`
		DonatedValue        float64   `json:"donated_value"`
	}

	SavingsResponse struct {
		TotalSaved float64         `json:"total_saved"`
		Balance    float64         `json:"balance"`
		Weekly     []WeeklySavings `json:"weekly"`
	}

	SavingsTransactionResponse struct {
		ID          string    `json:"id"`
		Amount      float64   `json:"amount"`
		Type        string    `json:"type"`
		Description string    `json:"description"`
		Balance     float64   `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ImpactResponse struct {
		FoodSavedKg    float64 `json:"food_saved_kg"`
		CO2PreventedKg float64 `json:"co2_prevented_kg"`
		WaterSavedL    float64 `json:"water_saved_l"`
		MealsCreated   int     `json:"meals_created"`
		DonationsMade  int     `json:"donations_made"`
		ItemsWasted    int     `json:"items_wasted"`
	}
)
