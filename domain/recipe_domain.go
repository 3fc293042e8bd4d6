package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
	MessageSuccessMatchRecipes = "recipe suggestions retrieved successfully"
	MessageSuccessCookRecipe   = "recipe cooked and inventory updated"
	MessageSuccessCookCustom   = "custom cooking logged successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedGetRecipe    = "failed to retrieve recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedMatchRecipes = "failed to retrieve recipe suggestions"
	MessageFailedCookRecipe   = "failed to cook recipe"
	MessageFailedCookCustom   = "failed to log custom cooking"

	ErrRecipeNotFound         = errors.New("recipe not found")
	ErrUnauthorizedRecipe     = errors.New("unauthorized access to recipe")
	ErrEmptyIngredientName    = errors.New("ingredient name must not be empty")
	ErrNoIngredientsSelected  = errors.New("no ingredients selected")
)

type (
	RecipeIngredientRequest struct {
		ItemName       string  `json:"item_name" validate:"required"`
		QuantityNeeded float64 `json:"quantity_needed" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title        string                    `json:"title" validate:"required"`
		Description  string                    `json:"description"`
		Instructions string                    `json:"instructions"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RecipeIngredientResponse struct {
		IngredientID   string  `json:"ingredient_id"`
		ItemName       string  `json:"item_name"`
		QuantityNeeded float64 `json:"quantity_needed"`
		Unit           string  `json:"unit"`
	}

	RecipeResponse struct {
		RecipeID     string                     `json:"recipe_id"`
		Title        string                     `json:"title"`
		Description  string                     `json:"description"`
		Instructions string                     `json:"instructions"`
		CreatedAt    time.Time                  `json:"created_at"`
		Ingredients  []RecipeIngredientResponse `json:"ingredients,omitempty"`
	}

	// MatchedRecipe is derived, never persisted: a recipe scored against the
	// caller's current inventory snapshot.
	MatchedRecipe struct {
		RecipeID        string                     `json:"recipe_id"`
		Title           string                     `json:"title"`
		Description     string                     `json:"description"`
		Instructions    string                     `json:"instructions"`
		CreatedAt       time.Time                  `json:"created_at"`
		Ingredients     []RecipeIngredientResponse `json:"ingredients"`
		Available       []RecipeIngredientResponse `json:"available_ingredients"`
		Missing         []RecipeIngredientResponse `json:"missing_ingredients"`
		AvailableCount  int                        `json:"available_count"`
		MissingCount    int                        `json:"missing_count"`
		MatchPercentage int                        `json:"match_percentage"`
		HasError        bool                       `json:"has_error,omitempty"`
	}

	CookRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	CookCustomRequest struct {
		ItemIDs []string `json:"item_ids" validate:"required,min=1,dive,uuid"`
	}

	CookRecipeResponse struct {
		UpdatedItems int `json:"updated_items"`
		DeletedItems int `json:"deleted_items"`
	}
)
