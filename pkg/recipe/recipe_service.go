package recipe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"EcoBite-Backend/domain"
	"EcoBite-Backend/entities"
	"EcoBite-Backend/pkg/inventory"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		FindRecipesByIngredient(ctx context.Context, userID string, ingredientName string) ([]domain.MatchedRecipe, error)
		CookRecipe(ctx context.Context, req domain.CookRecipeRequest, userID string) (domain.CookRecipeResponse, error)
		CookCustom(ctx context.Context, req domain.CookCustomRequest, userID string) (domain.CookRecipeResponse, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, inventoryRepository inventory.InventoryRepository) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// MatchPercentage rounds to the nearest whole percent. A recipe with no
// ingredients scores zero rather than dividing by zero.
func MatchPercentage(available, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(available) / float64(total) * 100))
}

func toIngredientResponse(ing *entities.RecipeIngredient) domain.RecipeIngredientResponse {
	return domain.RecipeIngredientResponse{
		IngredientID:   ing.IngredientID.String(),
		ItemName:       ing.ItemName,
		QuantityNeeded: ing.QuantityNeeded,
		Unit:           ing.Unit,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	response := domain.RecipeResponse{
		RecipeID:     recipe.RecipeID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		CreatedAt:    recipe.CreatedAt,
	}
	for _, ing := range recipe.Ingredients {
		response.Ingredients = append(response.Ingredients, toIngredientResponse(ing))
	}
	return response
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		RecipeID:     uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
			IngredientID:   uuid.New(),
			RecipeID:       recipe.RecipeID,
			ItemName:       ing.ItemName,
			QuantityNeeded: ing.QuantityNeeded,
			Unit:           ing.Unit,
		})
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeResponse{}, domain.ErrUnauthorizedRecipe
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipe
	}

	return s.recipeRepository.DeleteRecipe(ctx, id)
}

// FindRecipesByIngredient scores every recipe that mentions the searched
// ingredient against the caller's current inventory. Candidate discovery is a
// substring match; the available/missing split uses exact name equality, so a
// search for "chicken" can surface a recipe whose "chicken breast" still
// counts as missing.
func (s *recipeService) FindRecipesByIngredient(ctx context.Context, userID string, ingredientName string) ([]domain.MatchedRecipe, error) {
	name := strings.TrimSpace(ingredientName)
	if name == "" {
		return nil, domain.ErrEmptyIngredientName
	}

	candidates, err := s.recipeRepository.FindIngredientsByName(ctx, name)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)
	var recipeIDs []uuid.UUID
	for _, c := range candidates {
		if !seen[c.RecipeID] {
			seen[c.RecipeID] = true
			recipeIDs = append(recipeIDs, c.RecipeID)
		}
	}

	if len(recipeIDs) == 0 {
		return []domain.MatchedRecipe{}, nil
	}

	recipes, err := s.recipeRepository.GetRecipesByIDs(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[string]bool, len(items))
	for _, item := range items {
		owned[normalizeName(item.ItemName)] = true
	}

	matched := make([]domain.MatchedRecipe, 0, len(recipes))
	for _, recipe := range recipes {
		m := domain.MatchedRecipe{
			RecipeID:     recipe.RecipeID.String(),
			Title:        recipe.Title,
			Description:  recipe.Description,
			Instructions: recipe.Instructions,
			CreatedAt:    recipe.CreatedAt,
			Ingredients:  []domain.RecipeIngredientResponse{},
			Available:    []domain.RecipeIngredientResponse{},
			Missing:      []domain.RecipeIngredientResponse{},
		}

		ingredients, err := s.recipeRepository.GetIngredientsByRecipeID(ctx, recipe.RecipeID)
		if err != nil {
			// One broken recipe must not take the whole suggestion list down.
			log.Printf("failed to load ingredients for recipe %s: %v", recipe.RecipeID, err)
			m.HasError = true
			matched = append(matched, m)
			continue
		}

		for _, ing := range ingredients {
			resp := toIngredientResponse(ing)
			m.Ingredients = append(m.Ingredients, resp)
			if owned[normalizeName(ing.ItemName)] {
				m.Available = append(m.Available, resp)
			} else {
				m.Missing = append(m.Missing, resp)
			}
		}

		m.AvailableCount = len(m.Available)
		m.MissingCount = len(m.Missing)
		m.MatchPercentage = MatchPercentage(m.AvailableCount, len(m.Ingredients))
		matched = append(matched, m)
	}

	SortMatches(matched)
	return matched, nil
}

// SortMatches orders fully-cookable recipes first, then by descending match
// percentage, then by fewest missing ingredients. The sort is stable so equal
// recipes keep their retrieval order.
func SortMatches(matches []domain.MatchedRecipe) {
	sort.SliceStable(matches, func(i, j int) bool {
		fullI := matches[i].MatchPercentage == 100
		fullJ := matches[j].MatchPercentage == 100
		if fullI != fullJ {
			return fullI
		}
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return matches[i].MissingCount < matches[j].MissingCount
	})
}

// CookRecipe subtracts the recipe's ingredient quantities from the caller's
// inventory and records one usage log per consumed item. The whole batch runs
// in a single transaction so a mid-loop failure leaves inventory untouched.
func (s *recipeService) CookRecipe(ctx context.Context, req domain.CookRecipeRequest, userID string) (domain.CookRecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CookRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CookRecipeResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.CookRecipeResponse{}, domain.ErrUnauthorizedRecipe
	}

	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.CookRecipeResponse{}, err
	}
	byName := make(map[string]*entities.InventoryItem, len(items))
	for _, item := range items {
		byName[normalizeName(item.ItemName)] = item
	}

	var response domain.CookRecipeResponse
	now := time.Now()

	err = s.inventoryRepository.WithTransaction(ctx, func(txRepo inventory.InventoryRepository) error {
		for _, ing := range recipe.Ingredients {
			item, ok := byName[normalizeName(ing.ItemName)]
			if !ok {
				// Missing ingredients are simply skipped; the cook already
				// saw them listed as missing before confirming.
				continue
			}

			if !strings.EqualFold(item.Unit, ing.Unit) {
				log.Printf("unit mismatch for %q: inventory %s vs recipe %s, subtracting raw quantities",
					item.ItemName, item.Unit, ing.Unit)
			}

			usageLog := &entities.UsageLog{
				LogID:      uuid.New(),
				UserID:     item.UserID,
				ItemID:     item.ItemID,
				ActionType: "cooked",
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				Cost:       item.Cost,
				ActionDate: now,
				Notes:      fmt.Sprintf("Used %g %s in recipe: %s", ing.QuantityNeeded, ing.Unit, recipe.Title),
			}
			if err := txRepo.AddUsageLog(ctx, usageLog); err != nil {
				return err
			}

			newQuantity := float64(item.Quantity) - ing.QuantityNeeded
			if newQuantity <= 0 {
				if err := txRepo.DeleteItem(ctx, item.ItemID.String()); err != nil {
					return err
				}
				response.DeletedItems++
				continue
			}

			item.Quantity = int(math.Floor(newQuantity))
			if err := txRepo.UpdateItem(ctx, item); err != nil {
				return err
			}
			response.UpdatedItems++
		}
		return nil
	})
	if err != nil {
		return domain.CookRecipeResponse{}, err
	}

	return response, nil
}

// CookCustom logs an ad-hoc meal made from hand-picked items. Every selected
// item is consumed in full.
func (s *recipeService) CookCustom(ctx context.Context, req domain.CookCustomRequest, userID string) (domain.CookRecipeResponse, error) {
	if len(req.ItemIDs) == 0 {
		return domain.CookRecipeResponse{}, domain.ErrNoIngredientsSelected
	}

	var response domain.CookRecipeResponse
	now := time.Now()

	err := s.inventoryRepository.WithTransaction(ctx, func(txRepo inventory.InventoryRepository) error {
		for _, id := range req.ItemIDs {
			item, err := txRepo.GetItemByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrItemNotFound
				}
				return err
			}

			if item.UserID.String() != userID {
				return domain.ErrUnauthorizedItem
			}

			usageLog := &entities.UsageLog{
				LogID:      uuid.New(),
				UserID:     item.UserID,
				ItemID:     item.ItemID,
				ActionType: "cooked",
				Quantity:   item.Quantity,
				Unit:       item.Unit,
				Cost:       item.Cost,
				ActionDate: now,
				Notes:      fmt.Sprintf("Custom cooking with %s", item.ItemName),
			}
			if err := txRepo.AddUsageLog(ctx, usageLog); err != nil {
				return err
			}

			if err := txRepo.DeleteItem(ctx, id); err != nil {
				return err
			}
			response.DeletedItems++
		}
		return nil
	})
	if err != nil {
		return domain.CookRecipeResponse{}, err
	}

	return response, nil
}
