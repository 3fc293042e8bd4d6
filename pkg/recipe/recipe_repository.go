package recipe

import (
	"context"

	"EcoBite-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		FindIngredientsByName(ctx context.Context, name string) ([]*entities.RecipeIngredient, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		GetIngredientsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredient, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("recipe_id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByUser(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Where("recipe_id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

// FindIngredientsByName matches on substring, case-insensitively. LOWER LIKE
// keeps the query portable across postgres and sqlite.
func (r *recipeRepository) FindIngredientsByName(ctx context.Context, name string) ([]*entities.RecipeIngredient, error) {
	var ingredients []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("LOWER(item_name) LIKE LOWER(?)", "%"+name+"%").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	if len(ids) == 0 {
		return []*entities.Recipe{}, nil
	}
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("recipe_id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetIngredientsByRecipeID(ctx context.Context, recipeID uuid.UUID) ([]*entities.RecipeIngredient, error) {
	var ingredients []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
