package recipe

import (
	"context"
	"strings"
	"testing"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{recipes: map[string]*entities.Recipe{}}
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	if rec, ok := r.recipes[id]; ok {
		return rec, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRecipeRepository) GetRecipes(_ context.Context, foodID string, search string, _, _ int) ([]*entities.Recipe, int64, error) {
	var out []*entities.Recipe
	for _, rec := range r.recipes {
		if foodID != "" && rec.FoodID.String() != foodID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(search)) {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.recipes[recipe.ID.String()] = recipe
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(r.recipes, id)
	return nil
}

type fakeFoodRepository struct {
	food.FoodRepository
	foods map[string]*entities.Food
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[string]*entities.Food{}}
}

func (r *fakeFoodRepository) addFood(name string, groupID uuid.UUID) *entities.Food {
	f := &entities.Food{ID: uuid.New(), Name: name, GroupID: groupID}
	r.foods[groupID.String()+"/"+name] = f
	return f
}

func (r *fakeFoodRepository) GetFoodByName(_ context.Context, name string, groupID string) (*entities.Food, error) {
	if f, ok := r.foods[groupID+"/"+name]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestRecipeService() (RecipeService, *fakeRecipeRepository, *fakeFoodRepository) {
	recipes := newFakeRecipeRepository()
	foods := newFakeFoodRepository()
	return NewRecipeService(recipes, foods), recipes, foods
}

func TestCreateRecipeRequiresExistingFood(t *testing.T) {
	service, _, foods := newTestRecipeService()
	gID := uuid.New()
	foods.addFood("Phở bò", gID)

	recipe, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		FoodName:    "Phở bò",
		Name:        "Phở bò Nam Định",
		Description: "Nước dùng ninh xương 8 tiếng.",
	}, uuid.NewString(), gID.String())
	require.NoError(t, err)
	assert.Equal(t, "Phở bò Nam Định", recipe.Name)

	// The food is never auto created here.
	_, err = service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		FoodName: "Bún chả",
		Name:     "Bún chả Hà Nội",
	}, uuid.NewString(), gID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeFoodNotFound)
}

func TestCreateRecipeValidation(t *testing.T) {
	service, _, _ := newTestRecipeService()
	ctx := context.Background()

	_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "Phở"}, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeMissingFields)

	_, err = service.CreateRecipe(ctx, domain.CreateRecipeRequest{FoodName: "  ", Name: "Phở"}, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeBadFoodName)

	_, err = service.CreateRecipe(ctx, domain.CreateRecipeRequest{FoodName: "Phở bò", Name: " "}, uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrRecipeBadName)
}

func TestGetRecipesFilterByFoodName(t *testing.T) {
	service, _, foods := newTestRecipeService()
	gID := uuid.New()
	foods.addFood("Phở bò", gID)
	foods.addFood("Bún chả", gID)

	for _, name := range []string{"Phở bò Nam Định", "Phở bò Hà Nội"} {
		_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
			FoodName: "Phở bò",
			Name:     name,
		}, uuid.NewString(), gID.String())
		require.NoError(t, err)
	}
	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		FoodName: "Bún chả",
		Name:     "Bún chả Hà Nội",
	}, uuid.NewString(), gID.String())
	require.NoError(t, err)

	recipes, total, err := service.GetRecipes(context.Background(), gID.String(), "Phở bò", "", 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, recipes, 2)

	_, _, err = service.GetRecipes(context.Background(), gID.String(), "Không có", "", 1, 20)
	assert.ErrorIs(t, err, domain.ErrRecipeFoodNotFound)
}

func TestUpdateRecipeAllowsClearingDescription(t *testing.T) {
	service, _, foods := newTestRecipeService()
	gID := uuid.New()
	foods.addFood("Phở bò", gID)

	recipe, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		FoodName:    "Phở bò",
		Name:        "Phở bò Nam Định",
		Description: "Bản nháp.",
	}, uuid.NewString(), gID.String())
	require.NoError(t, err)

	empty := ""
	updated, err := service.UpdateRecipe(context.Background(), domain.UpdateRecipeRequest{
		RecipeID:       recipe.ID.String(),
		NewDescription: &empty,
	}, gID.String())
	require.NoError(t, err)
	assert.Empty(t, updated.Description)

	_, err = service.UpdateRecipe(context.Background(), domain.UpdateRecipeRequest{
		RecipeID: recipe.ID.String(),
	}, gID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeUpdateNoFields)
}

func TestDeleteRecipe(t *testing.T) {
	service, recipes, foods := newTestRecipeService()
	gID := uuid.New()
	foods.addFood("Phở bò", gID)

	recipe, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		FoodName: "Phở bò",
		Name:     "Phở bò Nam Định",
	}, uuid.NewString(), gID.String())
	require.NoError(t, err)

	err = service.DeleteRecipe(context.Background(), domain.DeleteRecipeRequest{RecipeID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrRecipeDeleteNotFound)

	err = service.DeleteRecipe(context.Background(), domain.DeleteRecipeRequest{RecipeID: recipe.ID.String()})
	require.NoError(t, err)
	assert.Empty(t, recipes.recipes)
}
