package recipe

import (
	"context"
	"mime/multipart"
	"testing"

	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepo struct {
	recipes map[string]*entities.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*entities.Recipe)}
}

func (f *fakeRecipeRepo) CreateRecipe(_ context.Context, r *entities.Recipe) error {
	f.recipes[r.ID.String()] = r
	return nil
}

func (f *fakeRecipeRepo) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeRecipeRepo) GetRecipes(_ context.Context, userID string, mealType string, page, limit int) ([]*entities.Recipe, int64, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.UserID.String() != userID {
			continue
		}
		if mealType != "" && mealType != "all" && r.MealType != mealType {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRecipeRepo) UpdateRecipe(_ context.Context, r *entities.Recipe) error {
	f.recipes[r.ID.String()] = r
	return nil
}

func (f *fakeRecipeRepo) DeleteRecipe(_ context.Context, id string) error {
	delete(f.recipes, id)
	return nil
}

type fakeStorage struct {
	uploads []string
	deleted []string
}

func (f *fakeStorage) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeStorage) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://files.test/" + objectKey
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	const prefix = "https://files.test/"
	if len(link) <= len(prefix) {
		return ""
	}
	return link[len(prefix):]
}

func TestJoinAndSplitLines(t *testing.T) {
	lines := []string{"flour", "2 eggs", "a pinch of salt"}

	joined := JoinLines(lines)
	assert.Equal(t, "flour\n2 eggs\na pinch of salt", joined)
	assert.Equal(t, lines, SplitLines(joined))

	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"one", "", "three"}, SplitLines("one\n\nthree"))
}

func TestCreateAndGetRecipe(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepo(), &fakeStorage{})
	userID := uuid.New().String()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:        "Buttermilk Pancakes",
		Description:  "weekend staple",
		MealType:     "breakfast",
		Ingredients:  []string{"flour", "buttermilk", "eggs"},
		Instructions: []string{"mix dry", "fold in wet", "fry"},
		Tags:         []string{"quick", "family"},
	}, userID)
	require.NoError(t, err)

	got, err := service.GetRecipeDetail(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Buttermilk Pancakes", got.Title)
	assert.Equal(t, []string{"flour", "buttermilk", "eggs"}, got.Ingredients)
	assert.Equal(t, []string{"mix dry", "fold in wet", "fry"}, got.Instructions)
	assert.Equal(t, []string{"quick", "family"}, got.Tags)
}

func TestRecipeOwnership(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepo(), &fakeStorage{})
	userID := uuid.New().String()
	stranger := uuid.New().String()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Secret Sauce",
		MealType:    "dinner",
		Ingredients: []string{"ketchup"},
	}, userID)
	require.NoError(t, err)

	_, err = service.GetRecipeDetail(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Title: "Stolen Sauce"}, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	err = service.DeleteRecipe(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	_, err = service.GetRecipeDetail(ctx, uuid.New().String(), userID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestUpdateRecipePartialFields(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepo(), &fakeStorage{})
	userID := uuid.New().String()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Chili",
		MealType:    "dinner",
		Ingredients: []string{"beans", "beef"},
	}, userID)
	require.NoError(t, err)

	// Only the ingredients change; everything else is untouched.
	err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Ingredients: []string{"beans", "beef", "chipotle"},
	}, userID)
	require.NoError(t, err)

	got, err := service.GetRecipeDetail(ctx, created.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Chili", got.Title)
	assert.Equal(t, "dinner", got.MealType)
	assert.Equal(t, []string{"beans", "beef", "chipotle"}, got.Ingredients)
}

func TestDeleteRecipeCleansUpImage(t *testing.T) {
	repo := newFakeRecipeRepo()
	store := &fakeStorage{}
	service := NewRecipeService(repo, store)
	userID := uuid.New().String()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Roast",
		MealType:    "dinner",
		Ingredients: []string{"beef"},
	}, userID)
	require.NoError(t, err)

	image := &multipart.FileHeader{Filename: "roast.jpg"}
	link, err := service.UploadRecipeImage(ctx, created.ID, image, userID)
	require.NoError(t, err)
	assert.Contains(t, link, "recipes/")

	require.NoError(t, service.DeleteRecipe(ctx, created.ID, userID))
	require.Len(t, store.deleted, 1)
	assert.Contains(t, store.deleted[0], "recipes/")
}

func TestGetRecipesFiltersByMealType(t *testing.T) {
	service := NewRecipeService(newFakeRecipeRepo(), &fakeStorage{})
	userID := uuid.New().String()
	ctx := context.Background()

	for _, r := range []struct{ title, mealType string }{
		{"Pancakes", "breakfast"},
		{"Omelette", "breakfast"},
		{"Chili", "dinner"},
	} {
		_, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
			Title:       r.title,
			MealType:    r.mealType,
			Ingredients: []string{"something"},
		}, userID)
		require.NoError(t, err)
	}

	breakfast, count, err := service.GetRecipes(ctx, userID, "breakfast", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, breakfast, 2)

	all, count, err := service.GetRecipes(ctx, userID, "all", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, all, 3)
}
