package category

import (
	"context"
	"sort"
	"testing"

	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/pkg/recipe"

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

type fakeCategoryRepo struct {
	categories map[string]*entities.Category
	links      []*entities.CategoryRecipe
	items      []*entities.ChecklistItem
	recipeRepo *fakeRecipeRepo
}

func newFakeCategoryRepo(recipeRepo *fakeRecipeRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[string]*entities.Category),
		recipeRepo: recipeRepo,
	}
}

func (f *fakeCategoryRepo) CreateCategory(_ context.Context, c *entities.Category) error {
	f.categories[c.ID.String()] = c
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetCategories(_ context.Context, userID string) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range f.categories {
		if c.UserID.String() == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) CountLinkedRecipes(_ context.Context, categoryID string) (int64, error) {
	var count int64
	for _, l := range f.links {
		if l.CategoryID.String() == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) DeleteCategory(_ context.Context, id string) error {
	delete(f.categories, id)
	f.links = filterLinks(f.links, func(l *entities.CategoryRecipe) bool {
		return l.CategoryID.String() != id
	})
	f.items = filterItems(f.items, func(i *entities.ChecklistItem) bool {
		return i.CategoryID.String() != id
	})
	return nil
}

func (f *fakeCategoryRepo) IsRecipeLinked(_ context.Context, categoryID, recipeID string) (bool, error) {
	for _, l := range f.links {
		if l.CategoryID.String() == categoryID && l.RecipeID.String() == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) AddRecipeToCategory(_ context.Context, link *entities.CategoryRecipe) ([]*entities.ChecklistItem, error) {
	f.links = append(f.links, link)
	return f.regenerate(link.CategoryID, link.UserID), nil
}

func (f *fakeCategoryRepo) RemoveRecipeFromCategory(_ context.Context, categoryID, recipeID, userID string) ([]*entities.ChecklistItem, error) {
	f.links = filterLinks(f.links, func(l *entities.CategoryRecipe) bool {
		return !(l.CategoryID.String() == categoryID && l.RecipeID.String() == recipeID)
	})
	return f.regenerate(uuid.MustParse(categoryID), uuid.MustParse(userID)), nil
}

func (f *fakeCategoryRepo) GetLinkedRecipes(_ context.Context, categoryID, userID string) ([]*entities.Recipe, error) {
	return f.linked(uuid.MustParse(categoryID)), nil
}

func (f *fakeCategoryRepo) RegenerateChecklist(_ context.Context, categoryID, userID string) ([]*entities.ChecklistItem, error) {
	return f.regenerate(uuid.MustParse(categoryID), uuid.MustParse(userID)), nil
}

func (f *fakeCategoryRepo) GetChecklistItems(_ context.Context, categoryID, userID string, checked *bool) ([]*entities.ChecklistItem, error) {
	var out []*entities.ChecklistItem
	for _, i := range f.items {
		if i.CategoryID.String() != categoryID || i.UserID.String() != userID {
			continue
		}
		if checked != nil && i.Checked != *checked {
			continue
		}
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeCategoryRepo) GetChecklistItemByID(_ context.Context, id string) (*entities.ChecklistItem, error) {
	for _, i := range f.items {
		if i.ID.String() == id {
			return i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) UpdateChecklistItem(_ context.Context, item *entities.ChecklistItem) error {
	for n, i := range f.items {
		if i.ID == item.ID {
			f.items[n] = item
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) linked(categoryID uuid.UUID) []*entities.Recipe {
	var out []*entities.Recipe
	for _, l := range f.links {
		if l.CategoryID != categoryID {
			continue
		}
		if r, ok := f.recipeRepo.recipes[l.RecipeID.String()]; ok {
			out = append(out, r)
		}
	}
	return out
}

// regenerate mirrors the real repository: drop the category's items and
// rebuild them unchecked from the linked recipes, positions in
// first-occurrence order.
func (f *fakeCategoryRepo) regenerate(categoryID, userID uuid.UUID) []*entities.ChecklistItem {
	f.items = filterItems(f.items, func(i *entities.ChecklistItem) bool {
		return i.CategoryID != categoryID
	})

	var rebuilt []*entities.ChecklistItem
	for n, ingredient := range AggregateIngredients(f.linked(categoryID)) {
		rebuilt = append(rebuilt, &entities.ChecklistItem{
			ID:         uuid.New(),
			CategoryID: categoryID,
			UserID:     userID,
			Ingredient: ingredient,
			Checked:    false,
			Position:   n,
		})
	}
	f.items = append(f.items, rebuilt...)
	return rebuilt
}

func filterLinks(in []*entities.CategoryRecipe, keep func(*entities.CategoryRecipe) bool) []*entities.CategoryRecipe {
	var out []*entities.CategoryRecipe
	for _, l := range in {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func filterItems(in []*entities.ChecklistItem, keep func(*entities.ChecklistItem) bool) []*entities.ChecklistItem {
	var out []*entities.ChecklistItem
	for _, i := range in {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

type categoryFixture struct {
	service    CategoryService
	repo       *fakeCategoryRepo
	recipeRepo *fakeRecipeRepo
	userID     string
	categoryID string
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	t.Helper()

	recipeRepo := newFakeRecipeRepo()
	repo := newFakeCategoryRepo(recipeRepo)
	service := NewCategoryService(repo, recipeRepo)

	userID := uuid.New().String()
	res, err := service.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name:         "Holiday Baking",
		CategoryType: "seasonal",
	}, userID)
	require.NoError(t, err)

	return &categoryFixture{
		service:    service,
		repo:       repo,
		recipeRepo: recipeRepo,
		userID:     userID,
		categoryID: res.ID,
	}
}

func (fx *categoryFixture) addRecipe(t *testing.T, title string, ingredients ...string) string {
	t.Helper()

	r := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      uuid.MustParse(fx.userID),
		Title:       title,
		Ingredients: recipe.JoinLines(ingredients),
	}
	require.NoError(t, fx.recipeRepo.CreateRecipe(context.Background(), r))
	require.NoError(t, fx.service.AddRecipeToCategory(
		context.Background(),
		fx.categoryID,
		domain.CategoryRecipeRequest{RecipeID: r.ID.String()},
		fx.userID,
	))
	return r.ID.String()
}

func checklistIngredients(items []domain.ChecklistItemResponse) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Ingredient)
	}
	return out
}

func TestChecklistBuildsFromLinkedRecipes(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")
	fx.addRecipe(t, "Cookies", "flour", "butter")

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"flour", "eggs", "butter"}, checklistIngredients(res.Items))
	for _, item := range res.Items {
		assert.False(t, item.Checked)
	}
}

func TestChecklistPositionsFollowFirstOccurrence(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")
	fx.addRecipe(t, "Cookies", "butter", "flour", "sugar")

	regenerated, err := fx.service.RegenerateChecklist(ctx, fx.categoryID, fx.userID)
	require.NoError(t, err)

	// Items within one rebuild share a creation instant, so the persisted
	// position is the only thing that keeps reads in first-occurrence order.
	require.Equal(t, []string{"flour", "eggs", "butter", "sugar"}, checklistIngredients(regenerated.Items))
	for n, item := range regenerated.Items {
		assert.Equal(t, n, item.Position)
	}

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "eggs", "butter", "sugar"}, checklistIngredients(res.Items))
}

func TestRemovingRecipeResetsChecklist(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")
	cookiesID := fx.addRecipe(t, "Cookies", "flour", "butter")

	// Check off flour before the membership changes.
	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	_, err = fx.service.ToggleChecklistItem(ctx, res.Items[0].ID, domain.ToggleChecklistItemRequest{Checked: true}, fx.userID)
	require.NoError(t, err)

	require.NoError(t, fx.service.RemoveRecipeFromCategory(ctx, fx.categoryID, cookiesID, fx.userID))

	res, err = fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	assert.Equal(t, []string{"flour", "eggs"}, checklistIngredients(res.Items))
	for _, item := range res.Items {
		assert.False(t, item.Checked, "regeneration must discard checked state")
	}
}

func TestAddRecipeTwiceIsIdempotent(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	recipeID := fx.addRecipe(t, "Pancakes", "flour", "eggs")

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	_, err = fx.service.ToggleChecklistItem(ctx, res.Items[0].ID, domain.ToggleChecklistItemRequest{Checked: true}, fx.userID)
	require.NoError(t, err)

	// Re-adding an already linked recipe is a no-op and must not rebuild.
	require.NoError(t, fx.service.AddRecipeToCategory(ctx, fx.categoryID, domain.CategoryRecipeRequest{RecipeID: recipeID}, fx.userID))

	res, err = fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "checked")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "flour", res.Items[0].Ingredient)
}

func TestRegenerateChecklistDiscardsCheckedState(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	for _, item := range res.Items {
		_, err = fx.service.ToggleChecklistItem(ctx, item.ID, domain.ToggleChecklistItemRequest{Checked: true}, fx.userID)
		require.NoError(t, err)
	}

	regenerated, err := fx.service.RegenerateChecklist(ctx, fx.categoryID, fx.userID)
	require.NoError(t, err)

	assert.Equal(t, []string{"flour", "eggs"}, checklistIngredients(regenerated.Items))
	for _, item := range regenerated.Items {
		assert.False(t, item.Checked)
	}
}

func TestGetChecklistFilters(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)
	_, err = fx.service.ToggleChecklistItem(ctx, res.Items[0].ID, domain.ToggleChecklistItemRequest{Checked: true}, fx.userID)
	require.NoError(t, err)

	checked, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "checked")
	require.NoError(t, err)
	assert.Equal(t, []string{"flour"}, checklistIngredients(checked.Items))

	unchecked, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "unchecked")
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs"}, checklistIngredients(unchecked.Items))

	_, err = fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "done")
	assert.ErrorIs(t, err, domain.ErrInvalidChecklistFilter)
}

func TestToggleChecklistItemErrors(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour")

	_, err := fx.service.ToggleChecklistItem(ctx, uuid.New().String(), domain.ToggleChecklistItemRequest{Checked: true}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrChecklistItemNotFound)

	res, err := fx.service.GetChecklist(ctx, fx.categoryID, fx.userID, "all")
	require.NoError(t, err)

	// Someone else's item is forbidden, not hidden.
	_, err = fx.service.ToggleChecklistItem(ctx, res.Items[0].ID, domain.ToggleChecklistItemRequest{Checked: true}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestAddRecipeToCategoryErrors(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	_, err := fx.service.GetCategoryDetail(ctx, uuid.New().String(), fx.userID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	err = fx.service.AddRecipeToCategory(ctx, fx.categoryID, domain.CategoryRecipeRequest{RecipeID: uuid.New().String()}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// A recipe owned by another user cannot be linked.
	stranger := &entities.Recipe{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Not Yours",
		Ingredients: "salt",
	}
	require.NoError(t, fx.recipeRepo.CreateRecipe(ctx, stranger))

	err = fx.service.AddRecipeToCategory(ctx, fx.categoryID, domain.CategoryRecipeRequest{RecipeID: stranger.ID.String()}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	// Acting on someone else's category is forbidden too.
	err = fx.service.AddRecipeToCategory(ctx, fx.categoryID, domain.CategoryRecipeRequest{RecipeID: stranger.ID.String()}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestDeleteCategoryRemovesChecklist(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour", "eggs")
	require.NoError(t, fx.service.DeleteCategory(ctx, fx.categoryID, fx.userID))

	assert.Empty(t, fx.repo.items)
	assert.Empty(t, fx.repo.links)

	_, err := fx.service.GetCategoryDetail(ctx, fx.categoryID, fx.userID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCategoryRecipeCount(t *testing.T) {
	fx := newCategoryFixture(t)
	ctx := context.Background()

	fx.addRecipe(t, "Pancakes", "flour")
	fx.addRecipe(t, "Cookies", "butter")

	detail, err := fx.service.GetCategoryDetail(ctx, fx.categoryID, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.RecipeCount)
}
