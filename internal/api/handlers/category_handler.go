package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategoryDetail(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
		AddRecipeToCategory(c *fiber.Ctx) error
		RemoveRecipeFromCategory(c *fiber.Ctx) error
		GetChecklist(c *fiber.Ctx) error
		RegenerateChecklist(c *fiber.Ctx) error
		ToggleChecklistItem(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.categoryService.GetCategories(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"categories": res}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategoryDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")

	res, err := h.categoryService.GetCategoryDetail(c.Context(), categoryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetCategoryDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategoryDetail)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")

	if err := h.categoryService.DeleteCategory(c.Context(), categoryID, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"deleted": true}, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}

func (h *categoryHandler) AddRecipeToCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	req := new(domain.CategoryRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipeToCategory, err)
	}

	if err := h.categoryService.AddRecipeToCategory(c.Context(), categoryID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedAddRecipeToCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAddRecipeToCategory)
}

func (h *categoryHandler) RemoveRecipeFromCategory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	recipeID := c.Params("recipeId")

	if err := h.categoryService.RemoveRecipeFromCategory(c.Context(), categoryID, recipeID, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedRemoveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveRecipe)
}

func (h *categoryHandler) GetChecklist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")
	filter := c.Query("filter", "all")

	res, err := h.categoryService.GetChecklist(c.Context(), categoryID, userID, filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetChecklist, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChecklist)
}

func (h *categoryHandler) RegenerateChecklist(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	categoryID := c.Params("id")

	res, err := h.categoryService.RegenerateChecklist(c.Context(), categoryID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedRegenerateChecklist, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRegenerateChecklist)
}

func (h *categoryHandler) ToggleChecklistItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ToggleChecklistItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.categoryService.ToggleChecklistItem(c.Context(), itemID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedToggleChecklistItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleChecklistItem)
}
