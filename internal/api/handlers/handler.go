package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusOf maps service errors onto HTTP statuses. Ownership failures are
// surfaced as 403, distinct from 404; anything unrecognized is a 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrChecklistItemNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrActiveSessionExists),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrCredentialsInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrSessionNotCompleted),
		errors.Is(err, domain.ErrInvalidChecklistFilter),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, domain.ErrEmailAlreadyVerified),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrInvalidContentType):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
