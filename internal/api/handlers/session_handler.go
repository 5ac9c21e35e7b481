package handlers

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/api/presenters"
	"Meal-Planner-Backend/pkg/session"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SessionHandler interface {
		CreateSession(c *fiber.Ctx) error
		GetSessions(c *fiber.Ctx) error
		GetSessionDetail(c *fiber.Ctx) error
		GetSessionDefaults(c *fiber.Ctx) error
		AdvanceSession(c *fiber.Ctx) error
		AttachReview(c *fiber.Ctx) error
		AttachAdjustments(c *fiber.Ctx) error
		AddProgressPhoto(c *fiber.Ctx) error
		GetProgressPhotos(c *fiber.Ctx) error
		GetSessionStats(c *fiber.Ctx) error
	}

	sessionHandler struct {
		sessionService session.SessionService
		validator      *validator.Validate
	}
)

func NewSessionHandler(sessionService session.SessionService, validator *validator.Validate) SessionHandler {
	return &sessionHandler{
		sessionService: sessionService,
		validator:      validator,
	}
}

func (h *sessionHandler) CreateSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSession, err)
	}

	res, err := h.sessionService.CreateSession(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedCreateSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSession)
}

func (h *sessionHandler) GetSessions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	// Parse pagination parameters
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	sessions, count, err := h.sessionService.GetSessions(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetSessions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"sessions": sessions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetSessions)
}

func (h *sessionHandler) GetSessionDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")

	res, photos, err := h.sessionService.GetSessionDetail(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetSessionDetail, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"session": res,
		"photos":  photos,
	}, fiber.StatusOK, domain.MessageSuccessGetSessionDetail)
}

func (h *sessionHandler) GetSessionDefaults(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.sessionService.GetSessionDefaults(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetDefaults, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDefaults)
}

func (h *sessionHandler) AdvanceSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")
	req := new(domain.AdvanceSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAdvanceSession, err)
	}

	res, err := h.sessionService.AdvanceSession(c.Context(), sessionID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedAdvanceSession, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAdvanceSession)
}

func (h *sessionHandler) AttachReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")
	req := new(domain.AttachReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachReview, err)
	}

	// The review photo is optional.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	if err := h.sessionService.AttachReview(c.Context(), sessionID, *req, image, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedAttachReview, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAttachReview)
}

func (h *sessionHandler) AttachAdjustments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")
	req := new(domain.AttachAdjustmentsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAttachAdjustments, err)
	}

	if err := h.sessionService.AttachAdjustments(c.Context(), sessionID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedAttachAdjustments, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAttachAdjustments)
}

func (h *sessionHandler) AddProgressPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	caption := c.FormValue("caption", "")

	res, err := h.sessionService.AddProgressPhoto(c.Context(), sessionID, file, caption, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedAddProgressPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProgressPhoto)
}

func (h *sessionHandler) GetProgressPhotos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	sessionID := c.Params("id")

	res, err := h.sessionService.GetProgressPhotos(c.Context(), sessionID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetProgressPhotos, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"photos": res}, fiber.StatusOK, domain.MessageSuccessGetProgressPhotos)
}

func (h *sessionHandler) GetSessionStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.sessionService.GetSessionStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), domain.MessageFailedGetSessionStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSessionStats)
}
