package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrUnauthorizedAccess, fiber.StatusForbidden},
		{domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{domain.ErrSessionNotFound, fiber.StatusNotFound},
		{domain.ErrActiveSessionExists, fiber.StatusConflict},
		{domain.ErrEmailAlreadyExists, fiber.StatusConflict},
		{domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{domain.ErrInvalidStatusTransition, fiber.StatusBadRequest},
		{domain.ErrSessionNotCompleted, fiber.StatusBadRequest},
		{storage.ErrFileTooLarge, fiber.StatusBadRequest},
		{storage.ErrInvalidContentType, fiber.StatusBadRequest},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), "%v", tt.err)
	}
}

// stubSessionService records what the handler passes through. Only the calls
// under test get real behavior.
type stubSessionService struct {
	reviewSessionID string
	reviewReq       domain.AttachReviewRequest
	reviewImage     *multipart.FileHeader
	reviewUserID    string
}

func (s *stubSessionService) CreateSession(_ context.Context, _ domain.CreateSessionRequest, _ string) (domain.SessionResponse, error) {
	return domain.SessionResponse{}, nil
}

func (s *stubSessionService) GetSessions(_ context.Context, _ string, _, _ int) ([]domain.SessionResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubSessionService) GetSessionDetail(_ context.Context, _, _ string) (domain.SessionResponse, []domain.ProgressPhotoResponse, error) {
	return domain.SessionResponse{}, nil, nil
}

func (s *stubSessionService) GetSessionDefaults(_ context.Context, _ string) (domain.SessionDefaultsResponse, error) {
	return domain.SessionDefaultsResponse{}, nil
}

func (s *stubSessionService) AdvanceSession(_ context.Context, _ string, _ domain.AdvanceSessionRequest, _ string) (domain.SessionResponse, error) {
	return domain.SessionResponse{}, nil
}

func (s *stubSessionService) AttachReview(_ context.Context, id string, req domain.AttachReviewRequest, image *multipart.FileHeader, userID string) error {
	s.reviewSessionID = id
	s.reviewReq = req
	s.reviewImage = image
	s.reviewUserID = userID
	return nil
}

func (s *stubSessionService) AttachAdjustments(_ context.Context, _ string, _ domain.AttachAdjustmentsRequest, _ string) error {
	return nil
}

func (s *stubSessionService) AddProgressPhoto(_ context.Context, _ string, _ *multipart.FileHeader, _, _ string) (domain.ProgressPhotoResponse, error) {
	return domain.ProgressPhotoResponse{}, nil
}

func (s *stubSessionService) GetProgressPhotos(_ context.Context, _, _ string) ([]domain.ProgressPhotoResponse, error) {
	return nil, nil
}

func (s *stubSessionService) GetSessionStats(_ context.Context, _ string) (domain.SessionStatsResponse, error) {
	return domain.SessionStatsResponse{}, nil
}

// The review endpoint takes multipart form data when a photo rides along, so
// the request fields must bind from form values, not just JSON.
func TestAttachReviewBindsMultipartForm(t *testing.T) {
	service := &stubSessionService{}
	handler := NewSessionHandler(service, validator.New())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	})
	app.Post("/cook-sessions/:id/review", handler.AttachReview)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("rating", "4"))
	require.NoError(t, writer.WriteField("review", "great bark"))
	part, err := writer.CreateFormFile("image", "result.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/cook-sessions/abc/review", &body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	assert.Equal(t, "abc", service.reviewSessionID)
	assert.Equal(t, "user-1", service.reviewUserID)
	assert.Equal(t, 4, service.reviewReq.Rating)
	assert.Equal(t, "great bark", service.reviewReq.Review)
	require.NotNil(t, service.reviewImage)
	assert.Equal(t, "result.jpg", service.reviewImage.Filename)
}
