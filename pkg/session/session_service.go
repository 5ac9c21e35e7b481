package session

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"Meal-Planner-Backend/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SessionService interface {
		CreateSession(ctx context.Context, req domain.CreateSessionRequest, userID string) (domain.SessionResponse, error)
		GetSessions(ctx context.Context, userID string, page, limit int) ([]domain.SessionResponse, int64, error)
		GetSessionDetail(ctx context.Context, id string, userID string) (domain.SessionResponse, []domain.ProgressPhotoResponse, error)
		GetSessionDefaults(ctx context.Context, userID string) (domain.SessionDefaultsResponse, error)
		AdvanceSession(ctx context.Context, id string, req domain.AdvanceSessionRequest, userID string) (domain.SessionResponse, error)
		AttachReview(ctx context.Context, id string, req domain.AttachReviewRequest, image *multipart.FileHeader, userID string) error
		AttachAdjustments(ctx context.Context, id string, req domain.AttachAdjustmentsRequest, userID string) error
		AddProgressPhoto(ctx context.Context, id string, image *multipart.FileHeader, caption string, userID string) (domain.ProgressPhotoResponse, error)
		GetProgressPhotos(ctx context.Context, id string, userID string) ([]domain.ProgressPhotoResponse, error)
		GetSessionStats(ctx context.Context, userID string) (domain.SessionStatsResponse, error)
	}

	sessionService struct {
		sessionRepository SessionRepository
		storage           storage.Storage
	}
)

func NewSessionService(sessionRepository SessionRepository, storage storage.Storage) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		storage:           storage,
	}
}

// CanAdvance reports whether a session currently in `from` may be moved to
// `to`. Re-entering the current status is allowed so a retried request can
// re-stamp and re-merge; anything but the single next status is rejected.
func CanAdvance(from, to string) bool {
	if from == to {
		return true
	}
	return domain.NextSessionStatus[from] == to
}

func (s *sessionService) CreateSession(ctx context.Context, req domain.CreateSessionRequest, userID string) (domain.SessionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SessionResponse{}, domain.ErrParseUUID
	}

	active, err := s.sessionRepository.HasActiveSession(ctx, userID)
	if err != nil {
		return domain.SessionResponse{}, err
	}
	if active {
		return domain.SessionResponse{}, domain.ErrActiveSessionExists
	}

	session := &entities.CookSession{
		ID:                 uuid.New(),
		UserID:             userUUID,
		WeightKg:           req.WeightKg,
		TargetSmokerTemp:   req.TargetSmokerTemp,
		TargetWrapTemp:     req.TargetWrapTemp,
		TargetFinishTemp:   req.TargetFinishTemp,
		TargetTotalMinutes: req.TargetTotalMinutes,
		TargetRestMinutes:  req.TargetRestMinutes,
		Status:             domain.StatusSmoking,
		StartedAt:          time.Now(),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		return domain.SessionResponse{}, err
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) GetSessions(ctx context.Context, userID string, page, limit int) ([]domain.SessionResponse, int64, error) {
	sessions, count, err := s.sessionRepository.GetSessions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, toSessionResponse(session))
	}

	return response, count, nil
}

func (s *sessionService) GetSessionDetail(ctx context.Context, id string, userID string) (domain.SessionResponse, []domain.ProgressPhotoResponse, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return domain.SessionResponse{}, nil, err
	}

	photos := make([]domain.ProgressPhotoResponse, 0, len(session.Photos))
	for _, photo := range session.Photos {
		photos = append(photos, toProgressPhotoResponse(photo))
	}

	return toSessionResponse(session), photos, nil
}

// GetSessionDefaults derives target defaults for a new session from the most
// recently completed one: the adjustment override wins when present, the
// session's own target otherwise.
func (s *sessionService) GetSessionDefaults(ctx context.Context, userID string) (domain.SessionDefaultsResponse, error) {
	latest, err := s.sessionRepository.GetLatestCompletedSession(ctx, userID)
	if err != nil {
		return domain.SessionDefaultsResponse{}, err
	}
	if latest == nil {
		return domain.SessionDefaultsResponse{}, nil
	}

	defaults := domain.SessionDefaultsResponse{
		TargetSmokerTemp:   latest.TargetSmokerTemp,
		TargetWrapTemp:     latest.TargetWrapTemp,
		TargetFinishTemp:   latest.TargetFinishTemp,
		TargetTotalMinutes: latest.TargetTotalMinutes,
		TargetRestMinutes:  latest.TargetRestMinutes,
		FromSessionID:      latest.ID.String(),
	}

	if latest.AdjSmokerTemp != nil {
		defaults.TargetSmokerTemp = *latest.AdjSmokerTemp
	}
	if latest.AdjWrapTemp != nil {
		defaults.TargetWrapTemp = *latest.AdjWrapTemp
	}
	if latest.AdjFinishTemp != nil {
		defaults.TargetFinishTemp = *latest.AdjFinishTemp
	}
	if latest.AdjTotalMinutes != nil {
		defaults.TargetTotalMinutes = *latest.AdjTotalMinutes
	}
	if latest.AdjRestMinutes != nil {
		defaults.TargetRestMinutes = *latest.AdjRestMinutes
	}

	return defaults, nil
}

func (s *sessionService) AdvanceSession(ctx context.Context, id string, req domain.AdvanceSessionRequest, userID string) (domain.SessionResponse, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return domain.SessionResponse{}, err
	}

	if !CanAdvance(session.Status, req.Status) {
		return domain.SessionResponse{}, domain.ErrInvalidStatusTransition
	}

	now := time.Now()
	session.Status = req.Status

	switch req.Status {
	case domain.StatusWrapped:
		session.WrappedAt = &now
	case domain.StatusFinishing:
		session.FinishingAt = &now
	case domain.StatusResting:
		session.RestingAt = &now
	case domain.StatusCompleted:
		session.CompletedAt = &now
	}

	// Last write wins on actuals.
	if req.ActualWrapTemp != nil {
		session.ActualWrapTemp = req.ActualWrapTemp
	}
	if req.ActualFinishTemp != nil {
		session.ActualFinishTemp = req.ActualFinishTemp
	}
	if req.ActualTotalMinutes != nil {
		session.ActualTotalMinutes = req.ActualTotalMinutes
	}
	if req.ActualRestMinutes != nil {
		session.ActualRestMinutes = req.ActualRestMinutes
	}

	if err := s.sessionRepository.UpdateSession(ctx, session); err != nil {
		return domain.SessionResponse{}, err
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) AttachReview(ctx context.Context, id string, req domain.AttachReviewRequest, image *multipart.FileHeader, userID string) error {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return err
	}

	if session.Status != domain.StatusCompleted {
		return domain.ErrSessionNotCompleted
	}

	rating := req.Rating
	session.Rating = &rating
	session.Review = req.Review

	if image != nil {
		fileName := fmt.Sprintf("session-%s", session.ID.String())
		objectKey, err := s.storage.UploadFile(fileName, image, "sessions", storage.AllowImage...)
		if err != nil {
			return err
		}
		session.ImageURL = s.storage.GetPublicLinkKey(objectKey)
	}

	return s.sessionRepository.UpdateSession(ctx, session)
}

func (s *sessionService) AttachAdjustments(ctx context.Context, id string, req domain.AttachAdjustmentsRequest, userID string) error {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return err
	}

	if session.Status != domain.StatusCompleted {
		return domain.ErrSessionNotCompleted
	}

	// A template for the next session only; the session's own targets stay
	// untouched.
	session.AdjSmokerTemp = req.AdjSmokerTemp
	session.AdjWrapTemp = req.AdjWrapTemp
	session.AdjFinishTemp = req.AdjFinishTemp
	session.AdjTotalMinutes = req.AdjTotalMinutes
	session.AdjRestMinutes = req.AdjRestMinutes
	session.AdjustmentNotes = req.Notes

	return s.sessionRepository.UpdateSession(ctx, session)
}

func (s *sessionService) AddProgressPhoto(ctx context.Context, id string, image *multipart.FileHeader, caption string, userID string) (domain.ProgressPhotoResponse, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return domain.ProgressPhotoResponse{}, err
	}

	photoID := uuid.New()
	fileName := fmt.Sprintf("progress-%s", photoID.String())
	objectKey, err := s.storage.UploadFile(fileName, image, "progress-photos", storage.AllowImage...)
	if err != nil {
		return domain.ProgressPhotoResponse{}, err
	}

	photo := &entities.ProgressPhoto{
		ID:        photoID,
		SessionID: session.ID,
		ImageURL:  s.storage.GetPublicLinkKey(objectKey),
		Caption:   caption,
		CreatedAt: time.Now(),
	}

	// A concurrent upload can claim the same order index; the unique index
	// rejects one of them and the insert is retried with a fresh index.
	var insertErr error
	for attempt := 0; attempt < 3; attempt++ {
		insertErr = s.sessionRepository.AddProgressPhoto(ctx, photo)
		if insertErr == nil || !errors.Is(insertErr, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if insertErr != nil {
		_ = s.storage.DeleteFile(objectKey)
		return domain.ProgressPhotoResponse{}, insertErr
	}

	return toProgressPhotoResponse(photo), nil
}

func (s *sessionService) GetProgressPhotos(ctx context.Context, id string, userID string) ([]domain.ProgressPhotoResponse, error) {
	session, err := s.ownedSession(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	photos, err := s.sessionRepository.GetProgressPhotos(ctx, session.ID.String())
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProgressPhotoResponse, 0, len(photos))
	for _, photo := range photos {
		response = append(response, toProgressPhotoResponse(photo))
	}

	return response, nil
}

func (s *sessionService) GetSessionStats(ctx context.Context, userID string) (domain.SessionStatsResponse, error) {
	stats, err := s.sessionRepository.GetSessionStats(ctx, userID)
	if err != nil {
		return domain.SessionStatsResponse{}, err
	}

	return domain.SessionStatsResponse{
		TotalSessions:     int(stats["total_sessions"].(int64)),
		CompletedSessions: int(stats["completed_sessions"].(int64)),
		ActiveSessions:    int(stats["active_sessions"].(int64)),
		AverageRating:     stats["average_rating"].(float64),
	}, nil
}

func (s *sessionService) ownedSession(ctx context.Context, id string, userID string) (*entities.CookSession, error) {
	session, err := s.sessionRepository.GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return session, nil
}

func toSessionResponse(session *entities.CookSession) domain.SessionResponse {
	return domain.SessionResponse{
		ID:                 session.ID.String(),
		WeightKg:           session.WeightKg,
		Status:             session.Status,
		TargetSmokerTemp:   session.TargetSmokerTemp,
		TargetWrapTemp:     session.TargetWrapTemp,
		TargetFinishTemp:   session.TargetFinishTemp,
		TargetTotalMinutes: session.TargetTotalMinutes,
		TargetRestMinutes:  session.TargetRestMinutes,
		ActualWrapTemp:     session.ActualWrapTemp,
		ActualFinishTemp:   session.ActualFinishTemp,
		ActualTotalMinutes: session.ActualTotalMinutes,
		ActualRestMinutes:  session.ActualRestMinutes,
		StartedAt:          session.StartedAt,
		WrappedAt:          session.WrappedAt,
		FinishingAt:        session.FinishingAt,
		RestingAt:          session.RestingAt,
		CompletedAt:        session.CompletedAt,
		Rating:             session.Rating,
		Review:             session.Review,
		ImageURL:           session.ImageURL,
		AdjSmokerTemp:      session.AdjSmokerTemp,
		AdjWrapTemp:        session.AdjWrapTemp,
		AdjFinishTemp:      session.AdjFinishTemp,
		AdjTotalMinutes:    session.AdjTotalMinutes,
		AdjRestMinutes:     session.AdjRestMinutes,
		AdjustmentNotes:    session.AdjustmentNotes,
	}
}

func toProgressPhotoResponse(photo *entities.ProgressPhoto) domain.ProgressPhotoResponse {
	return domain.ProgressPhotoResponse{
		ID:         photo.ID.String(),
		SessionID:  photo.SessionID.String(),
		ImageURL:   photo.ImageURL,
		Caption:    photo.Caption,
		OrderIndex: photo.OrderIndex,
		CreatedAt:  photo.CreatedAt,
	}
}
