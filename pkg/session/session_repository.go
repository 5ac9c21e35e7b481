package session

import (
	"Meal-Planner-Backend/domain"
	"Meal-Planner-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		CreateSession(ctx context.Context, session *entities.CookSession) error
		GetSessionByID(ctx context.Context, id string) (*entities.CookSession, error)
		GetSessions(ctx context.Context, userID string, page, limit int) ([]*entities.CookSession, int64, error)
		HasActiveSession(ctx context.Context, userID string) (bool, error)
		UpdateSession(ctx context.Context, session *entities.CookSession) error
		GetLatestCompletedSession(ctx context.Context, userID string) (*entities.CookSession, error)
		AddProgressPhoto(ctx context.Context, photo *entities.ProgressPhoto) error
		GetProgressPhotos(ctx context.Context, sessionID string) ([]*entities.ProgressPhoto, error)
		GetSessionStats(ctx context.Context, userID string) (map[string]interface{}, error)
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.CookSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		// The partial unique index on non-completed sessions backs the
		// service-level check; a violation means another session is in flight.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrActiveSessionExists
		}
		return err
	}
	return nil
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*entities.CookSession, error) {
	var session entities.CookSession
	if err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("progress_photos.order_index asc")
		}).
		Where("id = ?", id).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetSessions(ctx context.Context, userID string, page, limit int) ([]*entities.CookSession, int64, error) {
	var sessions []*entities.CookSession
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("started_at desc").
		Find(&sessions).Error; err != nil {
		return nil, 0, err
	}

	return sessions, count, nil
}

func (r *sessionRepository) HasActiveSession(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("user_id = ? AND status != ?", userID, domain.StatusCompleted).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepository) UpdateSession(ctx context.Context, session *entities.CookSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) GetLatestCompletedSession(ctx context.Context, userID string) (*entities.CookSession, error) {
	var session entities.CookSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.StatusCompleted).
		Order("completed_at desc").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// AddProgressPhoto assigns the order index inside the insert itself. Two
// overlapping inserts can still evaluate the subquery against the same
// snapshot; the unique index on (session_id, order_index) rejects the loser
// with gorm.ErrDuplicatedKey and the service retries.
func (r *sessionRepository) AddProgressPhoto(ctx context.Context, photo *entities.ProgressPhoto) error {
	if err := r.db.WithContext(ctx).Exec(`
		INSERT INTO progress_photos (id, session_id, image_url, caption, order_index, created_at)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(order_index) + 1, 0) FROM progress_photos WHERE session_id = ?), ?)`,
		photo.ID, photo.SessionID, photo.ImageURL, photo.Caption, photo.SessionID, photo.CreatedAt,
	).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Where("id = ?", photo.ID).First(photo).Error
}

func (r *sessionRepository) GetProgressPhotos(ctx context.Context, sessionID string) ([]*entities.ProgressPhoto, error) {
	var photos []*entities.ProgressPhoto
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("order_index asc").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *sessionRepository) GetSessionStats(ctx context.Context, userID string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	stats["total_sessions"] = total

	var completed int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("user_id = ? AND status = ?", userID, domain.StatusCompleted).
		Count(&completed).Error; err != nil {
		return nil, err
	}
	stats["completed_sessions"] = completed
	stats["active_sessions"] = total - completed

	var avgRating float64
	if err := r.db.WithContext(ctx).
		Model(&entities.CookSession{}).
		Where("user_id = ? AND rating IS NOT NULL", userID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avgRating).Error; err != nil {
		return nil, err
	}
	stats["average_rating"] = avgRating

	return stats, nil
}
