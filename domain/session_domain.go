package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSessions       = "success get cook sessions"
	MessageSuccessGetSessionDetail  = "success get cook session detail"
	MessageSuccessCreateSession     = "cook session started"
	MessageSuccessAdvanceSession    = "cook session advanced"
	MessageSuccessAttachReview      = "review saved"
	MessageSuccessAttachAdjustments = "adjustments saved"
	MessageSuccessGetDefaults       = "success get session defaults"
	MessageSuccessAddProgressPhoto  = "progress photo added"
	MessageSuccessGetProgressPhotos = "success get progress photos"
	MessageSuccessGetSessionStats   = "success get session stats"

	MessageFailedGetSessions       = "failed to get cook sessions"
	MessageFailedGetSessionDetail  = "failed to get cook session detail"
	MessageFailedCreateSession     = "failed to start cook session"
	MessageFailedAdvanceSession    = "failed to advance cook session"
	MessageFailedAttachReview      = "failed to save review"
	MessageFailedAttachAdjustments = "failed to save adjustments"
	MessageFailedGetDefaults       = "failed to get session defaults"
	MessageFailedAddProgressPhoto  = "failed to add progress photo"
	MessageFailedGetProgressPhotos = "failed to get progress photos"
	MessageFailedGetSessionStats   = "failed to get session stats"

	ErrSessionNotFound         = errors.New("cook session not found")
	ErrActiveSessionExists     = errors.New("an active cook session already exists")
	ErrInvalidSessionStatus    = errors.New("invalid session status")
	ErrInvalidStatusTransition = errors.New("invalid session status transition")
	ErrSessionNotCompleted     = errors.New("cook session is not completed")
)

// Session statuses, in lifecycle order. There is no branching, cancellation
// or back-transition.
const (
	StatusSmoking   = "smoking"
	StatusWrapped   = "wrapped"
	StatusFinishing = "finishing"
	StatusResting   = "resting"
	StatusCompleted = "completed"
)

// NextSessionStatus maps each status to the only status it may advance to.
var NextSessionStatus = map[string]string{
	StatusSmoking:   StatusWrapped,
	StatusWrapped:   StatusFinishing,
	StatusFinishing: StatusResting,
	StatusResting:   StatusCompleted,
}

type (
	CreateSessionRequest struct {
		WeightKg           float64 `json:"weight_kg" validate:"required,gt=0"`
		TargetSmokerTemp   float64 `json:"target_smoker_temp" validate:"required,gt=0"`
		TargetWrapTemp     float64 `json:"target_wrap_temp" validate:"required,gt=0"`
		TargetFinishTemp   float64 `json:"target_finish_temp" validate:"required,gt=0"`
		TargetTotalMinutes int     `json:"target_total_minutes" validate:"required,gt=0"`
		TargetRestMinutes  int     `json:"target_rest_minutes" validate:"required,gt=0"`
	}

	AdvanceSessionRequest struct {
		Status             string   `json:"status" validate:"required,oneof=smoking wrapped finishing resting completed"`
		ActualWrapTemp     *float64 `json:"actual_wrap_temp,omitempty"`
		ActualFinishTemp   *float64 `json:"actual_finish_temp,omitempty"`
		ActualTotalMinutes *int     `json:"actual_total_minutes,omitempty"`
		ActualRestMinutes  *int     `json:"actual_rest_minutes,omitempty"`
	}

	// The review arrives as multipart form data when a photo is attached, so
	// the fields carry form tags alongside json.
	AttachReviewRequest struct {
		Rating int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
		Review string `json:"review,omitempty" form:"review"`
	}

	AttachAdjustmentsRequest struct {
		AdjSmokerTemp   *float64 `json:"adj_smoker_temp,omitempty" validate:"omitempty,gt=0"`
		AdjWrapTemp     *float64 `json:"adj_wrap_temp,omitempty" validate:"omitempty,gt=0"`
		AdjFinishTemp   *float64 `json:"adj_finish_temp,omitempty" validate:"omitempty,gt=0"`
		AdjTotalMinutes *int     `json:"adj_total_minutes,omitempty" validate:"omitempty,gt=0"`
		AdjRestMinutes  *int     `json:"adj_rest_minutes,omitempty" validate:"omitempty,gt=0"`
		Notes           string   `json:"notes,omitempty"`
	}

	SessionDefaultsResponse struct {
		TargetSmokerTemp   float64 `json:"target_smoker_temp"`
		TargetWrapTemp     float64 `json:"target_wrap_temp"`
		TargetFinishTemp   float64 `json:"target_finish_temp"`
		TargetTotalMinutes int     `json:"target_total_minutes"`
		TargetRestMinutes  int     `json:"target_rest_minutes"`
		FromSessionID      string  `json:"from_session_id,omitempty"`
	}

	SessionResponse struct {
		ID                 string     `json:"id"`
		WeightKg           float64    `json:"weight_kg"`
		Status             string     `json:"status"`
		TargetSmokerTemp   float64    `json:"target_smoker_temp"`
		TargetWrapTemp     float64    `json:"target_wrap_temp"`
		TargetFinishTemp   float64    `json:"target_finish_temp"`
		TargetTotalMinutes int        `json:"target_total_minutes"`
		TargetRestMinutes  int        `json:"target_rest_minutes"`
		ActualWrapTemp     *float64   `json:"actual_wrap_temp,omitempty"`
		ActualFinishTemp   *float64   `json:"actual_finish_temp,omitempty"`
		ActualTotalMinutes *int       `json:"actual_total_minutes,omitempty"`
		ActualRestMinutes  *int       `json:"actual_rest_minutes,omitempty"`
		StartedAt          time.Time  `json:"started_at"`
		WrappedAt          *time.Time `json:"wrapped_at,omitempty"`
		FinishingAt        *time.Time `json:"finishing_at,omitempty"`
		RestingAt          *time.Time `json:"resting_at,omitempty"`
		CompletedAt        *time.Time `json:"completed_at,omitempty"`
		Rating             *int       `json:"rating,omitempty"`
		Review             string     `json:"review,omitempty"`
		ImageURL           string     `json:"image_url,omitempty"`
		AdjSmokerTemp      *float64   `json:"adj_smoker_temp,omitempty"`
		AdjWrapTemp        *float64   `json:"adj_wrap_temp,omitempty"`
		AdjFinishTemp      *float64   `json:"adj_finish_temp,omitempty"`
		AdjTotalMinutes    *int       `json:"adj_total_minutes,omitempty"`
		AdjRestMinutes     *int       `json:"adj_rest_minutes,omitempty"`
		AdjustmentNotes    string     `json:"adjustment_notes,omitempty"`
	}

	ProgressPhotoResponse struct {
		ID         string    `json:"id"`
		SessionID  string    `json:"session_id"`
		ImageURL   string    `json:"image_url"`
		Caption    string    `json:"caption,omitempty"`
		OrderIndex int       `json:"order_index"`
		CreatedAt  time.Time `json:"created_at"`
	}

	SessionStatsResponse struct {
		TotalSessions     int     `json:"total_sessions"`
		CompletedSessions int     `json:"completed_sessions"`
		ActiveSessions    int     `json:"active_sessions"`
		AverageRating     float64 `json:"average_rating"`
	}
)
