package entities

import (
	"time"

	"github.com/google/uuid"
)

type CookSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`

	WeightKg float64 `json:"weight_kg"`

	TargetSmokerTemp   float64 `json:"target_smoker_temp"`
	TargetWrapTemp     float64 `json:"target_wrap_temp"`
	TargetFinishTemp   float64 `json:"target_finish_temp"`
	TargetTotalMinutes int     `json:"target_total_minutes"`
	TargetRestMinutes  int     `json:"target_rest_minutes"`

	ActualWrapTemp     *float64 `json:"actual_wrap_temp,omitempty"`
	ActualFinishTemp   *float64 `json:"actual_finish_temp,omitempty"`
	ActualTotalMinutes *int     `json:"actual_total_minutes,omitempty"`
	ActualRestMinutes  *int     `json:"actual_rest_minutes,omitempty"`

	Status string `json:"status"` // "smoking", "wrapped", "finishing", "resting", "completed"

	StartedAt   time.Time  `gorm:"type:timestamp" json:"started_at"`
	WrappedAt   *time.Time `gorm:"type:timestamp" json:"wrapped_at,omitempty"`
	FinishingAt *time.Time `gorm:"type:timestamp" json:"finishing_at,omitempty"`
	RestingAt   *time.Time `gorm:"type:timestamp" json:"resting_at,omitempty"`
	CompletedAt *time.Time `gorm:"type:timestamp" json:"completed_at,omitempty"`

	Rating   *int   `json:"rating,omitempty"` // 1-5, only after completion
	Review   string `json:"review,omitempty" gorm:"type:text"`
	ImageURL string `json:"image_url,omitempty"`

	// Sparse overrides used only to seed the next session's defaults.
	AdjSmokerTemp   *float64 `json:"adj_smoker_temp,omitempty"`
	AdjWrapTemp     *float64 `json:"adj_wrap_temp,omitempty"`
	AdjFinishTemp   *float64 `json:"adj_finish_temp,omitempty"`
	AdjTotalMinutes *int     `json:"adj_total_minutes,omitempty"`
	AdjRestMinutes  *int     `json:"adj_rest_minutes,omitempty"`
	AdjustmentNotes string   `json:"adjustment_notes,omitempty" gorm:"type:text"`

	User   *User            `gorm:"foreignKey:UserID"`
	Photos []*ProgressPhoto `gorm:"foreignKey:SessionID"`
	Timestamp
}

type ProgressPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	ImageURL   string    `json:"image_url"`
	Caption    string    `json:"caption,omitempty"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Session *CookSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}
