package entities

import (
	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	OrderID     string    `gorm:"uniqueIndex" json:"order_id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"` // "Pending", "Settled", "Failed"
	PaymentType string    `json:"payment_type,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
