package db_models

import "github.com/google/uuid"

// ForgotPasswordToken is single-use: consuming it deletes the row, and a user
// can only ever hold one (issuing a new token replaces the previous one).
type ForgotPasswordToken struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"userId"`
	CreatedAt int64     `gorm:"autoCreateTime" json:"createdAt"`
}
