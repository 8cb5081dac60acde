package repositories

import (
	"context"
	"errors"

	"gympoint/internal/models/db_models"

	"gorm.io/gorm"
)

type TokenRepository interface {
	// Replace stores the token, dropping any previous token of the same user.
	Replace(ctx context.Context, token *db_models.ForgotPasswordToken) error
	// Consume looks the token up and deletes it (single-use). Returns
	// (nil, nil) for unknown tokens.
	Consume(ctx context.Context, token string) (*db_models.ForgotPasswordToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Replace(ctx context.Context, token *db_models.ForgotPasswordToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("user_id = ?", token.UserID).
			Delete(&db_models.ForgotPasswordToken{}).Error
		if err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *tokenRepository) Consume(ctx context.Context, token string) (*db_models.ForgotPasswordToken, error) {
	var found db_models.ForgotPasswordToken
	var missing bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&found, "token = ?", token).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				missing = true
				return nil
			}
			return err
		}
		return tx.Delete(&found).Error
	})
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, nil
	}

	return &found, nil
}
