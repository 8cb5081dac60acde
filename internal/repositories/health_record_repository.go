package repositories

import (
	"context"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Insert(ctx context.Context, rec *db_models.HealthRecord) error
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.HealthRecord, error)
	ListAll(ctx context.Context) ([]db_models.HealthRecord, error)
}

type healthRecordRepository struct {
	db *gorm.DB
}

func NewHealthRecordRepository(db *gorm.DB) HealthRecordRepository {
	return &healthRecordRepository{db: db}
}

func (r *healthRecordRepository) Insert(ctx context.Context, rec *db_models.HealthRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *healthRecordRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.HealthRecord, error) {
	var records []db_models.HealthRecord
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) ListAll(ctx context.Context) ([]db_models.HealthRecord, error) {
	var records []db_models.HealthRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
