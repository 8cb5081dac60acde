package repositories

import (
	"context"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	ListAll(ctx context.Context) ([]db_models.Receipt, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.Receipt, error)
	FindByClientAndSchedule(ctx context.Context, clientID, scheduleID uuid.UUID) ([]db_models.Receipt, error)

	// CreateAllUnlessPaid writes every receipt in one transaction, but only
	// after re-checking that none of the target months is already covered for
	// the (client, schedule) pair. On overlap nothing is written and the
	// conflicting month is returned.
	CreateAllUnlessPaid(ctx context.Context, clientID, scheduleID uuid.UUID, months []db_models.PaidMonth, receipts []*db_models.Receipt) (*db_models.PaidMonth, error)
}

type receiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) ListAll(ctx context.Context) ([]db_models.Receipt, error) {
	var receipts []db_models.Receipt
	if err := r.db.WithContext(ctx).Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.Receipt, error) {
	var receipts []db_models.Receipt
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) FindByClientAndSchedule(ctx context.Context, clientID, scheduleID uuid.UUID) ([]db_models.Receipt, error) {
	var receipts []db_models.Receipt
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND week_schedule_id = ?", clientID, scheduleID).
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) CreateAllUnlessPaid(ctx context.Context, clientID, scheduleID uuid.UUID, months []db_models.PaidMonth, receipts []*db_models.Receipt) (*db_models.PaidMonth, error) {
	var conflict *db_models.PaidMonth

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []db_models.Receipt
		err := tx.
			Where("client_id = ? AND week_schedule_id = ?", clientID, scheduleID).
			Find(&existing).Error
		if err != nil {
			return err
		}

		for _, month := range months {
			for i := range existing {
				if existing[i].Covers(month) {
					m := month
					conflict = &m
					return nil
				}
			}
		}

		for _, receipt := range receipts {
			if err := tx.Create(receipt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return conflict, nil
}
