package repositories

import (
	"context"
	"errors"

	"gympoint/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Save(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	ListWithRole(ctx context.Context, role string) ([]db_models.User, error)

	AddClientRole(ctx context.Context, userID uuid.UUID) error
	AddInstructorRole(ctx context.Context, userID uuid.UUID) error
	AddAdminRole(ctx context.Context, userID uuid.UUID) error
	RemoveClientRole(ctx context.Context, userID uuid.UUID) error
	RemoveInstructorRole(ctx context.Context, userID uuid.UUID) error
	RemoveAdminRole(ctx context.Context, userID uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Save(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Instructor").
		Preload("Admin").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Instructor").
		Preload("Admin").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Instructor").
		Preload("Admin").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListWithRole returns users holding the given sub-identity ("clients",
// "instructors" or "admins" as table name).
func (r *userRepository) ListWithRole(ctx context.Context, table string) ([]db_models.User, error) {
	var users []db_models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN "+table+" ON "+table+".user_id = users.id AND "+table+".deleted_at IS NULL").
		Preload("Client").
		Preload("Instructor").
		Preload("Admin").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AddClientRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&db_models.Client{UserID: userID}).Error
}

func (r *userRepository) AddInstructorRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&db_models.Instructor{UserID: userID}).Error
}

func (r *userRepository) AddAdminRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Create(&db_models.Admin{UserID: userID}).Error
}

// Role rows are removed for real (Unscoped) so a later re-promotion doesn't
// trip over the unique user_id index of a soft-deleted row.
func (r *userRepository) RemoveClientRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).Delete(&db_models.Client{}).Error
}

func (r *userRepository) RemoveInstructorRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).Delete(&db_models.Instructor{}).Error
}

func (r *userRepository) RemoveAdminRole(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).Delete(&db_models.Admin{}).Error
}
