package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.UserAccount) error
	FindByID(ctx context.Context, id string) (*model.UserAccount, error)
	FindByEmail(ctx context.Context, email string) (*model.UserAccount, error)
	FindRoleByName(ctx context.Context, name string) (*model.Role, error)
	FindAll(ctx context.Context) ([]*model.UserAccount, error)
	UpdateStatus(ctx context.Context, id string, status survey.Status) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.UserAccount) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.UserAccount, error) {
	var user model.UserAccount
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.UserAccount, error) {
	var user model.UserAccount
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}

	return &role, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.UserAccount, error) {
	var users []*model.UserAccount
	if err := r.db.WithContext(ctx).Preload("Role").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id string, status survey.Status) error {
	return r.db.WithContext(ctx).
		Model(&model.UserAccount{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserAccount{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
