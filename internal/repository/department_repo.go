package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
)

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]*model.Department, error)
	FindByID(ctx context.Context, id uint) (*model.Department, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]*model.Department, error) {
	var departments []*model.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepository) FindByID(ctx context.Context, id uint) (*model.Department, error) {
	var department model.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error; err != nil {
		return nil, err
	}

	return &department, nil
}

func (r *departmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
