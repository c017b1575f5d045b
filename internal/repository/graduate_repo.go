package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/marcus024/ssu-alumni-tracker/internal/model"
	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
)

type GraduateRepository interface {
	Create(ctx context.Context, profile *model.GraduateProfile, images []model.GraduateImage) error
	FindByID(ctx context.Context, id string) (*model.GraduateProfile, error)
	FindByEmail(ctx context.Context, email string) (*model.GraduateProfile, error)
	FindAll(ctx context.Context, status survey.Status) ([]*model.GraduateProfile, error)
	FindAllWithEmail(ctx context.Context) ([]*model.GraduateProfile, error)
	UpdateStatus(ctx context.Context, id string, status survey.Status) error
	Count(ctx context.Context) (int64, error)
}

type graduateRepository struct {
	db *gorm.DB
}

func NewGraduateRepository(db *gorm.DB) GraduateRepository {
	return &graduateRepository{db: db}
}

// Create persists the profile row and its activity images in one
// transaction; a failure leaves nothing behind.
func (r *graduateRepository) Create(ctx context.Context, profile *model.GraduateProfile, images []model.GraduateImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		for i := range images {
			images[i].GraduateID = profile.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *graduateRepository) FindByID(ctx context.Context, id string) (*model.GraduateProfile, error) {
	var profile model.GraduateProfile
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("ActivityImages").
		Where("id = ?", id).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *graduateRepository) FindByEmail(ctx context.Context, email string) (*model.GraduateProfile, error) {
	var profile model.GraduateProfile
	if err := r.db.WithContext(ctx).
		Preload("Department").
		Where("email = ?", email).
		First(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *graduateRepository) FindAll(ctx context.Context, status survey.Status) ([]*model.GraduateProfile, error) {
	var profiles []*model.GraduateProfile
	query := r.db.WithContext(ctx).
		Preload("Department").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *graduateRepository) FindAllWithEmail(ctx context.Context) ([]*model.GraduateProfile, error) {
	var profiles []*model.GraduateProfile
	if err := r.db.WithContext(ctx).
		Where("email IS NOT NULL AND email <> ''").
		Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *graduateRepository) UpdateStatus(ctx context.Context, id string, status survey.Status) error {
	return r.db.WithContext(ctx).
		Model(&model.GraduateProfile{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *graduateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.GraduateProfile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
