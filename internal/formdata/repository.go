package formdata

import (
	"context"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/model"
	"gorm.io/gorm"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Create(ctx context.Context, db *gorm.DB, submission *model.ContactSubmission) error {
	return db.WithContext(ctx).Create(submission).Error
}

func (r *Repository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.ContactSubmission, error) {
	var submission model.ContactSubmission
	err := db.WithContext(ctx).Where("id = ?", id).First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *Repository) CountByNationalID(ctx context.Context, db *gorm.DB, nationalID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.ContactSubmission{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error
	return count, err
}
