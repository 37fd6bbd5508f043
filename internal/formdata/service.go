package formdata

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

// Keys of the mapping accepted by Process
const (
	KeyName       = "name"
	KeyEmail      = "email"
	KeyPhone      = "phone"
	KeyNationalID = "nationalId"
)

// Service is the downstream form-data service. It receives verified contact
// data as a flat mapping and stores it as a ContactSubmission.
type Service struct {
	db         *gorm.DB
	repository *Repository
}

func NewService(db *gorm.DB, repository *Repository) *Service {
	return &Service{
		db:         db,
		repository: repository,
	}
}

// Process stores the submitted form data. Every key must be present and non-empty.
func (s *Service) Process(ctx context.Context, data map[string]string) error {
	log := logger.FromContext(ctx)

	submission, err := toSubmission(data)
	if err != nil {
		log.Warn("Rejected incomplete form data", "error", err)
		return err
	}
	submission.RequestID = sharedContext.RequestID(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		previous, err := s.repository.CountByNationalID(ctx, tx, submission.NationalID)
		if err != nil {
			log.Error("Failed to count previous submissions", "error", err)
			return fmt.Errorf("count previous submissions: %w", err)
		}

		if err := s.repository.Create(ctx, tx, submission); err != nil {
			log.Error("Failed to store contact submission", "error", err)
			return fmt.Errorf("create contact submission: %w", err)
		}

		log.Info("Contact submission stored",
			"id", submission.ID,
			"email", logger.MaskEmail(submission.Email),
			"phone", logger.MaskPhone(submission.Phone),
			"national_id", logger.MaskNationalID(submission.NationalID),
			"previous_submissions", previous,
		)
		return nil
	})
}

func toSubmission(data map[string]string) (*model.ContactSubmission, error) {
	for _, key := range []string{KeyName, KeyEmail, KeyPhone, KeyNationalID} {
		if data[key] == "" {
			return nil, fmt.Errorf("missing %q: %w", key, ErrIncompleteFormData)
		}
	}

	return model.NewContactSubmission(data[KeyName], data[KeyEmail], data[KeyPhone], data[KeyNationalID]), nil
}
