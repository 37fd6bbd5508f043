package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn in a transaction bound to ctx. Returning an error
// from fn rolls back; returning nil commits.
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    return repository.Create(ctx, tx, submission)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
