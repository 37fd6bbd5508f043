package model

import (
	"time"
)

// BaseEntity carries the audit timestamps GORM fills in on create/update.
// Contact submissions are anonymous, so there is no created_by column.
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}
