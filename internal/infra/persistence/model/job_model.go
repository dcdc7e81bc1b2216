package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel mirrors the 'jobs' table. Listing and stats always filter on created_by.
type JobModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Company      string    `gorm:"type:varchar(255);not null"`
	Position     string    `gorm:"type:varchar(255);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_jobs_owner_status,priority:2"`
	WorkType     string    `gorm:"type:varchar(20);not null;default:'full-time'"`
	WorkLocation string    `gorm:"type:varchar(255);not null"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null;index:idx_jobs_owner_status,priority:1;index:idx_jobs_owner_created,priority:1"`
	CreatedAt    time.Time `gorm:"index:idx_jobs_owner_created,priority:2"`
	UpdatedAt    time.Time

	Owner *UserModel `gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
