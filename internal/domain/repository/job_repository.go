package repository

import (
	"context"
	"errors"

	"jobportal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when no job matches the requested ID.
var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows a job listing. OwnerID is mandatory; every other field is optional.
type JobFilter struct {
	OwnerID  uuid.UUID
	Status   entity.JobStatus // empty matches every status
	WorkType entity.WorkType  // empty matches every work type
	Search   string           // case-insensitive substring of the position
	Sort     entity.JobSort
	Offset   int
	Limit    int
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	// Create persists a new job and fills in its generated ID and timestamps.
	Create(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a job regardless of its owner so callers can tell "missing" from "not yours".
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// List returns one page of the owner's jobs and the total number of matches.
	List(ctx context.Context, filter JobFilter) ([]*entity.Job, int64, error)

	// Update saves the mutable fields of an existing job.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a job by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStatus groups the owner's jobs by status. Statuses without jobs are omitted.
	CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]entity.StatusCount, error)

	// CountByMonth groups the owner's jobs by creation month, newest month first,
	// returning at most limit months.
	CountByMonth(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.MonthlyCount, error)
}
