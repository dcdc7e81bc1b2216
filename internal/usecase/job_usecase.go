package usecase

import (
	"context"

	"jobportal/internal/domain/entity"

	"github.com/google/uuid"
)

// FilterAll disables the status or work type filter of a listing.
const FilterAll = "all"

// --- Input DTOs ---

// CreateJobInput defines the data required to create a job. The owner always comes from the caller.
type CreateJobInput struct {
	Company      string `json:"company" validate:"required,max=255"`
	Position     string `json:"position" validate:"required,max=255"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=pending reject interview"`
	WorkType     string `json:"workType,omitempty" validate:"omitempty,oneof=full-time part-time internship contract"`
	WorkLocation string `json:"workLocation" validate:"required,max=255"`
}

// ListJobsInput holds the query parameters of a job listing.
type ListJobsInput struct {
	Status   string `query:"status" validate:"omitempty,oneof=all pending reject interview"`
	WorkType string `query:"workType" validate:"omitempty,oneof=all full-time part-time internship contract"`
	Search   string `query:"search" validate:"max=255"`
	Sort     string `query:"sort" validate:"omitempty,oneof=latest oldest a-z z-a"`
	Page     int    `query:"page" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=0"`
}

// UpdateJobInput is a partial update; nil fields are left unchanged.
type UpdateJobInput struct {
	Company      *string `json:"company,omitempty" validate:"omitempty,min=1,max=255"`
	Position     *string `json:"position,omitempty" validate:"omitempty,min=1,max=255"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending reject interview"`
	WorkType     *string `json:"workType,omitempty" validate:"omitempty,oneof=full-time part-time internship contract"`
	WorkLocation *string `json:"workLocation,omitempty" validate:"omitempty,min=1,max=255"`
}

// --- Output DTOs ---

// JobListOutput is one page of the caller's jobs.
type JobListOutput struct {
	TotalJobs int64         `json:"totalJobs"`
	Jobs      []*entity.Job `json:"jobs"`
	NumOfPage int           `json:"numOfPage"`
}

// StatusStats counts the caller's jobs per status. Statuses without jobs report 0.
type StatusStats struct {
	Pending   int64 `json:"pending"`
	Reject    int64 `json:"reject"`
	Interview int64 `json:"interview"`
}

// MonthlyApplication is the number of jobs created in one month, labelled like "Jan 2026".
type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// JobStatsOutput aggregates the caller's jobs.
type JobStatsOutput struct {
	TotalJobs          int64                `json:"totalJobs"`
	DefaultStats       StatusStats          `json:"defaultStats"`
	MonthlyApplication []MonthlyApplication `json:"monthlyApplication"`
}

// JobUsecase defines job operations. Every method is scoped to ownerID.
type JobUsecase interface {
	CreateJob(ctx context.Context, ownerID uuid.UUID, input *CreateJobInput) (*entity.Job, error)
	ListJobs(ctx context.Context, ownerID uuid.UUID, input *ListJobsInput) (*JobListOutput, error)
	UpdateJob(ctx context.Context, ownerID, jobID uuid.UUID, input *UpdateJobInput) (*entity.Job, error)
	DeleteJob(ctx context.Context, ownerID, jobID uuid.UUID) error
	JobStats(ctx context.Context, ownerID uuid.UUID) (*JobStatsOutput, error)
}
