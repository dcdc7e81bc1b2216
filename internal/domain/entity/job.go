package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the application state of a job posting.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusReject    JobStatus = "reject"
	JobStatusInterview JobStatus = "interview"
)

// String returns the string representation of the JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusReject, JobStatusInterview:
		return true
	default:
		return false
	}
}

// JobStatuses lists every status in reporting order.
func JobStatuses() []JobStatus {
	return []JobStatus{JobStatusPending, JobStatusReject, JobStatusInterview}
}

// WorkType is the employment arrangement of a job posting.
type WorkType string

const (
	WorkTypeFullTime   WorkType = "full-time"
	WorkTypePartTime   WorkType = "part-time"
	WorkTypeInternship WorkType = "internship"
	WorkTypeContract   WorkType = "contract"
)

// String returns the string representation of the WorkType.
func (w WorkType) String() string {
	return string(w)
}

// IsValid checks if the WorkType is a valid value.
func (w WorkType) IsValid() bool {
	switch w {
	case WorkTypeFullTime, WorkTypePartTime, WorkTypeInternship, WorkTypeContract:
		return true
	default:
		return false
	}
}

// Job is a job application tracked by its owner.
type Job struct {
	ID           uuid.UUID `json:"id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Status       JobStatus `json:"status"`
	WorkType     WorkType  `json:"workType"`
	WorkLocation string    `json:"workLocation"`
	CreatedBy    uuid.UUID `json:"createdBy"` // Owner; set from the authenticated caller and never changed.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsOwnedBy reports whether the job belongs to the given user.
func (j *Job) IsOwnedBy(userID uuid.UUID) bool {
	return j != nil && userID != uuid.Nil && j.CreatedBy == userID
}

// JobSort selects the ordering of a job listing.
type JobSort string

const (
	JobSortLatest JobSort = "latest"
	JobSortOldest JobSort = "oldest"
	JobSortAZ     JobSort = "a-z"
	JobSortZA     JobSort = "z-a"
)

// IsValid checks if the JobSort is a valid value.
func (s JobSort) IsValid() bool {
	switch s {
	case JobSortLatest, JobSortOldest, JobSortAZ, JobSortZA:
		return true
	default:
		return false
	}
}
