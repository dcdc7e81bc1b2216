package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"jobportal/config"
	deliverycontext "jobportal/internal/delivery/context"
	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	"jobportal/internal/domain/service"
	"jobportal/internal/usecase"
	"jobportal/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	jobRepo   repository.JobRepository
	txManager repository.TransactionManager
	validator service.InputValidator
	jobsCfg   config.JobsConfig
	logger    *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	JobRepo   repository.JobRepository
	TxManager repository.TransactionManager
	Validator service.InputValidator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewJobService creates a new job service instance
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	if params.Config.Jobs == nil {
		params.Config.ApplyDefaults()
	}

	return &jobService{
		jobRepo:   params.JobRepo,
		txManager: params.TxManager,
		validator: params.Validator,
		jobsCfg:   *params.Config.Jobs,
		logger:    params.Logger,
	}
}

func (srv *jobService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateJob stores a job owned by ownerID. Status defaults to pending and work type to full-time.
func (srv *jobService) CreateJob(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateJobInput) (*entity.Job, error) {
	input.Company = strings.TrimSpace(input.Company)
	input.Position = strings.TrimSpace(input.Position)
	input.WorkLocation = strings.TrimSpace(input.WorkLocation)

	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	job := &entity.Job{
		Company:      input.Company,
		Position:     input.Position,
		Status:       entity.JobStatusPending,
		WorkType:     entity.WorkTypeFullTime,
		WorkLocation: input.WorkLocation,
		CreatedBy:    ownerID,
	}
	if input.Status != "" {
		job.Status = entity.JobStatus(input.Status)
	}
	if input.WorkType != "" {
		job.WorkType = entity.WorkType(input.WorkType)
	}

	if err := srv.jobRepo.Create(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	srv.log(ctx).Info("Job created", slog.Any("jobID", job.ID), slog.Any("ownerID", ownerID))

	return job, nil
}

// ListJobs returns one page of the owner's jobs.
func (srv *jobService) ListJobs(ctx context.Context, ownerID uuid.UUID, input *usecase.ListJobsInput) (*usecase.JobListOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	limit := util.ClampPageSize(input.Limit, srv.jobsCfg.DefaultPageSize, srv.jobsCfg.MaxPageSize)
	page := max(input.Page, 1)

	filter := repository.JobFilter{
		OwnerID: ownerID,
		Search:  strings.TrimSpace(input.Search),
		Sort:    entity.JobSortLatest,
		Offset:  util.PageOffset(page, limit),
		Limit:   limit,
	}
	if input.Status != "" && input.Status != usecase.FilterAll {
		filter.Status = entity.JobStatus(input.Status)
	}
	if input.WorkType != "" && input.WorkType != usecase.FilterAll {
		filter.WorkType = entity.WorkType(input.WorkType)
	}
	if input.Sort != "" {
		filter.Sort = entity.JobSort(input.Sort)
	}

	jobs, total, err := srv.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}
	if jobs == nil {
		jobs = []*entity.Job{}
	}

	return &usecase.JobListOutput{
		TotalJobs: total,
		Jobs:      jobs,
		NumOfPage: util.PageCount(total, limit),
	}, nil
}

// UpdateJob applies a partial update to a job the owner created.
func (srv *jobService) UpdateJob(ctx context.Context, ownerID, jobID uuid.UUID, input *usecase.UpdateJobInput) (*entity.Job, error) {
	trimOptional(input.Company, input.Position, input.WorkLocation)

	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var updated *entity.Job
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()

		job, err := srv.findOwnedJob(ctx, jobRepo, ownerID, jobID)
		if err != nil {
			return err
		}

		applyJobUpdates(job, input)

		if err := jobRepo.Update(ctx, job); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.WithStack(domainerrors.ErrJobNotFound)
			}

			return errors.Wrap(err, "failed to update job")
		}
		updated = job

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Job updated", slog.Any("jobID", jobID))

	return updated, nil
}

// DeleteJob removes a job the owner created.
func (srv *jobService) DeleteJob(ctx context.Context, ownerID, jobID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.JobRepo()

		if _, err := srv.findOwnedJob(ctx, jobRepo, ownerID, jobID); err != nil {
			return err
		}

		if err := jobRepo.Delete(ctx, jobID); err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return errors.WithStack(domainerrors.ErrJobNotFound)
			}

			return errors.Wrap(err, "failed to delete job")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Job deleted", slog.Any("jobID", jobID))

	return nil
}

// JobStats counts the owner's jobs per status and per month for the most recent months with jobs.
func (srv *jobService) JobStats(ctx context.Context, ownerID uuid.UUID) (*usecase.JobStatsOutput, error) {
	statusCounts, err := srv.jobRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count jobs by status")
	}

	monthlyCounts, err := srv.jobRepo.CountByMonth(ctx, ownerID, srv.jobsCfg.StatsMonths)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count jobs by month")
	}

	output := &usecase.JobStatsOutput{
		MonthlyApplication: make([]usecase.MonthlyApplication, 0, len(monthlyCounts)),
	}
	for _, sc := range statusCounts {
		output.TotalJobs += sc.Count

		switch sc.Status {
		case entity.JobStatusPending:
			output.DefaultStats.Pending = sc.Count
		case entity.JobStatusReject:
			output.DefaultStats.Reject = sc.Count
		case entity.JobStatusInterview:
			output.DefaultStats.Interview = sc.Count
		default:
			srv.log(ctx).Warn("Unknown job status in stats", slog.String("status", sc.Status.String()))
		}
	}

	// Store returns newest first; clients chart oldest to newest.
	monthlyCounts = slices.Clone(monthlyCounts)
	slices.Reverse(monthlyCounts)
	for _, mc := range monthlyCounts {
		output.MonthlyApplication = append(output.MonthlyApplication, usecase.MonthlyApplication{
			Date:  util.MonthLabel(mc.Year, mc.Month),
			Count: mc.Count,
		})
	}

	return output, nil
}

// findOwnedJob tells a missing job (404) apart from someone else's job (403).
func (srv *jobService) findOwnedJob(ctx context.Context, jobRepo repository.JobRepository, ownerID, jobID uuid.UUID) (*entity.Job, error) {
	job, err := jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, errors.WithStack(domainerrors.ErrJobNotFound)
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	if !job.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Job ownership violation", slog.Any("jobID", jobID), slog.Any("callerID", ownerID))

		return nil, errors.WithStack(domainerrors.ErrJobOwnershipViolation)
	}

	return job, nil
}

func applyJobUpdates(job *entity.Job, input *usecase.UpdateJobInput) {
	patchString(&job.Company, input.Company)
	patchString(&job.Position, input.Position)
	patchString(&job.WorkLocation, input.WorkLocation)

	if input.Status != nil {
		job.Status = entity.JobStatus(*input.Status)
	}
	if input.WorkType != nil {
		job.WorkType = entity.WorkType(*input.WorkType)
	}
}
