package impl

import (
	"context"
	"math"
	"testing"
	"time"

	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	mockRepo "jobportal/internal/mocks/repository"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service   usecase.JobUsecase
	jobRepo   *mockRepo.MockJobRepository
	txManager *mockRepo.MockTransactionManager
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewJobService(JobServiceParams{
		JobRepo:   jobRepo,
		TxManager: txManager,
		Validator: newTestValidator(),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return jobServiceFixtures{
		service:   service,
		jobRepo:   jobRepo,
		txManager: txManager,
	}
}

// txJobRepo wires a transaction whose factory hands out a fresh job repository mock.
func (fx jobServiceFixtures) txJobRepo(t *testing.T) *mockRepo.MockJobRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockJobRepository(t)
	factory.EXPECT().JobRepo().Return(txRepo)
	expectTransaction(fx.txManager, factory)

	return txRepo
}

func TestJobService_CreateJob_Defaults(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Job")).
		Run(func(_ context.Context, job *entity.Job) {
			job.ID = uuid.New()
		}).
		Return(nil)

	job, err := fx.service.CreateJob(ctx, ownerID, &usecase.CreateJobInput{
		Company:      " Acme ",
		Position:     "Backend Engineer",
		WorkLocation: "Pune",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, entity.JobStatusPending, job.Status)
	assert.Equal(t, entity.WorkTypeFullTime, job.WorkType)
	assert.Equal(t, ownerID, job.CreatedBy)
	assert.NotEqual(t, uuid.Nil, job.ID)
}

func TestJobService_CreateJob_ExplicitEnums(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()

	fx.jobRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Job")).Return(nil)

	job, err := fx.service.CreateJob(ctx, uuid.New(), &usecase.CreateJobInput{
		Company:      "Acme",
		Position:     "Intern",
		Status:       "interview",
		WorkType:     "internship",
		WorkLocation: "Remote",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInterview, job.Status)
	assert.Equal(t, entity.WorkTypeInternship, job.WorkType)
}

func TestJobService_CreateJob_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateJobInput
	}{
		{name: "missing company", input: usecase.CreateJobInput{Position: "Dev", WorkLocation: "Pune"}},
		{name: "missing position", input: usecase.CreateJobInput{Company: "Acme", WorkLocation: "Pune"}},
		{name: "missing work location", input: usecase.CreateJobInput{Company: "Acme", Position: "Dev"}},
		{name: "unknown status", input: usecase.CreateJobInput{Company: "Acme", Position: "Dev", WorkLocation: "Pune", Status: "hired"}},
		{name: "unknown work type", input: usecase.CreateJobInput{Company: "Acme", Position: "Dev", WorkLocation: "Pune", WorkType: "freelance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestJobService(t)

			job, err := fx.service.CreateJob(context.Background(), uuid.New(), &tt.input)

			require.Error(t, err)
			assert.Nil(t, job)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestJobService_ListJobs_ForwardsOwnerAndPaging(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	page := []*entity.Job{{ID: uuid.New(), CreatedBy: ownerID}}

	fx.jobRepo.EXPECT().
		List(ctx, repository.JobFilter{
			OwnerID: ownerID,
			Sort:    entity.JobSortLatest,
			Offset:  20,
			Limit:   10,
		}).
		Return(page, int64(25), nil)

	output, err := fx.service.ListJobs(ctx, ownerID, &usecase.ListJobsInput{
		Status:   "all",
		WorkType: "all",
		Page:     3,
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(25), output.TotalJobs)
	assert.Equal(t, 3, output.NumOfPage)
	assert.Equal(t, page, output.Jobs)
}

func TestJobService_ListJobs_PageBeyondRangeIsEmpty(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		List(ctx, repository.JobFilter{
			OwnerID: ownerID,
			Sort:    entity.JobSortLatest,
			Offset:  math.MaxInt,
			Limit:   100,
		}).
		Return(nil, int64(25), nil)

	output, err := fx.service.ListJobs(ctx, ownerID, &usecase.ListJobsInput{
		Page:  math.MaxInt / 50,
		Limit: 100,
	})

	require.NoError(t, err)
	assert.Empty(t, output.Jobs)
	assert.Equal(t, int64(25), output.TotalJobs)
}

func TestJobService_ListJobs_Filters(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		List(ctx, repository.JobFilter{
			OwnerID:  ownerID,
			Status:   entity.JobStatusPending,
			WorkType: entity.WorkTypeContract,
			Search:   "dev",
			Sort:     entity.JobSortZA,
			Offset:   0,
			Limit:    100,
		}).
		Return(nil, int64(0), nil)

	output, err := fx.service.ListJobs(ctx, ownerID, &usecase.ListJobsInput{
		Status:   "pending",
		WorkType: "contract",
		Search:   "  dev ",
		Sort:     "z-a",
		Limit:    1000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.TotalJobs)
	assert.Equal(t, 0, output.NumOfPage)
	assert.NotNil(t, output.Jobs)
	assert.Empty(t, output.Jobs)
}

func TestJobService_ListJobs_InvalidSort(t *testing.T) {
	fx := createTestJobService(t)

	_, err := fx.service.ListJobs(context.Background(), uuid.New(), &usecase.ListJobsInput{Sort: "salary"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestJobService_UpdateJob_Success(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	jobID := uuid.New()
	existing := &entity.Job{
		ID:           jobID,
		Company:      "Acme",
		Position:     "Dev",
		Status:       entity.JobStatusPending,
		WorkType:     entity.WorkTypeFullTime,
		WorkLocation: "Pune",
		CreatedBy:    ownerID,
	}

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(existing, nil)
	txRepo.EXPECT().Update(ctx, existing).Return(nil)

	job, err := fx.service.UpdateJob(ctx, ownerID, jobID, &usecase.UpdateJobInput{
		Status:   stringPtr("interview"),
		Position: stringPtr(" Senior Dev "),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInterview, job.Status)
	assert.Equal(t, "Senior Dev", job.Position)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, ownerID, job.CreatedBy)
}

func TestJobService_UpdateJob_NotFound(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	job, err := fx.service.UpdateJob(ctx, uuid.New(), jobID, &usecase.UpdateJobInput{Company: stringPtr("Other")})

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_UpdateJob_OtherOwnerIsForbidden(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()
	existing := &entity.Job{ID: jobID, Company: "Acme", CreatedBy: uuid.New()}

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(existing, nil)

	job, err := fx.service.UpdateJob(ctx, uuid.New(), jobID, &usecase.UpdateJobInput{Company: stringPtr("Hijacked")})

	require.Error(t, err)
	assert.Nil(t, job)
	assert.True(t, errors.Is(err, domainerrors.ErrJobOwnershipViolation))
	assert.Equal(t, "Acme", existing.Company)
	txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestJobService_UpdateJob_ValidationError(t *testing.T) {
	fx := createTestJobService(t)

	_, err := fx.service.UpdateJob(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateJobInput{
		Company: stringPtr("   "),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestJobService_DeleteJob_Success(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	jobID := uuid.New()

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(&entity.Job{ID: jobID, CreatedBy: ownerID}, nil)
	txRepo.EXPECT().Delete(ctx, jobID).Return(nil)

	require.NoError(t, fx.service.DeleteJob(ctx, ownerID, jobID))
}

func TestJobService_DeleteJob_OtherOwnerIsForbidden(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(&entity.Job{ID: jobID, CreatedBy: uuid.New()}, nil)

	err := fx.service.DeleteJob(ctx, uuid.New(), jobID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJobOwnershipViolation))
	txRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestJobService_DeleteJob_NotFound(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	jobID := uuid.New()

	txRepo := fx.txJobRepo(t)
	txRepo.EXPECT().FindByID(ctx, jobID).Return(nil, repository.ErrJobNotFound)

	err := fx.service.DeleteJob(ctx, uuid.New(), jobID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJobNotFound))
}

func TestJobService_JobStats(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().CountByStatus(ctx, ownerID).Return([]entity.StatusCount{
		{Status: entity.JobStatusPending, Count: 2},
		{Status: entity.JobStatusReject, Count: 1},
	}, nil)
	fx.jobRepo.EXPECT().CountByMonth(ctx, ownerID, 6).Return([]entity.MonthlyCount{
		{Year: 2026, Month: int(time.February), Count: 1},
		{Year: 2026, Month: int(time.January), Count: 1},
		{Year: 2025, Month: int(time.December), Count: 1},
	}, nil)

	stats, err := fx.service.JobStats(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalJobs)
	assert.Equal(t, usecase.StatusStats{Pending: 2, Reject: 1, Interview: 0}, stats.DefaultStats)
	assert.Equal(t, []usecase.MonthlyApplication{
		{Date: "Dec 2025", Count: 1},
		{Date: "Jan 2026", Count: 1},
		{Date: "Feb 2026", Count: 1},
	}, stats.MonthlyApplication)
}

func TestJobService_JobStats_NoJobs(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().CountByStatus(ctx, ownerID).Return(nil, nil)
	fx.jobRepo.EXPECT().CountByMonth(ctx, ownerID, 6).Return(nil, nil)

	stats, err := fx.service.JobStats(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalJobs)
	assert.Equal(t, usecase.StatusStats{}, stats.DefaultStats)
	assert.NotNil(t, stats.MonthlyApplication)
	assert.Empty(t, stats.MonthlyApplication)
}

func TestJobService_JobStats_StoreError(t *testing.T) {
	fx := createTestJobService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().CountByStatus(ctx, ownerID).Return(nil, errors.New("db down"))

	_, err := fx.service.JobStats(ctx, ownerID)

	require.Error(t, err)
}
