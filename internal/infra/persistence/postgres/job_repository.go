package postgres

import (
	"context"
	"strings"

	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	"jobportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

func (repo *jobRepository) Create(ctx context.Context, job *entity.Job) error {
	if job.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate job id")
		}
		job.ID = id
	}

	jobM := fromJobDomain(job)
	if err := repo.db.WithContext(ctx).Omit("Owner").Create(jobM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobCreationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrJobCreationFailed.WrapMessage("missing required job information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindByID reads from the primary because its result gates a write.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&jobM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	return toJobDomain(&jobM), nil
}

func (repo *jobRepository) List(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, int64, error) {
	var total int64
	if err := scopedJobs(repo.db.WithContext(ctx), filter).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count jobs")
	}

	var jobMs []*model.JobModel
	if total > 0 {
		err := pagedJobs(scopedJobs(repo.db.WithContext(ctx), filter), filter).Find(&jobMs).Error
		if err != nil {
			return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list jobs")
		}
	}

	jobs := make([]*entity.Job, 0, len(jobMs))
	for _, jobM := range jobMs {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, total, nil
}

// Update writes the mutable fields. created_by is never part of the update set.
func (repo *jobRepository) Update(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	result := repo.db.WithContext(ctx).
		Model(jobM).
		Select("company", "position", "status", "work_type", "work_location", "updated_at").
		Updates(jobM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

func (repo *jobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete job")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

func (repo *jobRepository) CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]entity.StatusCount, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := statusCountQuery(repo.db.WithContext(ctx), ownerID).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count jobs by status")
	}

	counts := make([]entity.StatusCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.StatusCount{Status: entity.JobStatus(row.Status), Count: row.Count})
	}

	return counts, nil
}

func (repo *jobRepository) CountByMonth(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.MonthlyCount, error) {
	var rows []struct {
		Year  int
		Month int
		Count int64
	}
	err := monthlyCountQuery(repo.db.WithContext(ctx), ownerID, limit).Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count jobs by month")
	}

	counts := make([]entity.MonthlyCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.MonthlyCount{Year: row.Year, Month: row.Month, Count: row.Count})
	}

	return counts, nil
}

// scopedJobs applies the owner scope and the optional filters. Every listing starts here.
func scopedJobs(db *gorm.DB, filter repository.JobFilter) *gorm.DB {
	query := db.Model(&model.JobModel{}).Where("created_by = ?", filter.OwnerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.WorkType != "" {
		query = query.Where("work_type = ?", filter.WorkType.String())
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("position ILIKE ?", "%"+likeEscaper.Replace(search)+"%")
	}

	return query
}

func pagedJobs(query *gorm.DB, filter repository.JobFilter) *gorm.DB {
	switch filter.Sort {
	case entity.JobSortOldest:
		query = query.Order("created_at ASC").Order("id ASC")
	case entity.JobSortAZ:
		query = query.Order("position ASC").Order("id ASC")
	case entity.JobSortZA:
		query = query.Order("position DESC").Order("id DESC")
	default:
		query = query.Order("created_at DESC").Order("id DESC")
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func statusCountQuery(db *gorm.DB, ownerID uuid.UUID) *gorm.DB {
	return db.Model(&model.JobModel{}).
		Select("status, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("status")
}

func monthlyCountQuery(db *gorm.DB, ownerID uuid.UUID, limit int) *gorm.DB {
	return db.Model(&model.JobModel{}).
		Select("EXTRACT(YEAR FROM created_at)::int AS year, EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count").
		Where("created_by = ?", ownerID).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(limit)
}

func toJobDomain(jobM *model.JobModel) *entity.Job {
	if jobM == nil {
		return nil
	}

	return &entity.Job{
		ID:           jobM.ID,
		Company:      jobM.Company,
		Position:     jobM.Position,
		Status:       entity.JobStatus(jobM.Status),
		WorkType:     entity.WorkType(jobM.WorkType),
		WorkLocation: jobM.WorkLocation,
		CreatedBy:    jobM.CreatedBy,
		CreatedAt:    jobM.CreatedAt,
		UpdatedAt:    jobM.UpdatedAt,
	}
}

func fromJobDomain(job *entity.Job) *model.JobModel {
	return &model.JobModel{
		ID:           job.ID,
		Company:      job.Company,
		Position:     job.Position,
		Status:       job.Status.String(),
		WorkType:     job.WorkType.String(),
		WorkLocation: job.WorkLocation,
		CreatedBy:    job.CreatedBy,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}
