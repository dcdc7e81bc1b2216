package handler

import (
	"net/http"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/response"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const jobDeletedMessage = "Success, Job Deleted!"

// jobIDParam is the :id path segment of update-job and delete-job.
type jobIDParam struct {
	ID string `json:"id" validate:"required,uuid"`
}

// JobHandler serves the caller's job postings.
type JobHandler struct {
	uc usecase.JobUsecase
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// CreateJob handles job creation for the authenticated user.
//
//	@Summary	Create a job
//	@Tags		jobs
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		usecase.CreateJobInput	true	"Job data"
//	@Success	201		{object}	response.Response{data=entity.Job}
//	@Failure	400		{object}	response.Response
//	@Failure	401		{object}	response.Response
//	@Router		/api/v1/jobs/create-job [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateJobInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	job, err := h.uc.CreateJob(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// ListJobs handles the filtered, sorted and paginated listing of the caller's jobs.
//
//	@Summary	List my jobs
//	@Tags		jobs
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status		query		string	false	"pending, reject, interview or all"
//	@Param		workType	query		string	false	"full-time, part-time, internship, contract or all"
//	@Param		search		query		string	false	"Case-insensitive match on position"
//	@Param		sort		query		string	false	"latest, oldest, a-z or z-a"
//	@Param		page		query		int		false	"Page number, starting at 1"
//	@Param		limit		query		int		false	"Page size"
//	@Success	200			{object}	response.Response{data=usecase.JobListOutput}
//	@Failure	400			{object}	response.Response
//	@Failure	401			{object}	response.Response
//	@Router		/api/v1/jobs/get-job [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input usecase.ListJobsInput
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	output, err := h.uc.ListJobs(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Jobs retrieved successfully")
}

// UpdateJob handles a partial update of one of the caller's jobs.
//
//	@Summary	Update a job
//	@Tags		jobs
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Job ID"
//	@Param		body	body		usecase.UpdateJobInput	true	"Fields to change"
//	@Success	200		{object}	response.Response{data=entity.Job}
//	@Failure	400		{object}	response.Response
//	@Failure	403		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Router		/api/v1/jobs/update-job/{id} [patch]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateJobInput
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	job, err := h.uc.UpdateJob(c.Request().Context(), ownerID, jobID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job updated successfully")
}

// DeleteJob handles removal of one of the caller's jobs.
//
//	@Summary	Delete a job
//	@Tags		jobs
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Job ID"
//	@Success	200	{object}	response.Response
//	@Failure	403	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Router		/api/v1/jobs/delete-job/{id} [delete]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	jobID, err := parseJobID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteJob(c.Request().Context(), ownerID, jobID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": jobDeletedMessage}, jobDeletedMessage)
}

// JobStats handles the status and monthly aggregates of the caller's jobs.
//
//	@Summary	Job statistics
//	@Tags		jobs
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	response.Response{data=usecase.JobStatsOutput}
//	@Failure	401	{object}	response.Response
//	@Router		/api/v1/jobs/job-stats [get]
func (h *JobHandler) JobStats(c echo.Context) error {
	ownerID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	stats, err := h.uc.JobStats(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Job stats retrieved successfully")
}

func parseJobID(c echo.Context) (uuid.UUID, error) {
	param := jobIDParam{ID: c.Param("id")}
	if err := c.Validate(param); err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(param.ID)
}
