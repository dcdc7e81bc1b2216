package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "jobportal/internal/delivery/context"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/response"
	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/infra/validation"
	mockUsecase "jobportal/internal/mocks/usecase"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho mirrors the production error handler and validator; asUser stands in for the bearer guard.
func newTestEcho(asUser uuid.UUID) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError
	if asUser != uuid.Nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetUserID(c, asUser)

				return next(c)
			}
		})
	}

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	response.Response
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthHandler_Register(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)
	e := newTestEcho(uuid.Nil)
	e.POST("/register", h.Register)

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{
			User:  &entity.PublicUser{ID: userID, Name: "Ann", Email: "ann@example.com", Location: entity.DefaultLocation},
			Token: "signed-token",
		}, nil).Once()

	rec := doRequest(e, http.MethodPost, "/register", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)

	var out usecase.AuthOutput
	require.NoError(t, json.Unmarshal(body.Data, &out))
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.NotContains(t, string(body.Data), "password")
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)
	e := newTestEcho(uuid.Nil)
	e.POST("/register", h.Register)

	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	rec := doRequest(e, http.MethodPost, "/register", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)
	e := newTestEcho(uuid.Nil)
	e.POST("/register", h.Register)

	rec := doRequest(e, http.MethodPost, "/register", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Login_FailuresAreIndistinguishable(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)
	e := newTestEcho(uuid.Nil)
	e.POST("/login", h.Login)

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "ann@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "nobody@example.com", Password: "secret1"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	wrongPassword := doRequest(e, http.MethodPost, "/login", `{"email":"ann@example.com","password":"wrong"}`)
	unknownEmail := doRequest(e, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)

	first, second := decodeEnvelope(t, wrongPassword), decodeEnvelope(t, unknownEmail)
	assert.Equal(t, "Invalid credentials", first.Message)
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, first.Error, second.Error)
}

func TestJobHandler_CreateJob(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(ownerID)
	e.POST("/jobs", h.CreateJob)

	uc.EXPECT().
		CreateJob(mock.Anything, ownerID, &usecase.CreateJobInput{Company: "Acme", Position: "Go Developer", WorkLocation: "Pune"}).
		Return(&entity.Job{ID: uuid.New(), Company: "Acme", Position: "Go Developer", Status: entity.JobStatusPending, WorkType: entity.WorkTypeFullTime, WorkLocation: "Pune", CreatedBy: ownerID}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/jobs", `{"company":"Acme","position":"Go Developer","workLocation":"Pune","createdBy":"`+uuid.NewString()+`"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var job entity.Job
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &job))
	assert.Equal(t, ownerID, job.CreatedBy)
	assert.Equal(t, entity.JobStatusPending, job.Status)
}

func TestJobHandler_RequiresAuthenticatedUser(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(uuid.Nil)
	e.GET("/jobs", h.ListJobs)

	rec := doRequest(e, http.MethodGet, "/jobs", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJobHandler_ListJobs_BindsQuery(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(ownerID)
	e.GET("/jobs", h.ListJobs)

	want := &usecase.ListJobsInput{Status: "interview", WorkType: "all", Search: "dev", Sort: "a-z", Page: 3, Limit: 10}
	uc.EXPECT().ListJobs(mock.Anything, ownerID, want).
		Return(&usecase.JobListOutput{TotalJobs: 25, Jobs: []*entity.Job{}, NumOfPage: 3}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/jobs?status=interview&workType=all&search=dev&sort=a-z&page=3&limit=10", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.JobListOutput
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, int64(25), out.TotalJobs)
	assert.Equal(t, 3, out.NumOfPage)
	assert.NotNil(t, out.Jobs)
}

func TestJobHandler_ListJobs_BadPage(t *testing.T) {
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(uuid.New())
	e.GET("/jobs", h.ListJobs)

	rec := doRequest(e, http.MethodGet, "/jobs?page=two", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobHandler_UpdateJob(t *testing.T) {
	ownerID, jobID := uuid.New(), uuid.New()
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(ownerID)
	e.PATCH("/jobs/:id", h.UpdateJob)

	status := "interview"
	uc.EXPECT().UpdateJob(mock.Anything, ownerID, jobID, &usecase.UpdateJobInput{Status: &status}).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusInterview, CreatedBy: ownerID, UpdatedAt: time.Now()}, nil).Once()

	rec := doRequest(e, http.MethodPatch, "/jobs/"+jobID.String(), `{"status":"interview"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJobHandler_UpdateJob_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "malformed id", id: "not-a-uuid", wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "missing job", id: uuid.NewString(), ucErr: domainerrors.ErrJobNotFound, wantStatus: http.StatusNotFound, wantCode: "JOB_NOT_FOUND"},
		{name: "not the owner", id: uuid.NewString(), ucErr: domainerrors.ErrJobOwnershipViolation, wantStatus: http.StatusForbidden, wantCode: "JOB_OWNERSHIP_VIOLATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockJobUsecase(t)
			h := NewJobHandler(uc)
			e := newTestEcho(uuid.New())
			e.PATCH("/jobs/:id", h.UpdateJob)

			if tt.ucErr != nil {
				uc.EXPECT().UpdateJob(mock.Anything, mock.Anything, uuid.MustParse(tt.id), mock.Anything).Return(nil, tt.ucErr).Once()
			}

			rec := doRequest(e, http.MethodPatch, "/jobs/"+tt.id, `{"status":"interview"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestJobHandler_DeleteJob(t *testing.T) {
	ownerID, jobID := uuid.New(), uuid.New()
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(ownerID)
	e.DELETE("/jobs/:id", h.DeleteJob)

	uc.EXPECT().DeleteJob(mock.Anything, ownerID, jobID).Return(nil).Once()

	rec := doRequest(e, http.MethodDelete, "/jobs/"+jobID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "Success, Job Deleted!", out["message"])
}

func TestJobHandler_JobStats(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockJobUsecase(t)
	h := NewJobHandler(uc)
	e := newTestEcho(ownerID)
	e.GET("/stats", h.JobStats)

	uc.EXPECT().JobStats(mock.Anything, ownerID).Return(&usecase.JobStatsOutput{
		TotalJobs:          3,
		DefaultStats:       usecase.StatusStats{Pending: 2, Interview: 1},
		MonthlyApplication: []usecase.MonthlyApplication{{Date: "Jan 2026", Count: 3}},
	}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"defaultStats":{"pending":2,"reject":0,"interview":1}`)
	assert.Contains(t, data, `"monthlyApplication":[{"date":"Jan 2026","count":3}]`)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	userID := uuid.New()
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewUserHandler(uc)
	e := newTestEcho(userID)
	e.PUT("/user", h.UpdateUser)

	location := "Mumbai"
	uc.EXPECT().UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{Location: &location}).
		Return(&usecase.AuthOutput{User: &entity.PublicUser{ID: userID, Location: location}, Token: "fresh-token"}, nil).Once()

	rec := doRequest(e, http.MethodPut, "/user", `{"location":"Mumbai","email":"ignored@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out usecase.AuthOutput
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	assert.Equal(t, "fresh-token", out.Token)
	assert.Equal(t, "Mumbai", out.User.Location)
}

func TestUserHandler_GetProfile_NotFound(t *testing.T) {
	userID := uuid.New()
	uc := mockUsecase.NewMockProfileUsecase(t)
	h := NewUserHandler(uc)
	e := newTestEcho(userID)
	e.GET("/profile", h.GetProfile)

	uc.EXPECT().GetProfile(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(uuid.Nil)
	e.GET("/health", HealthCheck)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}
