package handler

import (
	"net/http"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/response"
	"jobportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	uc usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// UpdateUser handles the request to change the current user's profile.
//
//	@Summary	Update my profile
//	@Tags		user
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		usecase.UpdateProfileInput	true	"Fields to change"
//	@Success	200		{object}	response.Response{data=usecase.AuthOutput}
//	@Failure	400		{object}	response.Response
//	@Failure	401		{object}	response.Response
//	@Failure	404		{object}	response.Response
//	@Router		/api/v1/user/update-user [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// GetProfile handles the request to get the current user's profile.
//
//	@Summary	Get my profile
//	@Tags		user
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	response.Response{data=entity.PublicUser}
//	@Failure	401	{object}	response.Response
//	@Failure	404	{object}	response.Response
//	@Router		/api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	response.Response
//	@Router		/health [get]
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
