package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetUserHandler returns one user's profile.
func GetUserHandler(c echo.Context) error {
	type getUserParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getUserResponse struct {
		Message string      `json:"message"`
		User    *graph.User `json:"user,omitempty"`
	}

	params := new(getUserParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUserResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getUserResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	user, err := cc.App.Store.GetUser(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getUserResponse{
		Message: "OK",
		User:    &user,
	})
}

// GetProfileHandler returns the authenticated user's own profile.
func GetProfileHandler(c echo.Context) error {
	type getProfileResponse struct {
		Message string      `json:"message"`
		User    *graph.User `json:"user,omitempty"`
	}

	cc := c.(*middleware.AppContext)
	user, err := cc.App.Store.GetUser(c.Request().Context(), cc.ActorID(), cc.ActorID())
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getProfileResponse{
		Message: "OK",
		User:    &user,
	})
}
