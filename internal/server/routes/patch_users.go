package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditUserHandler updates the caller's own profile. Omitted fields are left
// untouched.
func EditUserHandler(c echo.Context) error {
	type editUserBody struct {
		ID       string  `param:"id" validate:"required"`
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Bio      *string `json:"bio"`
	}
	type editUserResponse struct {
		Message string      `json:"message"`
		User    *graph.User `json:"user,omitempty"`
	}

	data := new(editUserBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editUserResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editUserResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	user, err := cc.App.Store.UpdateUser(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateUserInput{
		Username: data.Username,
		Email:    data.Email,
		Bio:      data.Bio,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editUserResponse{
		Message: "User updated",
		User:    &user,
	})
}
