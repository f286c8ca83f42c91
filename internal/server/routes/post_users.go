package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler registers a new user account.
func CreateUserHandler(c echo.Context) error {
	type createUserBody struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Bio      string `json:"bio"`
	}
	type createUserResponse struct {
		Message string      `json:"message"`
		User    *graph.User `json:"user,omitempty"`
	}

	data := new(createUserBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createUserResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createUserResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	user, err := cc.App.Store.CreateUser(c.Request().Context(), graph.CreateUserInput{
		Username: data.Username,
		Email:    data.Email,
		Bio:      data.Bio,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createUserResponse{
		Message: "User created",
		User:    &user,
	})
}
