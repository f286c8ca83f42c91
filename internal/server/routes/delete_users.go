package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler removes the caller's own account. Blocked while the user
// still owns campaigns.
func DeleteUserHandler(c echo.Context) error {
	type deleteUserParams struct {
		ID string `param:"id" validate:"required"`
	}
	type deleteUserResponse struct {
		Message string `json:"message"`
	}

	params := new(deleteUserParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteUserResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, deleteUserResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	if err := cc.App.Store.DeleteUser(c.Request().Context(), cc.ActorID(), params.ID); err != nil {
		return errorJSON(c, err)
	}

	publishPurge(c, params.ID, graph.KindUser)

	return c.JSON(http.StatusOK, deleteUserResponse{
		Message: "User deleted",
	})
}
