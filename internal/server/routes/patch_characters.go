package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// EditCharacterHandler updates a character. Setting player_id to an empty
// string detaches the playing user.
func EditCharacterHandler(c echo.Context) error {
	type editCharacterBody struct {
		ID            string  `param:"id" validate:"required"`
		Name          *string `json:"name"`
		Description   *string `json:"description"`
		CharacterType *string `json:"character_type"`
		PlayerID      *string `json:"player_id"`
	}
	type editCharacterResponse struct {
		Message   string           `json:"message"`
		Character *graph.Character `json:"character,omitempty"`
	}

	data := new(editCharacterBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, editCharacterResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, editCharacterResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	character, err := cc.App.Store.UpdateCharacter(c.Request().Context(), cc.ActorID(), data.ID, graph.UpdateCharacterInput{
		Name:          data.Name,
		Description:   data.Description,
		CharacterType: data.CharacterType,
		PlayerID:      data.PlayerID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, editCharacterResponse{
		Message:   "Character updated",
		Character: &character,
	})
}
