package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// CreateCharacterHandler adds a character to a campaign. player_id optionally
// links the user playing it.
func CreateCharacterHandler(c echo.Context) error {
	type createCharacterBody struct {
		CampaignID    string `param:"id" validate:"required"`
		Name          string `json:"name" validate:"required"`
		Description   string `json:"description"`
		CharacterType string `json:"character_type"`
		PlayerID      string `json:"player_id"`
	}
	type createCharacterResponse struct {
		Message   string           `json:"message"`
		Character *graph.Character `json:"character,omitempty"`
	}

	data := new(createCharacterBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCharacterResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, createCharacterResponse{Message: "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	character, err := cc.App.Store.CreateCharacter(c.Request().Context(), cc.ActorID(), graph.CreateCharacterInput{
		CampaignID:    data.CampaignID,
		Name:          data.Name,
		Description:   data.Description,
		CharacterType: data.CharacterType,
		PlayerID:      data.PlayerID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, createCharacterResponse{
		Message:   "Character created",
		Character: &character,
	})
}
