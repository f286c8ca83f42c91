package routes

import (
	"net/http"

	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"

	"github.com/labstack/echo/v4"
)

// GetCharactersHandler lists a campaign's characters, optionally filtered by
// type or player.
func GetCharactersHandler(c echo.Context) error {
	type getCharactersParams struct {
		CampaignID string `param:"id" validate:"required"`
	}
	type getCharactersResponse struct {
		Message    string            `json:"message"`
		Characters []graph.Character `json:"characters"`
		Total      int64             `json:"total"`
	}

	params := new(getCharactersParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCharactersResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCharactersResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	filter := graph.CharacterFilter{
		CharacterType: c.QueryParam("character_type"),
		PlayerID:      c.QueryParam("player_id"),
	}
	page, err := cc.App.Store.ListCharacters(c.Request().Context(), cc.ActorID(), params.CampaignID, filter, listOptions(c))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getCharactersResponse{
		Message:    "OK",
		Characters: page.Items,
		Total:      page.Total,
	})
}

// GetCharacterHandler returns one character.
func GetCharacterHandler(c echo.Context) error {
	type getCharacterParams struct {
		ID string `param:"id" validate:"required"`
	}
	type getCharacterResponse struct {
		Message   string           `json:"message"`
		Character *graph.Character `json:"character,omitempty"`
	}

	params := new(getCharacterParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCharacterResponse{Message: "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, getCharacterResponse{Message: "Invalid request params"})
	}

	cc := c.(*middleware.AppContext)
	character, err := cc.App.Store.GetCharacter(c.Request().Context(), cc.ActorID(), params.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, getCharacterResponse{
		Message:   "OK",
		Character: &character,
	})
}
