package server

import (
	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// User routes. Accounts are provisioned by the auth service using the
	// master API key; users manage their own profile afterwards.
	apiRoutes.POST("/users", routes.CreateUserHandler)
	apiRoutes.GET("/users/me", routes.GetProfileHandler)
	apiRoutes.GET("/users/:id", routes.GetUserHandler)
	apiRoutes.PATCH("/users/:id", routes.EditUserHandler)
	apiRoutes.DELETE("/users/:id", routes.DeleteUserHandler)

	// World routes
	apiRoutes.GET("/worlds", routes.GetWorldsHandler)
	apiRoutes.POST("/worlds", routes.CreateWorldHandler)
	apiRoutes.GET("/worlds/:id", routes.GetWorldHandler)
	apiRoutes.PATCH("/worlds/:id", routes.EditWorldHandler)
	apiRoutes.DELETE("/worlds/:id", routes.DeleteWorldHandler)

	// Campaign routes
	apiRoutes.GET("/campaigns", routes.GetCampaignsHandler)
	apiRoutes.POST("/campaigns", routes.CreateCampaignHandler)
	apiRoutes.GET("/campaigns/:id", routes.GetCampaignHandler)
	apiRoutes.PATCH("/campaigns/:id", routes.EditCampaignHandler)
	apiRoutes.DELETE("/campaigns/:id", routes.DeleteCampaignHandler)
	apiRoutes.GET("/campaigns/:id/statistics", routes.GetCampaignStatisticsHandler)

	// Campaign user management routes
	apiRoutes.GET("/campaigns/:id/users", routes.GetCampaignUsersHandler)
	apiRoutes.POST("/campaigns/:id/users", routes.AddUserToCampaignHandler)
	apiRoutes.DELETE("/campaigns/:id/users/:user_id", routes.RemoveUserFromCampaignHandler)

	// Session routes
	apiRoutes.GET("/campaigns/:id/sessions", routes.GetSessionsHandler)
	apiRoutes.POST("/campaigns/:id/sessions", routes.CreateSessionHandler)
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler)
	apiRoutes.PATCH("/sessions/:id", routes.EditSessionHandler)
	apiRoutes.DELETE("/sessions/:id", routes.DeleteSessionHandler)

	// Character routes
	apiRoutes.GET("/campaigns/:id/characters", routes.GetCharactersHandler)
	apiRoutes.POST("/campaigns/:id/characters", routes.CreateCharacterHandler)
	apiRoutes.GET("/characters/:id", routes.GetCharacterHandler)
	apiRoutes.PATCH("/characters/:id", routes.EditCharacterHandler)
	apiRoutes.DELETE("/characters/:id", routes.DeleteCharacterHandler)

	// Location routes
	apiRoutes.GET("/campaigns/:id/locations", routes.GetLocationsHandler)
	apiRoutes.POST("/campaigns/:id/locations", routes.CreateLocationHandler)
	apiRoutes.GET("/locations/:id", routes.GetLocationHandler)
	apiRoutes.PATCH("/locations/:id", routes.EditLocationHandler)
	apiRoutes.DELETE("/locations/:id", routes.DeleteLocationHandler)

	// Item routes
	apiRoutes.GET("/campaigns/:id/items", routes.GetItemsHandler)
	apiRoutes.POST("/campaigns/:id/items", routes.CreateItemHandler)
	apiRoutes.GET("/items/:id", routes.GetItemHandler)
	apiRoutes.PATCH("/items/:id", routes.EditItemHandler)
	apiRoutes.DELETE("/items/:id", routes.DeleteItemHandler)

	// Event routes
	apiRoutes.GET("/campaigns/:id/events", routes.GetEventsHandler)
	apiRoutes.POST("/campaigns/:id/events", routes.CreateEventHandler)
	apiRoutes.GET("/events/:id", routes.GetEventHandler)
	apiRoutes.PATCH("/events/:id", routes.EditEventHandler)
	apiRoutes.DELETE("/events/:id", routes.DeleteEventHandler)

	// Relationship routes
	apiRoutes.GET("/campaigns/:id/relationships", routes.GetRelationshipsHandler)
	apiRoutes.POST("/campaigns/:id/relationships", routes.CreateRelationshipHandler)
	apiRoutes.GET("/relationships/:id", routes.GetRelationshipHandler)
	apiRoutes.PATCH("/relationships/:id", routes.EditRelationshipHandler)
	apiRoutes.DELETE("/relationships/:id", routes.DeleteRelationshipHandler)
}
