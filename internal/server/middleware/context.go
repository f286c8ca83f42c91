package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/loreforge/loreforge/backend/pkg/store"
)

// AppUser is the authenticated identity attached by AuthMiddleware. UserID is
// the public id of the user node in the campaign graph.
type AppUser struct {
	UserID   string
	Username string
}

type App struct {
	DBConn       *pgxpool.Pool
	Queue        *amqp091.Channel
	Key          *keyfunc.Keyfunc
	Store        store.Storage
	MasterAPIKey string
	MasterUserID string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// ActorID returns the public id of the authenticated user, or the empty
// string when the request carries no identity.
func (c *AppContext) ActorID() string {
	if c.User == nil {
		return ""
	}
	return c.User.UserID
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	queue *amqp091.Channel,
	key *keyfunc.Keyfunc,
	graphStore store.Storage,
	masterAPIKey string,
	masterUserID string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				DBConn:       db,
				Queue:        queue,
				Key:          key,
				Store:        graphStore,
				MasterAPIKey: masterAPIKey,
				MasterUserID: masterUserID,
			}
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
