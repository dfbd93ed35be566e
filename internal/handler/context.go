package handler

import (
	"github.com/labstack/echo/v4"

	"resourcehub/internal/model"
)

// ActorContextKey is where the actor-loading middleware stores the
// authenticated user on the echo context.
const ActorContextKey = "actor"

// ActorFromContext returns the authenticated user, or nil for
// unauthenticated requests.
func ActorFromContext(c echo.Context) *model.User {
	actor, _ := c.Get(ActorContextKey).(*model.User)
	return actor
}
