package handlers

import (
	"log"
	"net/http"
	"strings"

	"prevencar_vistorias/internal/domain/entities"
	"prevencar_vistorias/internal/usecase"
	"prevencar_vistorias/pkg"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the resolved user id forwarded by the upstream identity
// service. This service never sees credentials.
const ActorHeader = "X-User-Id"

const actorContextKey = "actor"

var errActorRequired = pkg.NewDomainErrorSimple("FORBIDDEN", "Unknown or missing acting user", http.StatusForbidden)

// ActorResolver resolves the acting user once per request and stores it in
// the gin context. Requests without the header pass through: read-only routes
// do not need an actor, the mutating handlers reject when one is absent.
func ActorResolver(users usecase.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(ActorHeader))
		if id == "" {
			c.Next()
			return
		}

		actor, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			log.Printf("[actor][middleware] failed resolving user id=%s err=%v", id, err)
			c.Next()
			return
		}
		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func currentActor(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.User{}, false
	}
	actor, ok := v.(entities.User)
	return actor, ok
}

// requireActor aborts with 403 when no resolved actor is present.
func requireActor(c *gin.Context) (entities.User, bool) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(errActorRequired.HTTPStatus, errActorRequired.ToHTTPError())
	}
	return actor, ok
}
