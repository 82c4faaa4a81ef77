package httputil

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditDomain "github.com/idforge/credentials/internal/audit/domain"
)

// Actor request headers. Authentication happens upstream; the gateway forwards
// the authenticated principal in these headers.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorName = "X-Actor-Name"
)

// ActorFromRequest builds the audit actor for a request. Requests without a
// forwarded principal are attributed to the system actor.
func ActorFromRequest(c *gin.Context) auditDomain.Actor {
	actorID, err := uuid.Parse(c.GetHeader(HeaderActorID))
	if err != nil {
		return auditDomain.Actor{Type: auditDomain.ActorTypeSystem, DisplayName: "system"}
	}

	return auditDomain.Actor{
		ID:          actorID,
		Type:        auditDomain.ActorTypeUser,
		DisplayName: c.GetHeader(HeaderActorName),
	}
}
