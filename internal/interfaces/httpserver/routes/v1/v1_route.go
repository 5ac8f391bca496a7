package v1

import (
	"github.com/gin-gonic/gin"

	"lingkod-server/services/assistant-api/internal/interfaces/httpserver/routes/v1/assistant"
)

type V1Route struct {
	assistant *assistant.AssistantRoute
}

func NewV1Route(assistantRoute *assistant.AssistantRoute) *V1Route {
	return &V1Route{assistant: assistantRoute}
}

func (route *V1Route) RegisterRouter(router gin.IRouter) {
	v1 := router.Group("/v1")
	route.assistant.RegisterRouter(v1)
}
