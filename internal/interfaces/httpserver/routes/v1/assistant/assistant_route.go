package assistant

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	assistantdomain "lingkod-server/services/assistant-api/internal/domain/assistant"
	"lingkod-server/services/assistant-api/internal/domain/conversation"
	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/interfaces/httpserver/dto"
	"lingkod-server/services/assistant-api/internal/interfaces/httpserver/responses"
	"lingkod-server/services/assistant-api/internal/utils/functional"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

var validate = validator.New()

type AssistantRoute struct {
	pipeline      *assistantdomain.Pipeline
	conversations *conversation.Service
	search        *faq.SearchService
}

func NewAssistantRoute(
	pipeline *assistantdomain.Pipeline,
	conversations *conversation.Service,
	search *faq.SearchService,
) *AssistantRoute {
	return &AssistantRoute{
		pipeline:      pipeline,
		conversations: conversations,
		search:        search,
	}
}

func (route *AssistantRoute) RegisterRouter(router gin.IRouter) {
	assistant := router.Group("/assistant")
	assistant.POST("/query", route.processQuery)
	assistant.POST("/sessions/:session_id/end", route.endSession)
	assistant.POST("/faqs/:faq_id/feedback", route.recordFeedback)
}

func (route *AssistantRoute) processQuery(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req dto.QueryRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "query and sessionId are required", "6d2f89a4-0c3b-4e71-b5a8-9e4d7c1f2a53")
		return
	}

	resp, err := route.pipeline.ProcessQuery(ctx, assistantdomain.QueryInput{
		Query:     req.Query,
		SessionID: req.SessionID,
		UserID:    req.UserID,
	})
	if err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, dto.Response{Success: true, Data: toQueryResponse(resp)})
}

func (route *AssistantRoute) endSession(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	sessionID := reqCtx.Param("session_id")
	if err := validate.Var(sessionID, "required,max=128"); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "session_id is required", "b91c3f07-5d48-4a2e-8f16-c4e7a2d90b38")
		return
	}

	if err := route.conversations.EndSession(ctx, sessionID); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, dto.Response{Success: true})
}

func (route *AssistantRoute) recordFeedback(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	faqID, err := strconv.ParseUint(reqCtx.Param("faq_id"), 10, 32)
	if err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "faq_id must be numeric", "e57a1b20-93cd-44f6-ae89-01d2b6c7f3e4")
		return
	}

	var req dto.FeedbackRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "helpful flag is required", "42c8d9e1-6f0a-4b37-9c52-8a1e3d4f5b60")
		return
	}

	if err := route.search.Feedback(ctx, uint(faqID), *req.Helpful); err != nil {
		responses.HandleError(reqCtx, err)
		return
	}

	reqCtx.JSON(http.StatusOK, dto.Response{Success: true})
}

func toQueryResponse(resp *assistantdomain.ResolvedResponse) dto.QueryResponse {
	return dto.QueryResponse{
		Type:        string(resp.Type),
		Answer:      resp.Answer,
		Source:      resp.Source,
		Method:      resp.Method,
		Confidence:  resp.Confidence,
		AIGenerated: resp.AIGenerated,
		Suggestions: functional.Map(resp.Suggestions, func(s assistantdomain.Suggestion) dto.QuerySuggestion {
			return dto.QuerySuggestion{Question: s.Question, FAQID: s.FAQID}
		}),
		Metadata: resp.Metadata,
	}
}
