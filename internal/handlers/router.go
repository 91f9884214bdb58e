package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/question-delivery-service/internal/metrics"
	"github.com/SAP-F-2025/question-delivery-service/internal/services"
	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type HandlerManager struct {
	questionHandler  *QuestionHandler
	responseHandler  *ResponseHandler
	knownUserHandler *KnownUserHandler
	gatherer         prometheus.Gatherer
}

// NewHandlerManager builds every handler. gatherer may be nil, in which case
// /metrics is not mounted.
func NewHandlerManager(serviceManager *services.ServiceManager, gatherer prometheus.Gatherer, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		questionHandler:  NewQuestionHandler(serviceManager.Batches, logger),
		responseHandler:  NewResponseHandler(serviceManager.Responses, logger),
		knownUserHandler: NewKnownUserHandler(serviceManager.KnownUsers, logger),
		gatherer:         gatherer,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)
	if hm.gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(hm.gatherer)))
	}

	v1 := router.Group("/api/v1")
	{
		questions := v1.Group("/questions")
		{
			questions.POST("", hm.questionHandler.CreateQuestion)
			questions.POST("/validate", hm.questionHandler.ValidateQuestion)
			questions.GET("/batches/:category", hm.questionHandler.GetBatch)
		}

		responses := v1.Group("/responses")
		{
			responses.POST("/evaluate", hm.responseHandler.EvaluateResponse)
		}

		knownUsers := v1.Group("/known-users")
		{
			knownUsers.GET("/:email", hm.knownUserHandler.GetKnownUser)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "question-delivery-service",
	})
}
