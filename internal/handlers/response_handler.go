package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/question-delivery-service/internal/services"
	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ResponseHandler struct {
	BaseHandler
	responseService services.ResponseService
}

func NewResponseHandler(responseService services.ResponseService, logger utils.Logger) *ResponseHandler {
	return &ResponseHandler{
		BaseHandler:     NewBaseHandler(logger),
		responseService: responseService,
	}
}

// EvaluateResponse scores an answer and returns the delight factor to show
// @Summary Evaluate response
// @Tags responses
// @Accept json
// @Produce json
// @Param response body services.SubmitResponseRequest true "Response"
// @Success 200 {object} services.EvaluationResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /responses/evaluate [post]
func (h *ResponseHandler) EvaluateResponse(c *gin.Context) {
	var req services.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Evaluating response",
		"question_id", req.QuestionID,
		"experience", req.Context.Experience)

	result, err := h.responseService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
