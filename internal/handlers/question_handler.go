package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/SAP-F-2025/question-delivery-service/internal/services"
	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	BaseHandler
	batchService services.QuestionBatchService
}

func NewQuestionHandler(batchService services.QuestionBatchService, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:  NewBaseHandler(logger),
		batchService: batchService,
	}
}

// GetBatch returns the validated question batch of a category
// @Summary Get question batch
// @Tags questions
// @Produce json
// @Param category path string true "Question category"
// @Success 200 {object} services.BatchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /questions/batches/{category} [get]
func (h *QuestionHandler) GetBatch(c *gin.Context) {
	category, ok := parseCategoryParam(c, "category")
	if !ok {
		return
	}

	h.LogRequest(c, "Getting question batch", "category", category)

	batch, err := h.batchService.GetBatch(c.Request.Context(), category)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

// ValidateQuestion checks a question without storing it. The verdict is
// always returned with 200; only a malformed body is a 400.
// @Summary Validate question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body models.Question true "Question"
// @Success 200 {object} services.ValidationResult
// @Failure 400 {object} ErrorResponse
// @Router /questions/validate [post]
func (h *QuestionHandler) ValidateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Validating question", "question_id", question.ID)

	c.JSON(http.StatusOK, h.batchService.ValidateQuestion(c.Request.Context(), &question))
}

// CreateQuestion stores a new question
// @Summary Create question
// @Tags questions
// @Accept json
// @Produce json
// @Param question body models.Question true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Creating question", "question_id", question.ID)

	created, err := h.batchService.CreateQuestion(c.Request.Context(), &question)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
