package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/question-delivery-service/internal/services"
	"github.com/SAP-F-2025/question-delivery-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type KnownUserHandler struct {
	BaseHandler
	knownUserService services.KnownUserService
}

func NewKnownUserHandler(knownUserService services.KnownUserService, logger utils.Logger) *KnownUserHandler {
	return &KnownUserHandler{
		BaseHandler:      NewBaseHandler(logger),
		knownUserService: knownUserService,
	}
}

// GetKnownUser looks a pre-provisioned user up by email
// @Summary Get known user
// @Tags known-users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} models.KnownUserRecord
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /known-users/{email} [get]
func (h *KnownUserHandler) GetKnownUser(c *gin.Context) {
	email := ParseStringIDParam(c, "email")
	if email == "" {
		return
	}

	h.LogRequest(c, "Looking up known user")

	record, err := h.knownUserService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
