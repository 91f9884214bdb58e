package handlers

import (
	"net/http"
	"strings"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/gin-gonic/gin"
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// parseCategoryParam reads a category path parameter. Matching is
// case-insensitive; the service rejects unknown values.
func parseCategoryParam(c *gin.Context, param string) (models.QuestionCategory, bool) {
	value := ParseStringIDParam(c, param)
	if value == "" {
		return "", false
	}
	return models.QuestionCategory(strings.ToUpper(value)), true
}
