package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Expected string `json:"expected"`
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			details := make([]ValidationErrorDetail, 0, len(errs))
			for _, e := range errs {
				detail := ValidationErrorDetail{
					Field:    e.Field(),
					Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
					Expected: e.Tag(),
				}
				if e.Tag() == "required" {
					detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
					detail.Expected = "not null"
				}
				details = append(details, detail)
			}
			c.JSON(http.StatusBadRequest, Response{
				Status:  http.StatusBadRequest,
				Message: "Validation failed",
				Data:    details,
			})
			return false
		}

		c.JSON(http.StatusBadRequest, NewErrorResponse(http.StatusBadRequest, "Invalid request body"))
		return false
	}
	return true
}
