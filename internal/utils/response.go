package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse documents the envelope every JSON endpoint returns.
// Endpoint specific fields (translations, translation, languages) sit next to these.
type StandardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidationResponse is returned with 422 when request rules fail.
type ValidationResponse struct {
	Success bool                `json:"success" example:"false"`
	Message string              `json:"message" example:"Validation failed"`
	Errors  map[string][]string `json:"errors"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// SuccessResponse sends a success envelope merged with fields
func SuccessResponse(c *fiber.Ctx, code int, message string, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for key, value := range fields {
		body[key] = value
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(StandardResponse{
		Success: false,
		Message: message,
	})
}

// ErrorWithDetailResponse sends an error response carrying the underlying error text
func ErrorWithDetailResponse(c *fiber.Ctx, code int, message, detail string) error {
	return c.Status(code).JSON(StandardResponse{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// ValidationErrorResponse sends field errors with 422
func ValidationErrorResponse(c *fiber.Ctx, errors map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ValidationResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	})
}

// CreatePaginationMeta creates pagination metadata
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
