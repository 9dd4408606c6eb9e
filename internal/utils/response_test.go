package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCreatePaginationMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, limit int
		total       int64
		want        PaginationMeta
	}{
		{1, 20, 25, PaginationMeta{Page: 1, Limit: 20, Total: 25, TotalPages: 2, HasNext: true}},
		{2, 20, 25, PaginationMeta{Page: 2, Limit: 20, Total: 25, TotalPages: 2, HasPrevious: true}},
		{1, 20, 0, PaginationMeta{Page: 1, Limit: 20, TotalPages: 1}},
		{1, 20, 20, PaginationMeta{Page: 1, Limit: 20, Total: 20, TotalPages: 1}},
	}

	for _, tt := range tests {
		if got := CreatePaginationMeta(tt.page, tt.limit, tt.total); got != tt.want {
			t.Fatalf("CreatePaginationMeta(%d, %d, %d) = %+v, want %+v", tt.page, tt.limit, tt.total, got, tt.want)
		}
	}
}

func TestResponseEnvelopes(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.StatusOK, "done", fiber.Map{"count": 2})
	})
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, map[string][]string{"text": {"The text field is required."}})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var ok map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ok["success"] != true || ok["message"] != "done" || ok["count"] != float64(2) {
		t.Fatalf("unexpected body %v", ok)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/invalid", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	var invalid ValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&invalid); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if invalid.Success || invalid.Message != "Validation failed" || len(invalid.Errors["text"]) != 1 {
		t.Fatalf("unexpected body %+v", invalid)
	}
}
