package handlers

import (
	"errors"
	"strconv"
	"strings"

	"translator-backend/internal/repository"
	"translator-backend/internal/services"
	"translator-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HistoryHandler struct {
	history   services.HistoryService
	languages repository.LanguageRepository
	logger    *logrus.Logger
	debug     bool
}

func NewHistoryHandler(history services.HistoryService, languages repository.LanguageRepository, logger *logrus.Logger, debug bool) *HistoryHandler {
	return &HistoryHandler{
		history:   history,
		languages: languages,
		logger:    logger,
		debug:     debug,
	}
}

// Index godoc
// @Summary Translation history
// @Description Paginated history, newest first. Renders HTML unless the client accepts application/json
// @Tags history
// @Produce json,html
// @Param page query int false "Page number" default(1)
// @Param language query string false "Filter by target language code"
// @Success 200 {object} HistoryResponse "History page"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /history [get]
func (h *HistoryHandler) Index(c *fiber.Ctx) error {
	ctx := c.Context()

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	language := strings.Clone(c.Query("language"))

	translations, total, err := h.history.List(ctx, language, page, services.DefaultHistoryPageSize)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get translation history")
		return serverError(c, h.debug, "Failed to retrieve history", err)
	}

	meta := utils.CreatePaginationMeta(page, services.DefaultHistoryPageSize, total)
	items := newTranslationItems(translations, h.history)

	if wantsJSON(c) {
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
			"translations": items,
			"meta":         meta,
		})
	}

	// Older records may target languages that are no longer active.
	languages, err := h.languages.FindAll(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load languages")
		return err
	}

	return c.Render("history", fiber.Map{
		"Title":        "History",
		"Translations": items,
		"Languages":    languages,
		"Filter":       language,
		"Meta":         meta,
	}, "layout")
}

// Show godoc
// @Summary Get translation
// @Description Get one history record for replay
// @Tags history
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} TranslationItemResponse "Translation"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Router /history/{id} [get]
func (h *HistoryHandler) Show(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	}

	translation, err := h.history.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTranslationNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get translation")
		return serverError(c, h.debug, "Failed to retrieve translation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"translation": newTranslationItem(translation, h.history.AudioURL(translation)),
	})
}

// Destroy godoc
// @Summary Delete translation
// @Description Delete a history record and its audio file
// @Tags history
// @Produce json
// @Param id path int true "Translation ID"
// @Success 200 {object} utils.StandardResponse "Translation deleted"
// @Failure 404 {object} utils.StandardResponse "Translation not found"
// @Failure 500 {object} utils.StandardResponse "Failed to delete translation"
// @Router /history/{id} [delete]
func (h *HistoryHandler) Destroy(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	}

	if err := h.history.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTranslationNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete translation")
		return serverError(c, h.debug, "Failed to delete translation", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation deleted successfully", nil)
}

// Clear godoc
// @Summary Clear history
// @Description Delete every history record and every generated audio file
// @Tags history
// @Produce json
// @Success 200 {object} utils.StandardResponse "History cleared"
// @Failure 500 {object} utils.StandardResponse "Failed to clear history"
// @Router /history/clear [post]
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	ctx := c.Context()

	if _, err := h.history.Clear(ctx); err != nil {
		h.logger.WithError(err).Error("Failed to clear history")
		return serverError(c, h.debug, "Failed to clear history", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "History cleared successfully", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) || c.XHR()
}
