package handlers

import (
	"errors"
	"strconv"
	"strings"

	"translator-backend/internal/repository"
	"translator-backend/internal/services"
	"translator-backend/internal/utils"
	"translator-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TranslationHandler struct {
	translator  services.TranslatorService
	translation services.TranslationService
	history     services.HistoryService
	logger      *logrus.Logger
	debug       bool
}

func NewTranslationHandler(translator services.TranslatorService, translation services.TranslationService, history services.HistoryService, logger *logrus.Logger, debug bool) *TranslationHandler {
	return &TranslationHandler{
		translator:  translator,
		translation: translation,
		history:     history,
		logger:      logger,
		debug:       debug,
	}
}

// Translate godoc
// @Summary Translate text
// @Description Translate English text into up to 10 languages, optionally generating speech, and store each result in the history
// @Tags translations
// @Accept json
// @Produce json
// @Param request body TranslateRequest true "Text, target languages and voice settings"
// @Success 200 {object} TranslateResponse "Translations"
// @Failure 422 {object} utils.ValidationResponse "Validation failed"
// @Failure 500 {object} utils.StandardResponse "Translation failed for all selected languages"
// @Router /translate [post]
func (h *TranslationHandler) Translate(c *fiber.Ctx) error {
	ctx := c.Context()

	languages, err := h.translator.ActiveLanguages(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load languages")
		return h.serverError(c, "Failed to load languages", err)
	}
	active := make(map[string]bool, len(languages))
	for _, language := range languages {
		active[language.Code] = true
	}

	req, err := validation.ValidateTranslateRequest(c.Body(), func(code string) bool { return active[code] })
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationErrorResponse(c, verr.Fields)
		}
		h.logger.WithError(err).Error("Failed to validate translate request")
		return h.serverError(c, "Translation failed", err)
	}

	results, err := h.translator.Translate(ctx, services.TranslateInput{
		Text:          req.Text,
		Languages:     req.Languages,
		VoiceSettings: req.Voice(),
		IPAddress:     strings.Clone(c.IP()),
		UserAgent:     truncate(strings.Clone(c.Get(fiber.HeaderUserAgent)), 255),
	})
	if err != nil {
		h.logger.WithError(err).WithField("languages", req.Languages).Error("Translation failed")
		if errors.Is(err, services.ErrAllLanguagesFailed) {
			return h.serverError(c, "Translation failed for all selected languages", err)
		}
		return h.serverError(c, "Translation failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Translation completed successfully", fiber.Map{
		"translations": results,
	})
}

// Detect godoc
// @Summary Detect language
// @Description Guess the language a text is written in. language is null when the text is too short or ambiguous
// @Tags translations
// @Accept json
// @Produce json
// @Param request body DetectRequest true "Text to inspect"
// @Success 200 {object} DetectResponse "Detected language"
// @Failure 422 {object} utils.ValidationResponse "Validation failed"
// @Router /detect [post]
func (h *TranslationHandler) Detect(c *fiber.Ctx) error {
	req, err := validation.ValidateDetectRequest(c.Body())
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return utils.ValidationErrorResponse(c, verr.Fields)
		}
		return h.serverError(c, "Language detection failed", err)
	}

	var language *string
	if code := h.translation.DetectLanguage(req.Text); code != "" {
		language = &code
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"language": language,
	})
}

// Languages godoc
// @Summary List languages
// @Description Active target languages ordered for display
// @Tags translations
// @Produce json
// @Success 200 {object} LanguagesResponse "Languages"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /api/languages [get]
func (h *TranslationHandler) Languages(c *fiber.Ctx) error {
	ctx := c.Context()

	languages, err := h.translator.ActiveLanguages(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load languages")
		return h.serverError(c, "Failed to load languages", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"languages": languages,
	})
}

// Download godoc
// @Summary Download audio
// @Description Download the MP3 generated for a translation
// @Tags translations
// @Produce audio/mpeg
// @Param id path int true "Translation ID"
// @Success 200 {file} binary "MP3 audio"
// @Failure 404 {object} utils.StandardResponse "Translation or audio not found"
// @Router /download/{id} [get]
func (h *TranslationHandler) Download(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	}

	download, err := h.history.OpenAudio(ctx, uint(id))
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrTranslationNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Translation not found")
	case errors.Is(err, services.ErrNoAudio):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No audio file available for this translation")
	case errors.Is(err, services.ErrAudioNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Audio file not found")
	default:
		h.logger.WithError(err).WithField("id", id).Error("Failed to open audio")
		return h.serverError(c, "Failed to download audio", err)
	}

	c.Attachment(download.Filename)
	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.SendStream(download.Reader)
}

func (h *TranslationHandler) serverError(c *fiber.Ctx, message string, err error) error {
	return serverError(c, h.debug, message, err)
}

// serverError answers 500 and includes err's text only in debug mode.
func serverError(c *fiber.Ctx, debug bool, message string, err error) error {
	if debug && err != nil {
		return utils.ErrorWithDetailResponse(c, fiber.StatusInternalServerError, message, err.Error())
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message)
}
