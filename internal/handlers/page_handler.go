package handlers

import (
	"translator-backend/internal/repository"
	"translator-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const recentTranslations = 5

type PageHandler struct {
	languages      repository.LanguageRepository
	history        services.HistoryService
	speech         services.SpeechService
	sourceLanguage string
	logger         *logrus.Logger
}

func NewPageHandler(languages repository.LanguageRepository, history services.HistoryService, speech services.SpeechService, sourceLanguage string, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		languages:      languages,
		history:        history,
		speech:         speech,
		sourceLanguage: sourceLanguage,
		logger:         logger,
	}
}

// Home renders the translator page with the active languages and the latest translations.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	languages, err := h.languages.FindActive(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load languages")
		return err
	}

	recent, err := h.history.Recent(c.Context(), recentTranslations)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load recent translations")
		return err
	}

	return c.Render("home", fiber.Map{
		"Title":          "Translate",
		"Languages":      languages,
		"Recent":         newTranslationItems(recent, h.history),
		"SourceLanguage": h.sourceLanguage,
		"ServerSpeech":   h.speech.RequiresServerGeneration(),
		"Provider":       h.speech.Provider(),
	}, "layout")
}
