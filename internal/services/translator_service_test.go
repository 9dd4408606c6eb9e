package services

import (
	"context"
	"errors"
	"testing"

	"translator-backend/internal/models"
	"translator-backend/internal/repository"
)

type failingCreateRepository struct {
	repository.TranslationRepository
	failFor string
}

func (r *failingCreateRepository) Create(ctx context.Context, translation *models.Translation) error {
	if translation.TargetLanguage == r.failFor {
		return errors.New("disk full")
	}
	return r.TranslationRepository.Create(ctx, translation)
}

type translatorFixture struct {
	svc         TranslatorService
	repo        repository.TranslationRepository
	translation *fakeTranslationService
	synth       *fakeSynthesizer
	storage     *LocalStorage
}

func newTranslatorFixture(t *testing.T, withSpeech bool, wrap func(repository.TranslationRepository) repository.TranslationRepository) *translatorFixture {
	t.Helper()

	db := newTestDatabase(t)
	repo := repository.NewTranslationRepository(db)
	if wrap != nil {
		repo = wrap(repo)
	}
	logger := newTestLogger()
	storage := newTestStorage(t)

	var synthesizer SpeechSynthesizer
	synth := &fakeSynthesizer{audio: []byte("mp3")}
	if withSpeech {
		synthesizer = synth
	}

	translation := &fakeTranslationService{fail: map[string]error{}}
	speech := newSpeechService("fake", synthesizer, storage, logger)

	return &translatorFixture{
		svc:         NewTranslatorService(repo, repository.NewLanguageRepository(db), translation, speech, "en", 3, logger),
		repo:        repo,
		translation: translation,
		synth:       synth,
		storage:     storage,
	}
}

func TestTranslateAllLanguagesSucceed(t *testing.T) {
	f := newTranslatorFixture(t, false, nil)
	ctx := context.Background()

	results, err := f.svc.Translate(ctx, TranslateInput{
		Text:      "Good morning",
		Languages: []string{"es", "fr", "ja", "de"},
		IPAddress: "10.0.0.1",
		UserAgent: "go-test",
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	want := []string{"es", "fr", "ja", "de"}
	for i, result := range results {
		if result.Language.Code != want[i] {
			t.Fatalf("result %d: expected %s, got %s", i, want[i], result.Language.Code)
		}
		if result.TranslatedText != "["+want[i]+"] Good morning" {
			t.Fatalf("unexpected translation %q", result.TranslatedText)
		}
		if !result.UseBrowserTTS || result.AudioURL != nil {
			t.Fatalf("expected browser speech without audio, got %+v", result)
		}
		if result.ID == 0 {
			t.Fatalf("expected persisted id")
		}
	}
	if results[2].Language.Name != "Japanese" || results[2].Language.NativeName != "日本語" {
		t.Fatalf("expected catalog names, got %+v", results[2].Language)
	}

	_, total, err := f.repo.FindAll(ctx, 1, 20, "")
	if err != nil || total != 4 {
		t.Fatalf("expected 4 stored records, got %d (%v)", total, err)
	}
}

func TestTranslateSourceLanguageIsIdentity(t *testing.T) {
	f := newTranslatorFixture(t, false, nil)

	results, err := f.svc.Translate(context.Background(), TranslateInput{Text: "Hello there", Languages: []string{"en"}})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if results[0].TranslatedText != "Hello there" {
		t.Fatalf("expected identity translation, got %q", results[0].TranslatedText)
	}
	if f.translation.callCount() != 0 {
		t.Fatalf("source language must not call the vendor")
	}
}

func TestTranslatePartialFailure(t *testing.T) {
	f := newTranslatorFixture(t, false, nil)
	f.translation.fail["fr"] = errVendorDown
	ctx := context.Background()

	input := TranslateInput{Text: "Hello", Languages: []string{"es", "fr", "de"}}

	outcomes := f.svc.TranslateEach(ctx, input)
	if len(outcomes) != 3 || outcomes[1].Code != "fr" || !errors.Is(outcomes[1].Err, errVendorDown) {
		t.Fatalf("expected explicit failure for fr, got %+v", outcomes)
	}

	results, err := f.svc.Translate(ctx, input)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(results) != 2 || results[0].Language.Code != "es" || results[1].Language.Code != "de" {
		t.Fatalf("expected es and de only, got %+v", results)
	}
}

func TestTranslateAllFail(t *testing.T) {
	f := newTranslatorFixture(t, false, nil)
	f.translation.fail["es"] = errVendorDown
	f.translation.fail["fr"] = errVendorDown

	_, err := f.svc.Translate(context.Background(), TranslateInput{Text: "Hello", Languages: []string{"es", "fr"}})
	if !errors.Is(err, ErrAllLanguagesFailed) {
		t.Fatalf("expected ErrAllLanguagesFailed, got %v", err)
	}

	_, total, _ := f.repo.FindAll(context.Background(), 1, 20, "")
	if total != 0 {
		t.Fatalf("expected no stored records, got %d", total)
	}
}

func TestTranslateWithServerSpeech(t *testing.T) {
	f := newTranslatorFixture(t, true, nil)

	results, err := f.svc.Translate(context.Background(), TranslateInput{
		Text:          "Hello",
		Languages:     []string{"es"},
		VoiceSettings: models.VoiceSettings{Gender: models.GenderMale},
	})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if results[0].AudioURL == nil || results[0].UseBrowserTTS {
		t.Fatalf("expected server audio, got %+v", results[0])
	}
	if results[0].VoiceSettings.Gender != models.GenderMale {
		t.Fatalf("voice settings not echoed")
	}

	record, err := f.repo.FindByID(context.Background(), results[0].ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if "/storage/"+record.AudioRef() != *results[0].AudioURL {
		t.Fatalf("audio url %q does not match ref %q", *results[0].AudioURL, record.AudioRef())
	}
}

func TestTranslateSpeechFailureFallsBackToBrowser(t *testing.T) {
	f := newTranslatorFixture(t, true, nil)
	f.synth.err = errVendorDown

	results, err := f.svc.Translate(context.Background(), TranslateInput{Text: "Hello", Languages: []string{"it"}})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if results[0].AudioURL != nil || !results[0].UseBrowserTTS {
		t.Fatalf("expected browser fallback, got %+v", results[0])
	}
}

func TestTranslatePersistenceFailureRemovesAudio(t *testing.T) {
	f := newTranslatorFixture(t, true, func(repo repository.TranslationRepository) repository.TranslationRepository {
		return &failingCreateRepository{TranslationRepository: repo, failFor: "de"}
	})
	ctx := context.Background()

	results, err := f.svc.Translate(ctx, TranslateInput{Text: "Hello", Languages: []string{"es", "de"}})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(results) != 1 || results[0].Language.Code != "es" {
		t.Fatalf("expected only es to succeed, got %+v", results)
	}

	objects, err := f.storage.List(ctx, AudioDirectory)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected only the saved translation's audio to remain, got %d files", len(objects))
	}
}

func TestTranslateUnknownCatalogCodeFallsBackToCode(t *testing.T) {
	f := newTranslatorFixture(t, false, nil)

	results, err := f.svc.Translate(context.Background(), TranslateInput{Text: "Hello", Languages: []string{"sv"}})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if results[0].Language.Name != "sv" || results[0].Language.NativeName != "sv" {
		t.Fatalf("expected code fallback, got %+v", results[0].Language)
	}
}
