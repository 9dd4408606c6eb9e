package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"translator-backend/internal/config"
	"translator-backend/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestVoiceRSSSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "secret" || q.Get("hl") != "ja-jp" || q.Get("c") != "MP3" || q.Get("f") != "44khz_16bit_stereo" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if q.Get("r") != "5" {
			t.Errorf("expected rate 5, got %q", q.Get("r"))
		}
		if q.Get("src") == "bad" {
			_, _ = w.Write([]byte("ERROR: The language does not support!"))
			return
		}
		_, _ = w.Write([]byte("ID3mp3"))
	}))
	defer server.Close()

	synth := NewVoiceRSSSynthesizer(config.VoiceRSSConfig{APIKey: "secret", BaseURL: server.URL}, 5*time.Second)
	settings := models.VoiceSettings{Speed: floatPtr(1.5)}

	audio, err := synth.Synthesize(context.Background(), "こんにちは", "ja", settings)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if string(audio) != "ID3mp3" {
		t.Fatalf("unexpected audio %q", audio)
	}

	if _, err := synth.Synthesize(context.Background(), "bad", "ja", settings); err == nil || !strings.Contains(err.Error(), "ERROR") {
		t.Fatalf("expected vendor error body to fail, got %v", err)
	}
}

func TestVoiceRSSMissingKey(t *testing.T) {
	t.Parallel()

	synth := NewVoiceRSSSynthesizer(config.VoiceRSSConfig{BaseURL: "http://127.0.0.1:1"}, time.Second)
	if _, err := synth.Synthesize(context.Background(), "hi", "en", models.VoiceSettings{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestVoiceRSSMapping(t *testing.T) {
	t.Parallel()

	if got := voiceRSSLanguage("zh"); got != "zh-cn" {
		t.Fatalf("expected zh-cn, got %s", got)
	}
	if got := voiceRSSLanguage("sv"); got != "en-us" {
		t.Fatalf("expected en-us fallback, got %s", got)
	}

	rates := map[float64]int{0.5: -5, 1: 0, 1.25: 3, 2: 10, 3.5: 10, -2: -10}
	for speed, want := range rates {
		if got := voiceRSSRate(floatPtr(speed)); got != want {
			t.Fatalf("speed %v: expected rate %d, got %d", speed, want, got)
		}
	}
	if got := voiceRSSRate(nil); got != 0 {
		t.Fatalf("expected default rate 0, got %d", got)
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("xi-api-key") != "xi" {
			t.Errorf("missing api key header")
		}
		if r.URL.Path != "/v1/text-to-speech/pNInz6obpgDQGcFmaJgB" {
			t.Errorf("unexpected voice path %s", r.URL.Path)
		}

		var body elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.ModelID != "eleven_multilingual_v2" || body.VoiceSettings.Stability != 0.5 || body.VoiceSettings.SimilarityBoost != 0.75 {
			t.Errorf("unexpected body %+v", body)
		}
		_, _ = w.Write([]byte("mp3"))
	}))
	defer server.Close()

	synth := NewElevenLabsSynthesizer(config.ElevenLabsConfig{APIKey: "xi", BaseURL: server.URL}, 5*time.Second)
	audio, err := synth.Synthesize(context.Background(), "Hallo", "de", models.VoiceSettings{Gender: models.GenderMale})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if string(audio) != "mp3" {
		t.Fatalf("unexpected audio %q", audio)
	}
}

func TestElevenLabsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid api key"}`))
	}))
	defer server.Close()

	synth := NewElevenLabsSynthesizer(config.ElevenLabsConfig{APIKey: "bad", BaseURL: server.URL}, 5*time.Second)
	if _, err := synth.Synthesize(context.Background(), "Hello", "en", models.VoiceSettings{}); err == nil {
		t.Fatalf("expected error for 401")
	}
}

func TestElevenLabsVoiceSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		language, gender, want string
	}{
		{"en", models.GenderFemale, "EXAVITQu4vr4xnSDxMaL"},
		{"en", models.GenderMale, "TxGEqnHWrfWFTfGW9XjX"},
		{"fr", models.GenderFemale, "Xb7hH8MSUJpSbSDYk0k2"},
		{"fr", models.GenderMale, "pNInz6obpgDQGcFmaJgB"},
		{"fr", "robot", "Xb7hH8MSUJpSbSDYk0k2"},
	}
	for _, tt := range tests {
		if got := elevenLabsVoice(tt.language, tt.gender); got != tt.want {
			t.Fatalf("%s/%s: expected %s, got %s", tt.language, tt.gender, tt.want, got)
		}
	}
}

func TestGenerateSpeechStoresAudio(t *testing.T) {
	storage := newTestStorage(t)
	synth := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	svc := newSpeechService("fake", synth, storage, newTestLogger())

	ref, err := svc.GenerateSpeech(context.Background(), "Hola", "es", models.VoiceSettings{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(ref, "audio/") || !strings.HasSuffix(ref, ".mp3") {
		t.Fatalf("unexpected ref %q", ref)
	}

	reader, err := storage.Open(context.Background(), ref)
	if err != nil {
		t.Fatalf("open stored audio: %v", err)
	}
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	if string(data) != "mp3-bytes" {
		t.Fatalf("unexpected stored audio %q", data)
	}
	if svc.AudioURL(ref) != "/storage/"+ref {
		t.Fatalf("unexpected url %q", svc.AudioURL(ref))
	}
}

func TestGenerateSpeechFailures(t *testing.T) {
	storage := newTestStorage(t)

	failing := newSpeechService("fake", &fakeSynthesizer{err: errVendorDown}, storage, newTestLogger())
	if _, err := failing.GenerateSpeech(context.Background(), "x", "es", models.VoiceSettings{}); !errors.Is(err, errVendorDown) {
		t.Fatalf("expected vendor error, got %v", err)
	}

	empty := newSpeechService("fake", &fakeSynthesizer{}, storage, newTestLogger())
	if _, err := empty.GenerateSpeech(context.Background(), "x", "es", models.VoiceSettings{}); err == nil {
		t.Fatalf("expected error for empty audio")
	}

	objects, err := storage.List(context.Background(), AudioDirectory)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 0 {
		t.Fatalf("failed generation must not leave files, found %d", len(objects))
	}
}

func TestWebProviderIsNoop(t *testing.T) {
	cfg := &config.Config{TTS: config.TTSConfig{Provider: config.TTSProviderWeb}}
	svc := NewSpeechService(cfg, newTestStorage(t), newTestLogger())

	if svc.RequiresServerGeneration() {
		t.Fatalf("web provider must not require server generation")
	}
	ref, err := svc.GenerateSpeech(context.Background(), "Hello", "en", models.VoiceSettings{})
	if err != nil || ref != "" {
		t.Fatalf("expected no-op, got %q (%v)", ref, err)
	}

	unknown := NewSpeechService(&config.Config{TTS: config.TTSConfig{Provider: "polly"}}, newTestStorage(t), newTestLogger())
	if unknown.RequiresServerGeneration() {
		t.Fatalf("unknown provider must fall back to browser speech")
	}
	if unknown.Provider() != "polly" {
		t.Fatalf("unexpected provider %q", unknown.Provider())
	}
}

func TestCleanupOldAudio(t *testing.T) {
	storage := newTestStorage(t)
	svc := newSpeechService("fake", &fakeSynthesizer{}, storage, newTestLogger())
	ctx := context.Background()

	now := time.Now()
	svc.now = func() time.Time { return now }

	files := map[string]time.Duration{
		"audio/old.mp3":    8 * 24 * time.Hour,
		"audio/older.mp3":  30 * 24 * time.Hour,
		"audio/recent.mp3": time.Hour,
	}
	for ref, age := range files {
		if err := storage.Put(ctx, ref, []byte("x"), "audio/mpeg"); err != nil {
			t.Fatalf("put %s: %v", ref, err)
		}
		modified := now.Add(-age)
		if err := os.Chtimes(filepath.Join(storage.Root(), filepath.FromSlash(ref)), modified, modified); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	if deleted := svc.CleanupOldAudio(ctx, 7*24*time.Hour); deleted != 2 {
		t.Fatalf("expected 2 deleted files, got %d", deleted)
	}

	objects, _ := storage.List(ctx, AudioDirectory)
	if len(objects) != 1 || objects[0].Ref != "audio/recent.mp3" {
		t.Fatalf("expected only recent file to remain, got %+v", objects)
	}
}
