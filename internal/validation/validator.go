package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"translator-backend/internal/models"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed translate_request.schema.json
var translateRequestSchemaJSON string

//go:embed detect_request.schema.json
var detectRequestSchemaJSON string

const (
	translateRequestSchema = "translate_request.schema.json"
	detectRequestSchema    = "detect_request.schema.json"
)

// TranslateRequest is a validated POST /translate body.
type TranslateRequest struct {
	Text          string                `json:"text"`
	Languages     []string              `json:"languages"`
	VoiceSettings *models.VoiceSettings `json:"voice_settings,omitempty"`
}

// Voice returns the requested voice settings or the zero value.
func (r *TranslateRequest) Voice() models.VoiceSettings {
	if r.VoiceSettings == nil {
		return models.VoiceSettings{}
	}
	return *r.VoiceSettings
}

type DetectRequest struct {
	Text string `json:"text"`
}

// Error holds failed rules keyed by dotted field path, e.g. "languages.3".
type Error struct {
	Fields map[string][]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *Error) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	for _, existing := range e.Fields[field] {
		if existing == message {
			return
		}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *Error) hasPrefix(field string) bool {
	for key := range e.Fields {
		if key == field || strings.HasPrefix(key, field+".") {
			return true
		}
	}
	return false
}

func (e *Error) empty() bool {
	return len(e.Fields) == 0
}

// IsActiveLanguage reports whether code is an active catalog language.
type IsActiveLanguage func(code string) bool

// ValidateTranslateRequest checks a raw request body and returns the decoded
// request. Rule failures are reported as *Error.
func ValidateTranslateRequest(body []byte, isActive IsActiveLanguage) (*TranslateRequest, error) {
	object, verr := decodeObject(body)
	if verr != nil {
		return nil, verr
	}

	verr = &Error{}
	requireText(object, "text", verr)
	switch languages := object["languages"].(type) {
	case nil:
		verr.add("languages", "The languages field is required.")
	case []any:
		if len(languages) == 0 {
			verr.add("languages", "The languages field is required.")
		}
	}

	if err := validateSchema(translateRequestSchema, object, verr); err != nil {
		return nil, err
	}

	if !verr.hasPrefix("languages") && isActive != nil {
		for i, code := range object["languages"].([]any) {
			if !isActive(code.(string)) {
				field := "languages." + strconv.Itoa(i)
				verr.add(field, fmt.Sprintf("The selected %s is invalid.", field))
			}
		}
	}

	if !verr.empty() {
		return nil, verr
	}

	var request TranslateRequest
	if err := remarshal(object, &request); err != nil {
		return nil, err
	}
	request.Text = strings.TrimSpace(request.Text)
	return &request, nil
}

func ValidateDetectRequest(body []byte) (*DetectRequest, error) {
	object, verr := decodeObject(body)
	if verr != nil {
		return nil, verr
	}

	verr = &Error{}
	requireText(object, "text", verr)
	if err := validateSchema(detectRequestSchema, object, verr); err != nil {
		return nil, err
	}
	if !verr.empty() {
		return nil, verr
	}

	var request DetectRequest
	if err := remarshal(object, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// requireText treats absent, null and whitespace-only strings as missing.
func requireText(object map[string]any, field string, verr *Error) {
	value, present := object[field]
	if !present || value == nil {
		verr.add(field, fmt.Sprintf("The %s field is required.", field))
		return
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		verr.add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

func decodeObject(raw []byte) (map[string]any, *Error) {
	invalid := &Error{}
	invalid.add("body", "The request body must be a JSON object.")

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, invalid
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, invalid
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, invalid
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, invalid
	}
	return object, nil
}

func validateSchema(name string, object map[string]any, verr *Error) error {
	schema, err := loadSchema(name)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}

	err = schema.Validate(object)
	if err == nil {
		return nil
	}

	var schemaErr *jsonschema.ValidationError
	if !errors.As(err, &schemaErr) {
		return fmt.Errorf("schema validation: %w", err)
	}

	// Fields already reported as missing keep only the required message.
	missing := make(map[string]bool, len(verr.Fields))
	for field := range verr.Fields {
		missing[field] = true
	}

	for _, leaf := range leafErrors(schemaErr) {
		field := fieldPath(leaf.InstanceLocation)
		keyword := keywordOf(leaf.KeywordLocation)
		if field == "" || keyword == "required" || missing[field] {
			continue
		}
		verr.add(field, message(field, keyword, leaf.Message))
	}
	return nil
}

func leafErrors(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, leafErrors(cause)...)
	}
	return leaves
}

// fieldPath converts a JSON pointer such as "/languages/3" to "languages.3".
func fieldPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	parts := strings.Split(pointer, "/")
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[i] = strings.ReplaceAll(part, "~0", "~")
	}
	return strings.Join(parts, ".")
}

func keywordOf(location string) string {
	if idx := strings.LastIndex(location, "/"); idx != -1 {
		return location[idx+1:]
	}
	return location
}

func remarshal(value any, target any) error {
	normalized, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("normalize request: %w", err)
	}
	if err := json.Unmarshal(normalized, target); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

var (
	schemaMu sync.Mutex
	schemas  = map[string]*jsonschema.Schema{}
	sources  = map[string]string{
		translateRequestSchema: translateRequestSchemaJSON,
		detectRequestSchema:    detectRequestSchemaJSON,
	}
)

func loadSchema(name string) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if schema, ok := schemas[name]; ok {
		return schema, nil
	}

	source, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(name, strings.NewReader(source)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	schemas[name] = schema
	return schema, nil
}
