package validation

import (
	"regexp"
	"strings"
)

var indexSegment = regexp.MustCompile(`\.\d+`)

var ruleMessages = map[string]string{
	"text.type":      "The text field must be a string.",
	"text.minLength": "The text field is required.",
	"text.maxLength": "The text field must not be greater than 5000 characters.",

	"languages.type":        "The languages field must be an array.",
	"languages.minItems":    "The languages field must have at least 1 items.",
	"languages.maxItems":    "The languages field must not have more than 10 items.",
	"languages.*.type":      "The :field field must be a string.",
	"languages.*.minLength": "The :field field is required.",
	"languages.*.maxLength": "The :field field must not be greater than 10 characters.",

	"voice_settings.type":          "The voice settings field must be an object.",
	"voice_settings.gender.enum":   "The selected voice settings.gender is invalid.",
	"voice_settings.speed.type":    "The voice settings.speed field must be a number.",
	"voice_settings.speed.minimum": "The voice settings.speed field must be between 0.5 and 2.",
	"voice_settings.speed.maximum": "The voice settings.speed field must be between 0.5 and 2.",
	"voice_settings.pitch.type":    "The voice settings.pitch field must be a number.",
	"voice_settings.pitch.minimum": "The voice settings.pitch field must be between 0 and 2.",
	"voice_settings.pitch.maximum": "The voice settings.pitch field must be between 0 and 2.",
}

// message renders a user facing message for a failed schema keyword, falling
// back to the validator's own text for rules without one.
func message(field, keyword, fallback string) string {
	pattern := indexSegment.ReplaceAllString(field, ".*")
	if text, ok := ruleMessages[pattern+"."+keyword]; ok {
		return strings.ReplaceAll(text, ":field", field)
	}
	return "The " + field + " field is invalid: " + fallback + "."
}
