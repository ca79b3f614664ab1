// Package gemini recognizes named entities with Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/salience"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for entity recognition.
const DefaultModel = "gemini-2.5-flash"

// Ensure Recognizer implements salience.EntityRecognizer at compile time.
var _ salience.EntityRecognizer = (*Recognizer)(nil)

// Recognizer implements salience.EntityRecognizer using Google Gemini.
type Recognizer struct {
	client    *genai.Client
	model     string
	counter   salience.TokenCounter
	maxTokens int
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(r *Recognizer) {
		r.model = model
	}
}

// WithTokenLimit truncates input text to at most maxTokens tokens as
// counted by counter.
func WithTokenLimit(counter salience.TokenCounter, maxTokens int) Option {
	return func(r *Recognizer) {
		r.counter = counter
		r.maxTokens = maxTokens
	}
}

// NewRecognizer creates a new Recognizer.
func NewRecognizer(client *genai.Client, opts ...Option) *Recognizer {
	r := &Recognizer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecognizeEntities returns the named entities of text in order of
// appearance.
func (r *Recognizer) RecognizeEntities(ctx context.Context, text string, lang salience.Language) ([]salience.Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, salience.Errorf(salience.EINVALID, "text required")
	}

	if r.counter != nil && r.maxTokens > 0 {
		var err error
		text, err = TruncateToTokens(ctx, r.counter, text, r.maxTokens)
		if err != nil {
			return nil, err
		}
	}

	result, err := r.client.Models.GenerateContent(ctx, r.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text, lang)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, salience.Errorf(salience.EINTERNAL, "gemini returned nil result")
	}

	return ParseEntities(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The response is constrained to a JSON array of entities.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a named entity recognizer for marketing copy. List every organization (ORG), product or brand name (PRODUCT), person (PERSON) and location (LOCATION) mentioned in the text, in order of first appearance, exactly as written. Use OTHER for any other named entity. Do not translate or normalize names.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text": {Type: genai.TypeString},
					"type": {
						Type: genai.TypeString,
						Enum: []string{
							string(salience.EntityOrganization),
							string(salience.EntityProduct),
							string(salience.EntityPerson),
							string(salience.EntityLocation),
							string(salience.EntityOther),
						},
					},
				},
				Required: []string{"text", "type"},
			},
		},
	}
}

// BuildUserPrompt builds the user prompt containing the text to analyze.
func BuildUserPrompt(text string, lang salience.Language) string {
	var sb strings.Builder
	if lang != "" && lang != salience.LanguageOther {
		fmt.Fprintf(&sb, "Language: %s\n\n", lang)
	}
	fmt.Fprintf(&sb, "<text>\n%s\n</text>", text)
	return sb.String()
}

// ParseEntities parses the JSON entity list returned by the model.
// Unknown entity types are reported as salience.EntityOther and entities
// without text are dropped.
func ParseEntities(raw string) ([]salience.Entity, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var items []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, salience.Errorf(salience.EINVALID, "parse entities: %v", err)
	}

	entities := make([]salience.Entity, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		entities = append(entities, salience.Entity{Text: text, Type: entityType(item.Type)})
	}
	return entities, nil
}

func entityType(s string) salience.EntityType {
	switch t := salience.EntityType(strings.ToUpper(strings.TrimSpace(s))); t {
	case salience.EntityOrganization, salience.EntityProduct, salience.EntityPerson, salience.EntityLocation:
		return t
	default:
		return salience.EntityOther
	}
}
