package salience

import "context"

// EntityType classifies a named entity.
type EntityType string

// Entity types reported by recognizers.
const (
	EntityOrganization EntityType = "ORG"
	EntityProduct      EntityType = "PRODUCT"
	EntityPerson       EntityType = "PERSON"
	EntityLocation     EntityType = "LOCATION"
	EntityOther        EntityType = "OTHER"
)

// Entity is a named entity found in text.
type Entity struct {
	Text string     `json:"text"`
	Type EntityType `json:"type"`
}

// EntityRecognizer finds named entities in text.
type EntityRecognizer interface {
	// RecognizeEntities returns the entities of text in order of appearance.
	RecognizeEntities(ctx context.Context, text string, lang Language) ([]Entity, error)
}

// FilterEntities returns the texts of entities whose type is one of types.
// Order of first appearance is kept and duplicates are removed.
func FilterEntities(entities []Entity, types ...EntityType) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, e := range entities {
		if e.Text == "" || seen[e.Text] {
			continue
		}
		for _, t := range types {
			if e.Type == t {
				seen[e.Text] = true
				out = append(out, e.Text)
				break
			}
		}
	}
	return out
}

// TokenCounter counts model tokens in text. Recognizers backed by a
// language model use it to keep prompts within the model's input limit.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
