package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"project/backend/models"

	"golang.org/x/text/language"
)

// Catalog is the immutable bilingual question bank. It is loaded once at
// startup and shared read-only by every request.
type Catalog struct {
	questions []models.Question
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,    // first entry is the fallback
	language.Portuguese,
})

// ResolveLanguage maps an arbitrary client-supplied language value onto one
// of the two supported languages. Regional variants like "pt-BR" resolve to
// Portuguese; anything unrecognized resolves to English.
func ResolveLanguage(s string) models.Language {
	if s == "" {
		return models.English
	}
	_, idx := language.MatchStrings(matcher, s)
	if idx == 1 {
		return models.Portuguese
	}
	return models.English
}

// Load reads and validates the bilingual catalog file. Any error here is a
// startup failure: the service must not run with a partial question bank.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var questions []models.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog %s contains no questions", path)
	}

	for i, q := range questions {
		if !q.Category.Complete() || !q.Text.Complete() {
			return nil, fmt.Errorf("question %d: missing language variant", i+1)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d: no options", i+1)
		}
		for j, o := range q.Options {
			if !o.Text.Complete() {
				return nil, fmt.Errorf("question %d option %d: missing language variant", i+1, j+1)
			}
			if o.Score < 0 {
				return nil, fmt.Errorf("question %d option %d: negative score", i+1, j+1)
			}
		}
	}

	return &Catalog{questions: questions}, nil
}

// Questions returns the ordered question list with all strings resolved for
// lang. The returned slice is freshly built per call, so callers cannot
// mutate the catalog through it.
func (c *Catalog) Questions(lang models.Language) []models.LocalizedQuestion {
	out := make([]models.LocalizedQuestion, 0, len(c.questions))
	for _, q := range c.questions {
		out = append(out, q.Localize(lang))
	}
	return out
}

// Len returns the number of questions in the catalog.
func (c *Catalog) Len() int {
	return len(c.questions)
}
