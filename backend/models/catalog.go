package models

// Language selects which variant of a bilingual field is used.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Text holds both language variants of a catalog string. Keeping them as
// explicit fields (instead of a map keyed by language code) guarantees at
// compile time that every field has both variants.
type Text struct {
	En string `json:"en"`
	Pt string `json:"pt"`
}

// Get returns the variant for lang, falling back to English for any
// unknown language value.
func (t Text) Get(lang Language) string {
	if lang == Portuguese {
		return t.Pt
	}
	return t.En
}

// Complete reports whether both variants are present.
func (t Text) Complete() bool {
	return t.En != "" && t.Pt != ""
}

// Option is one selectable answer to a question as stored in the catalog.
type Option struct {
	Text           Text `json:"text"`
	Score          int  `json:"score"`
	Recommendation Text `json:"recommendation"`
}

// Question is a catalog entry. Question identity is positional: the n-th
// answer of a submission belongs to the n-th question.
type Question struct {
	Category Text     `json:"category"`
	Text     Text     `json:"text"`
	Options  []Option `json:"options"`
}

// LocalizedOption is an Option with all strings resolved for one language.
type LocalizedOption struct {
	Text           string `json:"text"`
	Score          int    `json:"score"`
	Recommendation string `json:"recommendation"`
}

// LocalizedQuestion is a Question with all strings resolved for one
// language. This is what the scorer and the HTTP layer work with.
type LocalizedQuestion struct {
	Category string            `json:"category"`
	Text     string            `json:"text"`
	Options  []LocalizedOption `json:"options"`
}

// Localize resolves every string of q for lang.
func (q Question) Localize(lang Language) LocalizedQuestion {
	out := LocalizedQuestion{
		Category: q.Category.Get(lang),
		Text:     q.Text.Get(lang),
		Options:  make([]LocalizedOption, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		out.Options = append(out.Options, LocalizedOption{
			Text:           o.Text.Get(lang),
			Score:          o.Score,
			Recommendation: o.Recommendation.Get(lang),
		})
	}
	return out
}
