package models

// CategoryResult accumulates the scores of every question belonging to one
// category. MaxScore is catalog-derived (sum of each question's best option)
// and therefore identical for any two submissions against the same catalog.
type CategoryResult struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	MaxScore int    `json:"max_score"`
	// Percentage is 100*Score/MaxScore, 0 when MaxScore is 0. Stored
	// unrounded; rounding happens at presentation.
	Percentage float64 `json:"percentage"`
	// Recommendations collects the recommendation text of every matched
	// option in this category, in question order.
	Recommendations []string `json:"recommendations,omitempty"`
}

// SubmissionResult is the outcome of scoring one full answer set.
type SubmissionResult struct {
	TotalScore      int     `json:"total_score"`
	MaxScore        int     `json:"max_score"`
	PercentageScore float64 `json:"percentage_score"`
	// Categories maps category name to its result; CategoryOrder records
	// catalog order of first appearance, which all downstream output
	// follows.
	Categories    map[string]*CategoryResult `json:"categories"`
	CategoryOrder []string                   `json:"category_order"`
	// Unmatched counts answers that matched no option text. They score
	// zero by policy; the count is kept so the HTTP layer can log it.
	Unmatched int `json:"-"`
}

// ToolSuggestion pairs a weak category (display name, already localized)
// with its ranked improvement tools.
type ToolSuggestion struct {
	Category string   `json:"category"`
	Tools    []string `json:"tools"`
}
