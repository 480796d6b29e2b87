// Package scoring turns an ordered answer set into per-category and overall
// results, weakness-targeted recommendations and tool suggestions. Everything
// here is a pure function over the localized catalog; nothing talks to the
// network or holds state between calls.
package scoring

import (
	"errors"
	"math"

	"project/backend/models"
)

// ErrIncompleteAnswers is returned when the answer count does not match the
// question count. The HTTP layer maps it to a 400 response.
var ErrIncompleteAnswers = errors.New("answer count does not match question count")

// Score aggregates answers into a SubmissionResult. Answers align with
// questions by position. A question's contribution to the category and
// overall max score is its best option, added regardless of what was
// answered; an answer that matches no option text contributes zero and is
// counted in Unmatched.
func Score(questions []models.LocalizedQuestion, answers []string) (*models.SubmissionResult, error) {
	if len(answers) != len(questions) {
		return nil, ErrIncompleteAnswers
	}

	result := &models.SubmissionResult{
		Categories: make(map[string]*models.CategoryResult),
	}

	for i, q := range questions {
		cr := result.Categories[q.Category]
		if cr == nil {
			cr = &models.CategoryResult{Category: q.Category}
			result.Categories[q.Category] = cr
			result.CategoryOrder = append(result.CategoryOrder, q.Category)
		}

		best := 0
		for _, o := range q.Options {
			if o.Score > best {
				best = o.Score
			}
		}
		cr.MaxScore += best
		result.MaxScore += best

		matched := false
		for _, o := range q.Options {
			if o.Text != answers[i] {
				continue
			}
			// First match wins; duplicate option texts keep
			// catalog order.
			cr.Score += o.Score
			result.TotalScore += o.Score
			if o.Recommendation != "" {
				cr.Recommendations = append(cr.Recommendations, o.Recommendation)
			}
			matched = true
			break
		}
		if !matched {
			result.Unmatched++
		}
	}

	for _, name := range result.CategoryOrder {
		cr := result.Categories[name]
		cr.Percentage = percentage(cr.Score, cr.MaxScore)
	}
	result.PercentageScore = percentage(result.TotalScore, result.MaxScore)

	return result, nil
}

// percentage returns 100*score/max, with 0 for an empty max so that a
// category made of zero-score options cannot divide by zero.
func percentage(score, max int) float64 {
	if max == 0 {
		return 0
	}
	return float64(score) / float64(max) * 100
}

// Round2 rounds to two decimal places, half away from zero. Every displayed
// percentage goes through this so JSON responses and the PDF agree.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
