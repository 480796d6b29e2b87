package scoring

import (
	"fmt"
	"strings"

	"project/backend/models"
)

// WeakThreshold is the percentage below which a category counts as weak.
// Exactly 50% is not weak.
const WeakThreshold = 50.0

var noWeaknessMessage = models.Text{
	En: "No significant weaknesses were identified. Keep maintaining your current security practices.",
	Pt: "Nenhuma fraqueza significativa foi identificada. Continue mantendo suas práticas de segurança atuais.",
}

var weaknessMessage = models.Text{
	En: "Your assessment indicates weaknesses in the following areas: %s. Review the recommendations for each area below.",
	Pt: "Sua avaliação indica fraquezas nas seguintes áreas: %s. Revise as recomendações para cada área abaixo.",
}

// WeakCategories returns the names of categories scoring strictly below the
// weak threshold, in catalog order of first appearance.
func WeakCategories(result *models.SubmissionResult) []string {
	var weak []string
	for _, name := range result.CategoryOrder {
		if result.Categories[name].Percentage < WeakThreshold {
			weak = append(weak, name)
		}
	}
	return weak
}

// Recommend produces the aggregate recommendation sentence for a scored
// submission and the weak category set it is based on. Unknown languages get
// the English template, consistent with the catalog fallback.
func Recommend(result *models.SubmissionResult, lang models.Language) (string, []string) {
	weak := WeakCategories(result)
	if len(weak) == 0 {
		return noWeaknessMessage.Get(lang), nil
	}

	return fmt.Sprintf(weaknessMessage.Get(lang), strings.Join(weak, ", ")), weak
}
