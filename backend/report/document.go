// Package report assembles a scored submission into a paginated document and
// renders it as a PDF. Assembly (BuildDocument) is pure and fully testable;
// drawing happens only in Render.
package report

import (
	"fmt"
	"time"

	"project/backend/models"
	"project/backend/scoring"
)

// PageKind identifies the role of a page in the report.
type PageKind int

const (
	PageCover PageKind = iota
	PageBreakdown
	PageRecommendations
	PageTools
)

// Group is a titled bullet list, used for per-category recommendations and
// tool suggestions.
type Group struct {
	Heading string
	Bullets []string
}

// Page is one page of the report. Lines and Groups are both optional; the
// cover uses Lines only, recommendation and tool pages use Groups.
type Page struct {
	Kind   PageKind
	Title  string
	Lines  []string
	Groups []Group
}

// Document is the fully assembled report, ready to render.
type Document struct {
	Lang  models.Language
	Pages []Page
}

var (
	titleLabel = models.Text{
		En: "Cybersecurity Self-Assessment Report",
		Pt: "Relatório de Autoavaliação de Cibersegurança",
	}
	dateLabel = models.Text{
		En: "Report date",
		Pt: "Data do relatório",
	}
	overallLabel = models.Text{
		En: "Overall score",
		Pt: "Pontuação geral",
	}
	breakdownTitle = models.Text{
		En: "Category Breakdown",
		Pt: "Resultados por Categoria",
	}
	recommendationsTitle = models.Text{
		En: "Recommendations",
		Pt: "Recomendações",
	}
	toolsTitle = models.Text{
		En: "Tools for Improvement",
		Pt: "Ferramentas para Melhoria",
	}
)

// BuildDocument assembles the page sequence for a scored submission: cover,
// category breakdown, per-category recommendations and, only when at least
// one weak category has tools, a tools page. Inputs are not mutated.
func BuildDocument(result *models.SubmissionResult, recommendation string, tools []models.ToolSuggestion, lang models.Language, date time.Time) Document {
	doc := Document{Lang: lang}

	doc.Pages = append(doc.Pages, Page{
		Kind:  PageCover,
		Title: titleLabel.Get(lang),
		Lines: []string{
			fmt.Sprintf("%s: %s", dateLabel.Get(lang), date.Format("2006-01-02")),
			fmt.Sprintf("%s: %.2f%%", overallLabel.Get(lang), scoring.Round2(result.PercentageScore)),
		},
	})

	breakdown := Page{Kind: PageBreakdown, Title: breakdownTitle.Get(lang)}
	for _, name := range result.CategoryOrder {
		cr := result.Categories[name]
		breakdown.Lines = append(breakdown.Lines, fmt.Sprintf("%s: %d/%d (%.2f%%)",
			cr.Category, cr.Score, cr.MaxScore, scoring.Round2(cr.Percentage)))
	}
	doc.Pages = append(doc.Pages, breakdown)

	recs := Page{Kind: PageRecommendations, Title: recommendationsTitle.Get(lang)}
	for _, name := range result.CategoryOrder {
		cr := result.Categories[name]
		bullets := cr.Recommendations
		if len(bullets) == 0 {
			// No matched option carried text for this category;
			// fall back to the aggregate sentence.
			bullets = []string{recommendation}
		}
		recs.Groups = append(recs.Groups, Group{Heading: cr.Category, Bullets: bullets})
	}
	doc.Pages = append(doc.Pages, recs)

	if len(tools) > 0 {
		page := Page{Kind: PageTools, Title: toolsTitle.Get(lang)}
		for _, ts := range tools {
			page.Groups = append(page.Groups, Group{Heading: ts.Category, Bullets: ts.Tools})
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc
}
