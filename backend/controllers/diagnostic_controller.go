package controllers

import (
	"bytes"
	"errors"
	"log"

	"project/backend/catalog"
	"project/backend/config"
	"project/backend/models"
	"project/backend/report"
	"project/backend/scoring"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	errMalformedBody  = errors.New("Cannot parse JSON")
	errMissingAnswers = errors.New("Invalid input")
)

type DiagnosticController struct {
	Catalog  *catalog.Catalog
	Cfg      *config.Config
	Logger   *log.Logger
	Composer *report.Composer
}

func NewDiagnosticController(cat *catalog.Catalog, cfg *config.Config, logger *log.Logger) *DiagnosticController {
	return &DiagnosticController{
		Catalog:  cat,
		Cfg:      cfg,
		Logger:   logger,
		Composer: report.NewComposer(report.Config{LogoPath: cfg.LogoPath}),
	}
}

type submissionInput struct {
	Answers []string `json:"answers"`
	Lang    string   `json:"lang"`
}

func (dc *DiagnosticController) GetQuestions(c *fiber.Ctx) error {
	lang := catalog.ResolveLanguage(c.Query("lang"))
	return c.JSON(dc.Catalog.Questions(lang))
}

func (dc *DiagnosticController) SubmitAnswers(c *fiber.Ctx) error {
	input, lang, err := dc.parseSubmission(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result, err := dc.score(input.Answers, lang)
	if err != nil {
		return utils.BadRequest(c, "Incomplete answers")
	}

	recommendation, weak := scoring.Recommend(result, lang)

	categoryScores := make(map[string]int, len(result.Categories))
	categoryMaxScores := make(map[string]int, len(result.Categories))
	categoryPercentages := make(map[string]float64, len(result.Categories))
	for name, cr := range result.Categories {
		categoryScores[name] = cr.Score
		categoryMaxScores[name] = cr.MaxScore
		categoryPercentages[name] = scoring.Round2(cr.Percentage)
	}

	return c.JSON(fiber.Map{
		"percentage_score":     scoring.Round2(result.PercentageScore),
		"category_scores":      categoryScores,
		"category_max_scores":  categoryMaxScores,
		"category_percentages": categoryPercentages,
		"recommendations":      recommendation,
		"weak_categories":      weak,
	})
}

func (dc *DiagnosticController) GenerateReport(c *fiber.Ctx) error {
	input, lang, err := dc.parseSubmission(c)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	result, err := dc.score(input.Answers, lang)
	if err != nil {
		return utils.BadRequest(c, "Incomplete answers")
	}

	recommendation, weak := scoring.Recommend(result, lang)
	tools := scoring.SuggestTools(weak, lang)

	var buf bytes.Buffer
	if err := dc.Composer.Compose(&buf, result, recommendation, tools, lang); err != nil {
		dc.Logger.Printf("report rendering failed: %v", err)
		return utils.InternalServerError(c, "Could not generate report")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="diagnostic_report.pdf"`)
	return c.Send(buf.Bytes())
}

// parseSubmission decodes the shared {answers, lang} request body. The lang
// selector may also arrive as a query parameter.
func (dc *DiagnosticController) parseSubmission(c *fiber.Ctx) (*submissionInput, models.Language, error) {
	var input submissionInput
	if err := c.BodyParser(&input); err != nil {
		return nil, models.English, errMalformedBody
	}
	if input.Answers == nil {
		return nil, models.English, errMissingAnswers
	}

	if input.Lang == "" {
		input.Lang = c.Query("lang")
	}
	return &input, catalog.ResolveLanguage(input.Lang), nil
}

// score runs the scorer against the catalog for lang and logs the unmatched
// answer count. Unmatched answers score zero by policy but are worth a trace
// in the log, since they usually mean a client/catalog language mismatch.
func (dc *DiagnosticController) score(answers []string, lang models.Language) (*models.SubmissionResult, error) {
	result, err := scoring.Score(dc.Catalog.Questions(lang), answers)
	if err != nil {
		return nil, err
	}
	if result.Unmatched > 0 {
		dc.Logger.Printf("submission contained %d answer(s) matching no option", result.Unmatched)
	}
	return result, nil
}
