package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"project/backend/catalog"
	"project/backend/config"
	"project/backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
  {
    "category": {"en": "Access Control", "pt": "Controle de Acesso"},
    "text": {"en": "How is access managed?", "pt": "Como o acesso é gerenciado?"},
    "options": [
      {"text": {"en": "No control", "pt": "Sem controle"}, "score": 0,
       "recommendation": {"en": "Implement access control.", "pt": "Implemente controle de acesso."}},
      {"text": {"en": "Passwords only", "pt": "Apenas senhas"}, "score": 5,
       "recommendation": {"en": "Add multi-factor authentication.", "pt": "Adicione autenticação multifator."}},
      {"text": {"en": "MFA everywhere", "pt": "MFA em todos os sistemas"}, "score": 10,
       "recommendation": {"en": "Keep current practices.", "pt": "Mantenha as práticas atuais."}}
    ]
  },
  {
    "category": {"en": "Network Security", "pt": "Segurança de Rede"},
    "text": {"en": "Do you use a firewall?", "pt": "Você usa um firewall?"},
    "options": [
      {"text": {"en": "No", "pt": "Não"}, "score": 0,
       "recommendation": {"en": "Install a firewall.", "pt": "Instale um firewall."}},
      {"text": {"en": "Yes", "pt": "Sim"}, "score": 10,
       "recommendation": {"en": "Review firewall rules regularly.", "pt": "Revise as regras do firewall regularmente."}}
    ]
  }
]`

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	cfg := &config.Config{ServerPort: "0", CatalogPath: path}
	logger := log.New(io.Discard, "", 0)

	app := fiber.New()
	routes.SetupRoutes(app, cat, cfg, logger)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestGetQuestions(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/api/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&questions))
	require.Len(t, questions, 2)
	assert.Equal(t, "Access Control", questions[0]["category"])
	assert.Equal(t, "How is access managed?", questions[0]["text"])
}

func TestGetQuestionsPortuguese(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("GET", "/api/questions?lang=pt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&questions))
	require.Len(t, questions, 2)
	assert.Equal(t, "Controle de Acesso", questions[0]["category"])
	assert.Equal(t, "Você usa um firewall?", questions[1]["text"])
}

func TestSubmitAnswers(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"answers": []string{"Passwords only", "Yes"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	assert.Equal(t, 75.0, result["percentage_score"])

	scores := result["category_scores"].(map[string]interface{})
	assert.Equal(t, 5.0, scores["Access Control"])
	assert.Equal(t, 10.0, scores["Network Security"])

	maxScores := result["category_max_scores"].(map[string]interface{})
	assert.Equal(t, 10.0, maxScores["Access Control"])
	assert.Equal(t, 10.0, maxScores["Network Security"])

	// Access Control sits at exactly 50%: no weaknesses.
	assert.Nil(t, result["weak_categories"])
	assert.Contains(t, result["recommendations"], "No significant weaknesses")
}

func TestSubmitAnswersWithWeakCategories(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"answers": []string{"No control", "No"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	weak := result["weak_categories"].([]interface{})
	require.Len(t, weak, 2)
	assert.Equal(t, "Access Control", weak[0])
	assert.Equal(t, "Network Security", weak[1])
	assert.Contains(t, result["recommendations"], "Access Control, Network Security")
}

func TestSubmitAnswersPortuguese(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"answers": []string{"Sem controle", "Sim"},
		"lang":    "pt",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	scores := result["category_scores"].(map[string]interface{})
	assert.Equal(t, 0.0, scores["Controle de Acesso"])
	assert.Equal(t, 10.0, scores["Segurança de Rede"])

	weak := result["weak_categories"].([]interface{})
	require.Len(t, weak, 1)
	assert.Equal(t, "Controle de Acesso", weak[0])
}

func TestSubmitAnswersIncomplete(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"answers": []string{"Passwords only"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Incomplete answers", decodeBody(t, resp)["error"])
}

func TestSubmitAnswersMissingField(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"lang": "en",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid input", decodeBody(t, resp)["error"])
}

func TestSubmitAnswersMalformedBody(t *testing.T) {
	app := setupApp(t)

	req := httptest.NewRequest("POST", "/api/submit", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAnswersUnmatchedAnswerScoresZero(t *testing.T) {
	app := setupApp(t)

	// English answer against the Portuguese catalog view: silently zero.
	resp := postJSON(t, app, "/api/submit", map[string]interface{}{
		"answers": []string{"Passwords only", "Sim"},
		"lang":    "pt",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)

	scores := result["category_scores"].(map[string]interface{})
	assert.Equal(t, 0.0, scores["Controle de Acesso"])
}

func TestGenerateReport(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/generate-pdf", map[string]interface{}{
		"answers": []string{"No control", "Yes"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "diagnostic_report.pdf")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestGenerateReportIncomplete(t *testing.T) {
	app := setupApp(t)

	resp := postJSON(t, app, "/api/generate-pdf", map[string]interface{}{
		"answers": []string{"No control"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
