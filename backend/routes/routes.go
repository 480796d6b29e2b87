package routes

import (
	"log"

	"project/backend/catalog"
	"project/backend/config"
	"project/backend/controllers"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cat *catalog.Catalog, cfg *config.Config, logger *log.Logger) {
	diagnosticController := controllers.NewDiagnosticController(cat, cfg, logger)
	app.Get("/api/questions", diagnosticController.GetQuestions)
	app.Post("/api/submit", diagnosticController.SubmitAnswers)
	app.Post("/api/generate-pdf", diagnosticController.GenerateReport)
}
