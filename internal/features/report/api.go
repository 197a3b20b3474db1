package report

import (
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	ReportController *ReportController
}

func NewReportApi(reportController *ReportController) *ReportApi {
	return &ReportApi{ReportController: reportController}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports", middleware.AuthMiddleware())

	// Must come before /:id or "metrics" is swallowed as an id
	group.Get("/metrics/summary", api.ReportController.MetricsSummary)

	group.Get("/", api.ReportController.ListReports)
	group.Post("/", api.ReportController.CreateReport)
	group.Get("/:id", api.ReportController.GetReport)
	group.Put("/:id", api.ReportController.UpdateReport)
	group.Delete("/:id", api.ReportController.DeleteReport)

	group.Get("/:id/export", api.ReportController.ExportReport)
	group.Post("/:id/recommendations", api.ReportController.Recommendations)
}
