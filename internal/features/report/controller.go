package report

import (
	"fmt"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	ReportService ReportService
}

func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// ListReports godoc
// @Summary List reports
// @Description Paginated report listing, newest first, lightweight projection
// @Tags reports
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} ReportPage
// @Router /api/reports [get]
func (ctrl *ReportController) ListReports(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	result, err := ctrl.ReportService.ListReports(ctx.UserContext(), page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

// GetReport godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Report
// @Failure 404 {object} map[string]interface{}
// @Router /api/reports/{id} [get]
func (ctrl *ReportController) GetReport(ctx *fiber.Ctx) error {
	report, err := ctrl.ReportService.GetReport(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(report)
}

// CreateReport godoc
// @Summary Create a report
// @Description Risk ratings are recomputed from probability and severity
// @Tags reports
// @Accept json
// @Produce json
// @Param report body Report true "Report"
// @Success 201 {object} Report
// @Failure 400 {object} map[string]interface{}
// @Router /api/reports [post]
func (ctrl *ReportController) CreateReport(ctx *fiber.Ctx) error {
	var report Report
	if err := ctx.BodyParser(&report); err != nil {
		return errs.Invalid(err.Error())
	}

	if err := ctrl.ReportService.CreateReport(ctx.UserContext(), &report, middleware.Claims(ctx)); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(report)
}

// UpdateReport godoc
// @Summary Update a report
// @Description Creator or admin only
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param report body Report true "Report"
// @Success 200 {object} Report
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/reports/{id} [put]
func (ctrl *ReportController) UpdateReport(ctx *fiber.Ctx) error {
	var report Report
	if err := ctx.BodyParser(&report); err != nil {
		return errs.Invalid(err.Error())
	}

	updated, err := ctrl.ReportService.UpdateReport(ctx.UserContext(), ctx.Params("id"), &report, middleware.Claims(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(updated)
}

// DeleteReport godoc
// @Summary Delete a report
// @Description Creator or admin only
// @Tags reports
// @Param id path string true "Report ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]interface{}
// @Router /api/reports/{id} [delete]
func (ctrl *ReportController) DeleteReport(ctx *fiber.Ctx) error {
	if err := ctrl.ReportService.DeleteReport(ctx.UserContext(), ctx.Params("id"), middleware.Claims(ctx)); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Report removed"})
}

// MetricsSummary godoc
// @Summary Dashboard metrics summary
// @Description Aggregates all reports for the requested calendar year
// @Tags reports
// @Produce json
// @Param year query int false "Calendar year (default: current)"
// @Success 200 {object} MetricsSummary
// @Router /api/reports/metrics/summary [get]
func (ctrl *ReportController) MetricsSummary(ctx *fiber.Ctx) error {
	year := ctx.QueryInt("year", 0)

	summary, err := ctrl.ReportService.MetricsSummary(ctx.UserContext(), year)
	if err != nil {
		return err
	}
	return ctx.JSON(summary)
}

// Recommendations godoc
// @Summary Generate recommendations
// @Description Server-side analysis of a report's data; does not modify the report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Recommendations
// @Failure 404 {object} map[string]interface{}
// @Router /api/reports/{id}/recommendations [post]
func (ctrl *ReportController) Recommendations(ctx *fiber.Ctx) error {
	result, err := ctrl.ReportService.Recommendations(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

// ExportReport godoc
// @Summary Export a report
// @Tags reports
// @Produce application/octet-stream
// @Param id path string true "Report ID"
// @Param format query string true "csv or xlsx"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]interface{}
// @Router /api/reports/{id}/export [get]
func (ctrl *ReportController) ExportReport(ctx *fiber.Ctx) error {
	format := ctx.Query("format", "xlsx")

	data, filename, err := ctrl.ReportService.ExportReport(ctx.UserContext(), ctx.Params("id"), format)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	if format == "csv" {
		ctx.Set(fiber.HeaderContentType, "text/csv")
	} else {
		ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}
	return ctx.Send(data)
}
