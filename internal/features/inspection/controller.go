package inspection

import (
	"time"

	"go-ehs/internal/common/errs"
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InspectionController struct {
	InspectionService InspectionService
}

func NewInspectionController(inspectionService InspectionService) *InspectionController {
	return &InspectionController{InspectionService: inspectionService}
}

func parseDateQuery(ctx *fiber.Ctx, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, errs.Invalid("Invalid " + key + " date")
		}
	}
	return &t, nil
}

// ListInspections godoc
// @Summary List inspections
// @Description Paginated listing, newest first, optionally filtered
// @Tags inspections
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param location query string false "Filter by location"
// @Param status query string false "Filter by status"
// @Param startDate query string false "Inspections on or after this date"
// @Param endDate query string false "Inspections on or before this date"
// @Success 200 {object} InspectionPage
// @Router /api/inspections [get]
func (ctrl *InspectionController) ListInspections(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	startDate, err := parseDateQuery(ctx, "startDate")
	if err != nil {
		return err
	}
	endDate, err := parseDateQuery(ctx, "endDate")
	if err != nil {
		return err
	}

	filter := InspectionFilter{
		Location:  ctx.Query("location"),
		Status:    ctx.Query("status"),
		StartDate: startDate,
		EndDate:   endDate,
	}

	result, err := ctrl.InspectionService.ListInspections(ctx.UserContext(), filter, page, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(result)
}

// GetInspection godoc
// @Summary Get an inspection
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} Inspection
// @Failure 404 {object} map[string]interface{}
// @Router /api/inspections/{id} [get]
func (ctrl *InspectionController) GetInspection(ctx *fiber.Ctx) error {
	inspection, err := ctrl.InspectionService.GetInspection(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(inspection)
}

// CreateInspection godoc
// @Summary Create an inspection
// @Description The authenticated user becomes the inspector
// @Tags inspections
// @Accept json
// @Produce json
// @Param inspection body Inspection true "Inspection"
// @Success 201 {object} Inspection
// @Failure 400 {object} map[string]interface{}
// @Router /api/inspections [post]
func (ctrl *InspectionController) CreateInspection(ctx *fiber.Ctx) error {
	var inspection Inspection
	if err := ctx.BodyParser(&inspection); err != nil {
		return errs.Invalid(err.Error())
	}

	if err := ctrl.InspectionService.CreateInspection(ctx.UserContext(), &inspection, middleware.Claims(ctx)); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(inspection)
}

// UpdateInspection godoc
// @Summary Update an inspection
// @Description Inspector, reviewer or admin only
// @Tags inspections
// @Accept json
// @Produce json
// @Param id path string true "Inspection ID"
// @Param inspection body Inspection true "Inspection"
// @Success 200 {object} Inspection
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/inspections/{id} [put]
func (ctrl *InspectionController) UpdateInspection(ctx *fiber.Ctx) error {
	var inspection Inspection
	if err := ctx.BodyParser(&inspection); err != nil {
		return errs.Invalid(err.Error())
	}

	updated, err := ctrl.InspectionService.UpdateInspection(ctx.UserContext(), ctx.Params("id"), &inspection, middleware.Claims(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(updated)
}

// DeleteInspection godoc
// @Summary Delete an inspection
// @Description Inspector or admin only
// @Tags inspections
// @Param id path string true "Inspection ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]interface{}
// @Router /api/inspections/{id} [delete]
func (ctrl *InspectionController) DeleteInspection(ctx *fiber.Ctx) error {
	if err := ctrl.InspectionService.DeleteInspection(ctx.UserContext(), ctx.Params("id"), middleware.Claims(ctx)); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"message": "Inspection removed"})
}
