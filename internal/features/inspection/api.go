package inspection

import (
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InspectionApi struct {
	InspectionController *InspectionController
}

func NewInspectionApi(inspectionController *InspectionController) *InspectionApi {
	return &InspectionApi{InspectionController: inspectionController}
}

func (api *InspectionApi) Setup(app *fiber.App) {
	group := app.Group("/api/inspections", middleware.AuthMiddleware())

	group.Get("/", api.InspectionController.ListInspections)
	group.Post("/", api.InspectionController.CreateInspection)
	group.Get("/:id", api.InspectionController.GetInspection)
	group.Put("/:id", api.InspectionController.UpdateInspection)
	group.Delete("/:id", api.InspectionController.DeleteInspection)
}
