package user

import (
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	UserController *UserController
}

func NewUserApi(userController *UserController) *UserApi {
	return &UserApi{UserController: userController}
}

func (api *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users")

	// Registration is the one public write endpoint
	group.Post("/", api.UserController.Register)

	group.Get("/", middleware.AuthMiddleware(), middleware.AdminMiddleware(), api.UserController.ListUsers)
	group.Put("/:id", middleware.AuthMiddleware(), api.UserController.UpdateUser)
}
