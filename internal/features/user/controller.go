package user

import (
	"go-ehs/internal/common/errs"
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	UserService UserService
}

func NewUserController(userService UserService) *UserController {
	return &UserController{UserService: userService}
}

// Register godoc
// @Summary Register a user
// @Description Create a new account; role is always "user"
// @Tags users
// @Accept json
// @Produce json
// @Param user body RegisterInput true "Registration"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]interface{}
// @Router /api/users [post]
func (ctrl *UserController) Register(ctx *fiber.Ctx) error {
	var in RegisterInput
	if err := ctx.BodyParser(&in); err != nil {
		return errs.Invalid(err.Error())
	}

	user, err := ctrl.UserService.Register(ctx.UserContext(), in)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers godoc
// @Summary List users
// @Description Admin-only listing of all users, sorted by name
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} map[string]interface{}
// @Router /api/users [get]
func (ctrl *UserController) ListUsers(ctx *fiber.Ctx) error {
	users, err := ctrl.UserService.ListUsers(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(users)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Self or admin; only admins may change roles
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserInput true "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/users/{id} [put]
func (ctrl *UserController) UpdateUser(ctx *fiber.Ctx) error {
	var in UpdateUserInput
	if err := ctx.BodyParser(&in); err != nil {
		return errs.Invalid(err.Error())
	}

	user, err := ctrl.UserService.UpdateUser(ctx.UserContext(), ctx.Params("id"), in, middleware.Claims(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(user)
}
