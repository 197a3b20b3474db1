package auth

import (
	"go-ehs/internal/common/errs"
	"go-ehs/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	AuthService AuthService
}

func NewAuthController(authService AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Login godoc
// @Summary Authenticate and get a token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]interface{}
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(ctx *fiber.Ctx) error {
	var in LoginInput
	if err := ctx.BodyParser(&in); err != nil {
		return errs.Invalid(err.Error())
	}

	token, err := ctrl.AuthService.Login(ctx.UserContext(), in.Email, in.Password)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"token": token})
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth [get]
func (ctrl *AuthController) CurrentUser(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	usr, err := ctrl.AuthService.CurrentUser(ctx.UserContext(), claims.UserID)
	if err != nil {
		return err
	}
	return ctx.JSON(usr)
}
