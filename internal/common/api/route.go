package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature's api type; Setup registers its
// route group on the app.
type Route interface {
	Setup(app *fiber.App)
}
