// handlers/auth_routes.go
package handlers

import (
	"errors"

	"memory-game-system/middleware"
	"memory-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, accountService *services.AccountService, jwtSecret string) {
	app.Post("/auth/register", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		user, err := accountService.Register(req.Username, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateAccount) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		})
	})

	app.Post("/auth/login", func(c *fiber.Ctx) error {
		type Req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}

		user, err := accountService.Authenticate(req.Username, req.Password)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		token, err := middleware.NewSessionToken(user.ID, user.Username, jwtSecret)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create session token",
			})
		}

		return c.JSON(fiber.Map{
			"token":    token,
			"username": user.Username,
		})
	})
}
