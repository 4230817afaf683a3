// handlers/sysinfo_routes.go
package handlers

import (
	"memory-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSysInfoRoutes(app *fiber.App, sysInfoService *services.SysInfoService) {
	app.Get("/system/info", func(c *fiber.Ctx) error {
		info, err := sysInfoService.Latest()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read system information",
				"cause": err.Error(),
			})
		}
		return c.JSON(info)
	})
}
