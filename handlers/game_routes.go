// handlers/game_routes.go
package handlers

import (
	"log"
	"strconv"

	"memory-game-system/middleware"
	"memory-game-system/models"
	"memory-game-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService, statsService *services.StatsService, jwtSecret string) {
	// Public: the level-selection page needs the rules before login is forced.
	app.Get("/games/levels", func(c *fiber.Ctx) error {
		levels := []models.Difficulty{models.DifficultyBasic, models.DifficultyMedium, models.DifficultyAdvanced}
		res := make([]fiber.Map, 0, len(levels))
		for _, d := range levels {
			rules := models.DifficultyConfig(d)
			res = append(res, fiber.Map{
				"difficulty":         d,
				"max_attempts":       rules.MaxAttempts,
				"time_limit_seconds": rules.TimeLimitSeconds,
			})
		}
		return c.JSON(res)
	})

	// Attached per route; a "/" group would also swallow routes registered
	// later by other setup funcs.
	requireUser := middleware.RequireUser(jwtSecret)

	// Game setup: resolves the board rules for the requested difficulty.
	app.Get("/games/setup/:difficulty", requireUser, func(c *fiber.Ctx) error {
		difficulty := models.Difficulty(c.Params("difficulty"))
		if !difficulty.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid difficulty level",
			})
		}
		rules := models.DifficultyConfig(difficulty)
		return c.JSON(fiber.Map{
			"difficulty":         difficulty,
			"max_attempts":       rules.MaxAttempts,
			"time_limit_seconds": rules.TimeLimitSeconds,
		})
	})

	// Result intake: the only write path into the game log.
	app.Post("/games/results", requireUser, func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(uint)

		type Req struct {
			Difficulty   string  `json:"difficulty"`
			Result       string  `json:"result"`
			TimeTaken    float64 `json:"time_taken"`
			AttemptsUsed int     `json:"attempts_used"`
		}
		var req Req
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Error saving game result: " + err.Error(),
			})
		}

		difficulty := models.Difficulty(req.Difficulty)
		if !difficulty.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Error saving game result: unknown difficulty " + strconv.Quote(req.Difficulty),
			})
		}
		result := models.Result(req.Result)
		if !result.IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Error saving game result: unknown result " + strconv.Quote(req.Result),
			})
		}

		record, err := gameService.Record(userID, difficulty, result, req.TimeTaken, req.AttemptsUsed)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Error saving game result: " + err.Error(),
			})
		}

		// The record is committed; a summary write failure only leaves the
		// cache stale until the next persist or reconcile sweep.
		if err := statsService.Persist(userID); err != nil {
			log.Printf("[Stats] failed to persist summary for user %d: %v", userID, err)
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Game result saved successfully.",
			"game_id": record.ID,
		})
	})

	// Profile: live statistics plus the latest games.
	app.Get("/profile/statistics", requireUser, func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(uint)

		stats, err := statsService.Compute(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute statistics",
				"cause": err.Error(),
			})
		}

		recent, err := gameService.RecentGames(userID, 10)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load recent games",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"stats":        stats,
			"recent_games": recent,
		})
	})

	app.Get("/games/history", requireUser, func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(uint)
		page, _ := strconv.Atoi(c.Query("page", "1"))
		size, _ := strconv.Atoi(c.Query("size", "20"))

		records, total, err := gameService.GameHistory(userID, page, size)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load game history",
				"cause": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"games":       records,
			"page":        page,
			"size":        size,
			"total_items": total,
		})
	})
}
