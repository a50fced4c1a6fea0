package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/traxovo/traxovo/pkg/fleet"
)

const attendanceAPIVersion = "v0.1"

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service":  "traxovo-attendance",
		"version":  attendanceAPIVersion,
		"statuses": fleet.ReportedStatuses,
	})
}
