package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/attendance"
	"github.com/traxovo/traxovo/pkg/database"
	"github.com/traxovo/traxovo/pkg/fleet"
)

type ReportReader interface {
	Get(ctx context.Context, date string) (*fleet.Report, error)
}

func AttendanceRouter(router fiber.Router, reports ReportReader) {
	router.Get("/version", APIVersion)
	router.Get("/reports/:date", func(c *fiber.Ctx) error {
		return getReport(c, reports)
	})
}

func getReport(c *fiber.Ctx, reports ReportReader) error {
	date := c.Params("date")

	if _, err := attendance.ParseReportDate(date); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	report, err := reports.Get(c.UserContext(), date)
	if errors.Is(err, database.ErrReportNotFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find an attendance report for this date",
		})
	} else if err != nil {
		log.Error().Err(err).Str("date", date).Msg("Failed to load attendance report")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load attendance report",
		})
	}

	groups := []string{"basic"}
	if c.QueryBool("detail") {
		groups = append(groups, "detailed")
	}

	reportReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, report)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce Report",
		})
	}

	return c.JSON(reportReduced)
}
