package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/traxovo/traxovo/pkg/api/routes"
)

func NewApp(reports routes.ReportReader) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	routes.AttendanceRouter(webApp.Group("/attendance"), reports)

	return webApp
}

func SetupServer(listen string, reports routes.ReportReader) error {
	return NewApp(reports).Listen(listen)
}
