package api

import (
	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/api/routes"
	"github.com/traxovo/traxovo/pkg/database"
	"github.com/traxovo/traxovo/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Serves archived attendance reports",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return SetupServer(c.String("listen"), newReportReader(database.NewReportStore(), redis_client.Connect))
				},
			},
		},
	}
}

// newReportReader puts the redis cache in front of reports when redis can be reached
func newReportReader(reports routes.ReportReader, connectCache func() error) routes.ReportReader {
	if err := connectCache(); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, serving reports without a cache")
		return reports
	}

	return NewCachedReports(reports)
}
