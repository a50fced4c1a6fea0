package dataimporter

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/attendance"
	"github.com/traxovo/traxovo/pkg/database"
	"github.com/traxovo/traxovo/pkg/dataimporter/manager"
	"github.com/traxovo/traxovo/pkg/util"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Check and import the telematics datasets listed in datasource manifests",
		Subcommands: []*cli.Command{
			{
				Name:  "inspect",
				Usage: "Resolve the header of every dataset file without importing it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "manifest",
						Usage:    "Datasource manifest file or directory of manifests",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					registered, err := manager.GetRegisteredDataSets(c.String("manifest"))
					if err != nil {
						return err
					}

					for _, inspection := range InspectDataSets(registered) {
						logger := log.With().
							Str("dataset", inspection.Dataset).
							Str("file", inspection.Path).
							Int("header", inspection.HeaderIndex).
							Logger()

						switch {
						case inspection.Usable():
							logger.Info().Interface("columns", inspection.Columns).Msg("Dataset file OK")
						case inspection.Err != nil:
							logger.Error().Err(inspection.Err).Msg("Dataset file unusable")
						default:
							logger.Warn().Interface("missing", inspection.Missing).Msg("Dataset file is missing required columns")
						}
					}

					return nil
				},
			},
			{
				Name:  "run",
				Usage: "Build and archive the attendance report from a manifest",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "manifest",
						Usage:    "Datasource manifest file or directory of manifests",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Report date as YYYY-MM-DD, defaults to today",
					},
					&cli.StringFlag{
						Name:  "policy",
						Usage: "YAML file overriding the shift policy",
					},
					&cli.StringFlag{
						Name:     "repeat-every",
						Usage:    "Repeat this import every X seconds",
						Required: false,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					repeatEvery := c.String("repeat-every")
					repeat := repeatEvery != ""
					var repeatDuration time.Duration
					if repeat {
						var err error
						repeatDuration, err = time.ParseDuration(repeatEvery)

						if err != nil {
							return err
						}
					}

					var policy attendance.Policy
					if policyPath := c.String("policy"); policyPath != "" {
						var err error
						policy, err = attendance.LoadPolicy(policyPath)
						if err != nil {
							return err
						}
					}

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					reports := database.NewReportStore()

					for {
						startTime := time.Now()

						// Manifests are reloaded so new export files are picked up between runs
						registered, err := manager.GetRegisteredDataSets(c.String("manifest"))
						if err != nil {
							return err
						}

						date := c.String("date")
						if date == "" {
							date = time.Now().Format(util.DateLayout)
						}

						result, err := attendance.Run(attendance.Request{
							ReportDate: date,
							Datasets:   registered,
							Policy:     policy,
						})
						if err != nil {
							return err
						}

						ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
						err = reports.Save(ctx, result.Report)
						cancel()

						if err != nil {
							if !repeat {
								return err
							}
							log.Error().Err(err).Str("date", date).Msg("Failed to archive attendance report")
						}

						if !repeat {
							break
						}

						executionDuration := time.Since(startTime)
						log.Info().Msgf("Operation took %s", executionDuration.String())

						waitTime := repeatDuration - executionDuration
						if waitTime < 0 {
							waitTime = 0
						}

						select {
						case <-signals:
							return nil
						case <-time.After(waitTime):
						}
					}

					return nil
				},
			},
		},
	}
}
