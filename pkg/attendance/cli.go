package attendance

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/database"
	"github.com/traxovo/traxovo/pkg/dataimporter/manager"
	"github.com/traxovo/traxovo/pkg/fleet"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "attendance",
		Usage: "Reconcile telematics exports into a daily driver attendance report",
		Subcommands: []*cli.Command{
			{
				Name:  "report",
				Usage: "Build the attendance report for a date",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Report date as YYYY-MM-DD",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "driving-history",
						Usage: "Driving history export, can be repeated",
					},
					&cli.StringSliceFlag{
						Name:  "activity-detail",
						Usage: "Activity detail export, can be repeated",
					},
					&cli.StringSliceFlag{
						Name:  "roster",
						Usage: "Driver roster CSV, can be repeated",
					},
					&cli.StringFlag{
						Name:  "manifest",
						Usage: "Datasource manifest file or directory of manifests",
					},
					&cli.StringFlag{
						Name:  "policy",
						Usage: "YAML file overriding the shift policy",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "json",
						Usage: "Output format, json or csv",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Write the report to this file instead of stdout",
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Archive the report in MongoDB",
					},
				},
				Action: func(c *cli.Context) error {
					request := Request{
						ReportDate:          c.String("date"),
						DrivingHistoryPaths: c.StringSlice("driving-history"),
						ActivityDetailPaths: c.StringSlice("activity-detail"),
						RosterPaths:         c.StringSlice("roster"),
					}

					// Bad dates fail before any file is touched
					if _, err := ParseReportDate(request.ReportDate); err != nil {
						return err
					}

					if manifest := c.String("manifest"); manifest != "" {
						registered, err := manager.GetRegisteredDataSets(manifest)
						if err != nil {
							return err
						}
						request.Datasets = registered
					}

					if policyPath := c.String("policy"); policyPath != "" {
						policy, err := LoadPolicy(policyPath)
						if err != nil {
							return err
						}
						request.Policy = policy
					}

					write, err := getWriter(c.String("format"))
					if err != nil {
						return err
					}

					result, err := Run(request)
					if err != nil {
						return err
					}

					if c.Bool("save") {
						if err := database.Connect(); err != nil {
							return err
						}

						ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
						defer cancel()

						if err := database.NewReportStore().Save(ctx, result.Report); err != nil {
							return err
						}
						log.Info().Str("date", result.Report.Date).Msg("Archived attendance report")
					}

					var output io.Writer = os.Stdout
					if outputPath := c.String("output"); outputPath != "" {
						file, err := os.Create(outputPath)
						if err != nil {
							return err
						}
						defer file.Close()

						output = file
					}

					return write(output, result.Report)
				},
			},
		},
	}
}

func getWriter(format string) (func(io.Writer, *fleet.Report) error, error) {
	switch format {
	case "json":
		return WriteJSON, nil
	case "csv":
		return WriteCSV, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
