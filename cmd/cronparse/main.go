package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tomvanner/cron-parser/cron"
	"github.com/tomvanner/cron-parser/internal/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:      "cronparse",
		Usage:     "expand a cron schedule line into the explicit values of each field",
		ArgsUsage: `"<minute> <hour> <day of month> <month> <day of week> <command>"`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity (debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := logging.New(c.String("log-level"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer func() { _ = logger.Sync() }()

			if c.NArg() != 1 {
				return cli.Exit("pass the whole schedule line as a single quoted argument", 1)
			}

			line := c.Args().First()
			logger.Debug("parsing schedule line", zap.String("line", line))

			sched, err := cron.Parse(line)
			if err != nil {
				logger.Error("failed to parse schedule", zap.Error(err))
				return cli.Exit(err.Error(), 1)
			}

			fmt.Println(sched.Describe())

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
