package main

/*
* CLI that counts a value in a randomly generated array using a
* coordinated pool of workers.
 */

import (
	"fmt"
	"os"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"github.com/llxisdsh/parsearch"
)

const usageFormat = "\nUsage: %s <array size> <number to omit> <number of threads> <number to search for>\n"

func usageError(c *cli.Context, err error) error {
	msg := fmt.Sprintf(usageFormat, c.App.Name)
	if err != nil {
		msg = err.Error() + "\n" + msg
	}
	return cli.NewExitError(msg, 1)
}

func searchCommand(c *cli.Context) error {
	cfg, err := parsearch.ParseArgs([]string(c.Args()))
	if err != nil {
		return usageError(c, err)
	}
	res, err := parsearch.Run(cfg, parsearch.WithSeed(c.Uint64("seed")))
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	if err := parsearch.WriteReport(c.App.Writer, res, c.Bool("verbose")); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "parsearch"
	app.Usage = "count a value in a random array with a coordinated pool of workers"
	app.ArgsUsage = "<array size> <number to omit> <number of threads> <number to search for>"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "seed for the random array (0 seeds from the clock)",
		},
		cli.BoolFlag{
			// -v is taken by the built-in --version flag.
			Name:  "verbose, V",
			Usage: "list each worker's partition and matches",
		},
	}
	app.OnUsageError = func(c *cli.Context, err error, _ bool) error {
		return usageError(c, err)
	}
	app.Action = searchCommand
	return app
}

func main() {
	parsearch.SetupLogging("parsearch", logging.WARNING)
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
