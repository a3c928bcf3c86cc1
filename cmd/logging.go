package cmd

import (
	"os"

	"github.com/achilleasa/bvhtrace/log"
	"github.com/urfave/cli"
)

var logger = log.New("bvhtrace")

// Resolve the verbosity from the global flags. -v and -vv take precedence
// over --log-level.
func logLevel(ctx *cli.Context) (log.Level, error) {
	switch {
	case ctx.GlobalBool("vv"):
		return log.Debug, nil
	case ctx.GlobalBool("v"):
		return log.Info, nil
	case ctx.GlobalString("log-level") != "":
		return log.ParseLevel(ctx.GlobalString("log-level"))
	}
	return log.GetLevel(), nil
}

func setupLogging(ctx *cli.Context) error {
	level, err := logLevel(ctx)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if logFile := ctx.GlobalString("log-file"); logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		log.SetSink(f)
	}
	return nil
}
