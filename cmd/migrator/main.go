// Command migrator applies or rolls back the embedded monapi schema migrations.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/abgdnv/monapi/migrations"
	"github.com/abgdnv/monapi/pkg/bootstrap"
	"github.com/spf13/pflag"
)

const (
	databaseURLFlag = "database-url"
	downFlag        = "down"
	logLevelFlag    = "log-level"
	databaseURLEnv  = "MONAPI_DATABASE_URL"
)

func main() {
	databaseURL, down, logLevel := getFlagsValues()
	logger := bootstrap.NewLogger(os.Stdout, "migrator", logLevel)
	slog.SetDefault(logger)

	if err := validateFlags(databaseURL); err != nil {
		logger.Error("too few args", "err", err)
		fallDown()
	}

	if err := makeMigrations(databaseURL, down, logger); err != nil {
		logger.Error("failed to migrate", "err", err)
		fallDown()
	}
}

func getFlagsValues() (databaseURL string, down bool, logLevel string) {
	urlFlag := pflag.StringP(databaseURLFlag, "d", os.Getenv(databaseURLEnv), "postgres:// connection URL (defaults to $"+databaseURLEnv+")")
	downF := pflag.Bool(downFlag, false, "roll back every migration instead of applying them")
	levelFlag := pflag.String(logLevelFlag, "info", "log level: debug, info, warn or error")
	pflag.Parse()
	return *urlFlag, *downF, *levelFlag
}

func validateFlags(databaseURL string) error {
	var errs []error
	if databaseURL == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", databaseURLFlag))
	}
	return errors.Join(errs...)
}

func makeMigrations(databaseURL string, down bool, logger *slog.Logger) error {
	if down {
		if err := migrations.Down(databaseURL, logger); err != nil {
			return err
		}
		logger.Info("migrations rolled back")
		return nil
	}
	if err := migrations.Up(databaseURL, logger); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func fallDown() {
	os.Exit(2)
}
