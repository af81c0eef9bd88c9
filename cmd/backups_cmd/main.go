// Command backups_cmd exports, imports or clears the FitTrack data held by the
// configured storage backend, using the same JSON format as the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dateutil"
	"github.com/2beens/fittrack/internal/logging"
	"github.com/2beens/fittrack/pkg"
)

const (
	actionExport = "export"
	actionImport = "import"
	actionClear  = "clear"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	action := flag.String("action", actionExport, "action [export | import | clear]")
	file := flag.String("file", "", "backup file: output dir/file for export, input file for import")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: *logsPath,
		LogLevel:    "info",
	})

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	if err := run(ctx, cfg, *action, *file); err != nil {
		log.Fatalf("%s failed: %s", *action, err)
	}
}

func run(ctx context.Context, cfg *config.Config, action, file string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	backend, err := internal.NewBackend(ctx, internal.NewBackendParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("FITTRACK_REDIS_PASS"),
		PostgresPassword: os.Getenv("FITTRACK_POSTGRES_PASS"),
	})
	if err != nil {
		return fmt.Errorf("new storage backend: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Errorf("close backend: %s", err)
		}
	}()

	fitApp := app.New(ctx, backend.Adapter, dateutil.SystemClock{Location: loc}, nil)

	switch action {
	case actionExport:
		return export(ctx, fitApp, file)
	case actionImport:
		return importFile(ctx, fitApp, file)
	case actionClear:
		fitApp.ClearAll(ctx)
		log.Infoln("all workouts and settings cleared")
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func export(ctx context.Context, fitApp *app.App, target string) error {
	data, fileName, err := fitApp.Export(ctx)
	if err != nil {
		return err
	}

	path := fileName
	if target != "" {
		isDir, err := pkg.PathExists(target, true)
		if err != nil {
			return fmt.Errorf("check target: %w", err)
		}
		if isDir {
			path = filepath.Join(target, fileName)
		} else {
			path = target
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	log.Infof("backup written to [%s]", path)
	return nil
}

func importFile(ctx context.Context, fitApp *app.App, source string) error {
	exists, err := pkg.PathExists(source, false)
	if err != nil {
		return fmt.Errorf("check backup file: %w", err)
	}
	if !exists {
		return fmt.Errorf("backup file [%s] not found", source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	res, err := fitApp.Import(ctx, data)
	if err != nil {
		return err
	}
	log.Infof(
		"import done: workouts replaced: %t (%d), settings replaced: %t",
		res.WorkoutsReplaced, res.WorkoutsCount, res.SettingsReplaced,
	)
	return nil
}
