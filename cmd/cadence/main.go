package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dferrell/cadence/internal/calendar"
	"github.com/dferrell/cadence/internal/cli"
	"github.com/dferrell/cadence/internal/cli/formatter"
	"github.com/dferrell/cadence/internal/config"
	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/intelligence"
	"github.com/dferrell/cadence/internal/llm"
	"github.com/dferrell/cadence/internal/repository"
	"github.com/dferrell/cadence/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	formatter.DisableColorsWhenPiped()

	cfg, err := config.Load(os.Getenv("CADENCE_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	clientRepo := repository.NewSQLiteClientRepo(database)
	requestRepo := repository.NewSQLiteRequestRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var source calendar.Source
	if cfg.CalendarURL != "" {
		source = calendar.NewICSSource(cfg.CalendarURL)
	}

	// Wire the LLM-backed preference extractor only when enabled; the import
	// pipeline falls back to rule-based parsing without it.
	llmCfg := llm.LoadConfig()
	var prefs *intelligence.PreferenceService
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewZapObserver(logger)
		}
		prefs = intelligence.NewPreferenceService(llmCfg, llm.NewOllamaClient(llmCfg, observer), logger)
	}

	telemetry := service.NewZapUseCaseObserver(logger)
	app := &cli.App{
		Config:    cfg,
		Source:    source,
		Plan:      service.NewPlanService(cfg, clientRepo, requestRepo, source, uow, telemetry),
		Import:    service.NewImportService(cfg.Defaults(), prefs, uow, telemetry),
		Clients:   service.NewClientService(clientRepo, requestRepo, uow),
		Schedules: service.NewScheduleService(scheduleRepo),
	}

	return cli.NewRootCmd(app).Execute()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
