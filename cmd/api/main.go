package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"quick-capture/config"
	_ "quick-capture/docs" // Swagger docs
	"quick-capture/internal/httpserver"
	"quick-capture/internal/task/repository/memory"
	"quick-capture/internal/task/usecase"
	"quick-capture/pkg/gcalendar"
	"quick-capture/pkg/log"
	"quick-capture/pkg/quickparse"
)

// @title       Quick Capture API
// @description Natural-language task capture with deterministic multi-language parsing and Google Calendar mirroring.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Quick Capture...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parser languages and date resolution
	languages := builtinLanguages()
	loadExtraLanguages(ctx, logger, languages, cfg.Parser.LanguageDir)

	if _, ok := languages[strings.ToLower(cfg.Parser.DefaultLanguage)]; !ok {
		logger.Errorf(ctx, "Default language %q is not available", cfg.Parser.DefaultLanguage)
		return
	}

	loc, err := time.LoadLocation(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Parser.Timezone, err)
		loc = time.UTC
	}
	cal := quickparse.Calendar{
		Location:  loc,
		WeekStart: parseWeekStart(cfg.Parser.WeekStart),
	}

	// 4. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendarClient = client
		}
	}

	// 5. Task domain
	taskRepo := memory.New(logger)
	taskUC := usecase.New(logger, taskRepo, usecase.Config{
		Languages:       languages,
		DefaultLanguage: strings.ToLower(cfg.Parser.DefaultLanguage),
		Calendar:        cal,
		CalendarClient:  calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUseCase: taskUC,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func builtinLanguages() map[string]*quickparse.LanguageConfig {
	langs := make(map[string]*quickparse.LanguageConfig)
	for _, lc := range quickparse.Languages() {
		langs[lc.Code()] = lc
	}
	return langs
}

// loadExtraLanguages adds YAML-defined languages from dir. A broken file is
// logged and skipped; it never blocks startup.
func loadExtraLanguages(ctx context.Context, logger log.Logger, langs map[string]*quickparse.LanguageConfig, dir string) {
	if dir == "" {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warnf(ctx, "Cannot read language dir %q: %v", dir, err)
		return
	}

	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		lc, err := quickparse.LoadLanguageFile(path)
		if err != nil {
			logger.Warnf(ctx, "Skipping language file %q: %v", path, err)
			continue
		}

		langs[lc.Code()] = lc
		logger.Infof(ctx, "Loaded language %q from %s", lc.Code(), path)
	}
}

func parseWeekStart(name string) time.Weekday {
	switch strings.ToLower(name) {
	case "sunday":
		return time.Sunday
	case "monday", "":
		return time.Monday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}
