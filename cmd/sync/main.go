package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"canvas-notion-sync/internal/config"
	"canvas-notion-sync/internal/export"
	"canvas-notion-sync/internal/httpx"
	"canvas-notion-sync/internal/logging"
	"canvas-notion-sync/internal/providers/canvas"
	"canvas-notion-sync/internal/providers/notion"
	"canvas-notion-sync/internal/sftpclient"
	"canvas-notion-sync/internal/sync"
)

func main() {
	start := time.Now()

	envErr := config.LoadEnvFile(config.EnvFilePath())
	cfg := config.Load()

	log, closer := logging.New(logging.Options{
		File:         cfg.LogFile,
		MaxSizeMB:    cfg.LogMaxSizeMB,
		MaxBackups:   cfg.LogMaxBackups,
		Console:      os.Stderr,
		ConsoleLevel: slog.LevelInfo,
		FileLevel:    slog.LevelDebug,
	})
	log.Debug("Logger initialized")

	err := envErr
	if err == nil {
		err = run(context.Background(), cfg, log)
	}

	log.Info("Execution finished", "elapsed", time.Since(start).Round(time.Millisecond))
	if err != nil {
		log.Error("Sync run failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
	closer.Close()
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	mapping, err := config.LoadNameMapping(cfg.CourseMapFile)
	if err != nil {
		return err
	}
	log.Debug("Configuration loaded", "mapped_courses", mappedNames(mapping))

	log.Info("Initializing Canvas and Notion clients")
	readRetry := httpx.WithAttempts(cfg.HTTPMaxAttempts)

	cv := canvas.New(cfg.CanvasBaseURL, cfg.CanvasAPIKey)
	cv.Retry = readRetry

	nt := notion.New(cfg.NotionBaseURL, cfg.NotionAPIKey)
	nt.ReadRetry = readRetry

	pass := &sync.Pass{
		Source:  canvas.Source{C: cv},
		Store:   notion.Store{C: nt, DataSourceID: cfg.NotionDataSourceID},
		Mapping: mapping,
		Log:     log,
	}

	report, runErr := pass.Run(ctx)

	// Written even when the run aborted.
	if report != nil && cfg.ReportFile != "" {
		if err := writeReport(ctx, cfg, report, log); err != nil {
			log.Warn("Run report not delivered", "err", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	if n := report.Count(sync.StateCreateFailed); n > 0 {
		log.Warn("Some assignments could not be created", "failed", n)
	}
	return nil
}

func writeReport(ctx context.Context, cfg config.Config, report *sync.Report, log *slog.Logger) error {
	if err := export.WriteRunReportFile(cfg.ReportFile, report); err != nil {
		return err
	}
	log.Info("Wrote run report", "path", cfg.ReportFile, "rows", len(report.Outcomes))

	if !cfg.ReportSFTP {
		return nil
	}

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		KnownHostsFile:        cfg.SFTPKnownHostsFile,
	}

	upCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	remoteName := filepath.Base(cfg.ReportFile)
	if err := sftpclient.UploadFile(upCtx, upCfg, cfg.ReportFile, remoteName); err != nil {
		return err
	}
	log.Info("Uploaded run report", "dest", fmt.Sprintf("sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, remoteName))
	return nil
}

func mappedNames(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	return out
}
