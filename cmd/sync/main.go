package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"preorder-sync/internal/config"
	"preorder-sync/internal/csvsource"
	"preorder-sync/internal/domain"
	"preorder-sync/internal/mappers"
	"preorder-sync/internal/report"
	"preorder-sync/internal/sftpclient"
	"preorder-sync/internal/sync"
	"preorder-sync/internal/wix"
)

func main() {
	var (
		csvPath    = flag.String("csv", "", "input csv path (falls back to CSV_PATH env, then known locations)")
		dryRun     = flag.Bool("dry-run", false, "normalize and locate but do not touch the store")
		prefetch   = flag.Bool("prefetch", false, "build the sku index with one catalog scan before processing rows")
		reportOut  = flag.String("report", "", "write a per-row outcome csv to this path")
		uploadSFTP = flag.Bool("sftp", false, "upload the report via SFTP (requires -report)")
	)
	flag.Parse()

	// Medir tiempo total de ejecución
	start := time.Now()

	code := run(*csvPath, *dryRun, *prefetch, *reportOut, *uploadSFTP)

	log.Printf("Execution finished in %s", time.Since(start))
	os.Exit(code)
}

func run(csvPath string, dryRun, prefetch bool, reportOut string, uploadSFTP bool) int {
	// timeout general grande: el scan completo del catálogo puede tardar
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	runID := uuid.NewString()
	cfg := config.Load()

	if cfg.WixAPIKey == "" || cfg.WixSiteID == "" {
		log.Printf("FATAL: missing env WIX_API_KEY / WIX_SITE_ID")
		return 2
	}

	rd, f, err := csvsource.Open(csvPath, cfg.CSVPath,
		"template_preordini_v7.csv",
		"input/template_preordini_v7.csv",
		"data/template_preordini_v7.csv",
		"csv/template_preordini_v7.csv",
	)
	if err != nil {
		log.Printf("FATAL: %v", err)
		return 2
	}
	defer f.Close()

	log.Printf("run %s: csv %s", runID, f.Name())

	client := wix.New(cfg.WixBaseURL, cfg.WixAPIKey, cfg.WixSiteID)
	engine := sync.NewEngine(client, mappers.PriceRule{
		DepositPct: cfg.DepositPct,
		PrepayPct:  cfg.PrepayPct,
	})
	engine.DryRun = dryRun

	if prefetch {
		if err := engine.Locator.PrefetchIndex(ctx); err != nil {
			log.Printf("WARN: prefetch failed, falling back to per-row lookups: %v", err)
		}
	}

	var summary sync.Summary
	for {
		row, line, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("FATAL: csv read: %v", err)
			return 2
		}

		item, reason, ok := csvsource.Normalize(row, line)
		if !ok {
			log.Printf("SKIP: line %d: %s", line, reason)
			summary.Add(line, row[csvsource.ColSKU], row[csvsource.ColName], domain.Skipped(reason))
			continue
		}

		res := engine.SyncRow(ctx, item)
		switch res.Status {
		case domain.StatusCreated:
			log.Printf("OK: created %s (id=%s)", item.Name, res.ProductID)
		case domain.StatusUpdated:
			log.Printf("OK: updated %s (id=%s)", item.Name, res.ProductID)
		case domain.StatusSkipped:
			log.Printf("SKIP: line %d %s: %s", item.Line, item.SKU, res.Reason)
		case domain.StatusFailed:
			log.Printf("ERR: line %d %s: %s", item.Line, item.SKU, res.Reason)
		}
		summary.Add(item.Line, item.SKU, item.Name, res)
	}

	log.Printf("Sync summary: %s", summary.String())

	if reportOut != "" {
		if dir := filepath.Dir(reportOut); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Printf("ERR: report dir: %v", err)
				return summary.ExitCode()
			}
		}
		if err := report.WriteFile(reportOut, runID, summary.Rows); err != nil {
			log.Printf("ERR: write report: %v", err)
			return summary.ExitCode()
		}
		log.Printf("wrote report %s (%d rows)", reportOut, len(summary.Rows))

		if uploadSFTP {
			upCfg := sftpclient.Config{
				Host:                  cfg.SFTPHost,
				Port:                  cfg.SFTPPort,
				User:                  cfg.SFTPUser,
				Pass:                  cfg.SFTPPass,
				RemoteDir:             cfg.SFTPDir,
				InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
			}

			upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
			defer upCancel()

			if err := sftpclient.UploadFile(upCtx, upCfg, reportOut, filepath.Base(reportOut)); err != nil {
				log.Printf("ERR: sftp upload: %v", err)
			} else {
				log.Printf("uploaded to sftp://%s:%d%s/%s", upCfg.Host, upCfg.Port, upCfg.RemoteDir, filepath.Base(reportOut))
			}
		}
	}

	return summary.ExitCode()
}
