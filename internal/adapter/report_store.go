package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "advent.dev/pkg/advent/internal/model"
)

const (
	reportExt     = ".yaml"
	reportHashLen = 12
)

// ReportStore persists solution reports inside a reports directory.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.Report) error
	LoadReport(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool, error)
	ListReports(ctx context.Context, dir m.Path) ([]m.Report, error)
}

// YAMLReportStore keeps one YAML file per (day, input) pair.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// ReportFileName returns the file name used for a report.
func ReportFileName(day m.Day, inputHash string) string {
	short := inputHash
	if len(short) > reportHashLen {
		short = short[:reportHashLen]
	}

	return fmt.Sprintf("day%02d-%s%s", uint8(day), short, reportExt)
}

// SaveReport writes report into dir, creating dir when needed.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName(report.Day, report.InputHash))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("Saved report", "path", path)

	return nil
}

// LoadReport reads the report for day and inputHash. A missing file is not an error.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path, day m.Day, inputHash string) (m.Report, bool, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, false, err
	}

	path := filepath.Join(string(dir), ReportFileName(day, inputHash))

	report, err := readReport(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.Report{}, false, nil
	}

	if err != nil {
		return m.Report{}, false, err
	}

	// Short file names can collide; the stored hash is authoritative.
	if report.Day != day || report.InputHash != inputHash {
		return m.Report{}, false, nil
	}

	return report, true, nil
}

// ListReports returns every report in dir ordered by day, then by solve time.
// A missing directory yields no reports.
func (s *YAMLReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		report, err := readReport(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			slog.Warn("Skipping unreadable report", "file", entry.Name(), "error", err)
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Day != reports[j].Day {
			return reports[i].Day < reports[j].Day
		}

		return reports[i].SolvedAt.Before(reports[j].SolvedAt)
	})

	return reports, nil
}

func readReport(path string) (m.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Report{}, err
	}

	var report m.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
