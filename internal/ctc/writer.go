package ctc

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/config"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/logger"
)

const filenameLayout = "2006-01-02 15-04-05"

// IOError wraps a filesystem failure while writing the export.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type Writer struct {
	outputDir string
	logger    *logger.Logger
}

func NewWriter(cfg *config.AppConfig, logger *logger.Logger) *Writer {
	return &Writer{
		outputDir: cfg.Export.OutputDir,
		logger:    logger,
	}
}

// Write serializes all rows to a timestamp-named file in the output
// directory and returns its path. Rows are written in input order after
// the fixed header; zero rows still produce a header-only file.
func (w *Writer) Write(rows []Row) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", &IOError{Op: "create directory", Path: w.outputDir, Err: err}
	}

	path := filepath.Join(w.outputDir, time.Now().Format(filenameLayout)+".csv")
	w.logger.Info("[Write] writing export", map[string]string{
		"path": path,
		"rows": fmt.Sprintf("%d", len(rows)),
	})

	file, err := os.Create(path)
	if err != nil {
		return "", &IOError{Op: "create file", Path: path, Err: err}
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(Header()); err != nil {
		return "", &IOError{Op: "write header to", Path: path, Err: err}
	}

	for _, row := range rows {
		if err := cw.Write(row.record()); err != nil {
			return "", &IOError{Op: "write row to", Path: path, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", &IOError{Op: "flush", Path: path, Err: err}
	}

	if err := file.Close(); err != nil {
		return "", &IOError{Op: "close", Path: path, Err: err}
	}

	return path, nil
}
