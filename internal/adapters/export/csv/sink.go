package csv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

const (
	outputFileMode  = 0o644
	outputDirMode   = 0o755
	tempFilePattern = ".swapbot-export-*.tmp"
)

// Sink writes the exported history as a fully quoted CSV file.
type Sink struct {
	path string
}

var _ ports.ExportSink = (*Sink)(nil)

func NewSink(path string) (*Sink, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("export output path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve export output path: %w", err)
	}

	return &Sink{path: abs}, nil
}

func (s *Sink) Path() string {
	return s.path
}

func (s *Sink) WriteHistory(ctx context.Context, records []domain.HistoryRecord, anonymized bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(Encode(records, anonymized))
}

// Encode renders the header and one row per record. Every field is quoted.
func Encode(records []domain.HistoryRecord, anonymized bool) []byte {
	userLabel := "User"
	if anonymized {
		userLabel = "Encrypted User"
	}

	var buf bytes.Buffer
	writeRow(&buf, "Trade ID", "Date", "Time", userLabel, "Direction", "Item")
	for _, record := range records {
		writeRow(&buf, record.TradeID, record.Date, record.Time, record.User, string(record.Direction), record.Item)
	}

	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

func (s *Sink) write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), outputDirMode); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp export file: %w", err)
	}

	if err := tempFile.Chmod(outputFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp export file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}

	cleanup = false
	return nil
}
