// Package source provides the machine list sources of the inventory tool.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"inventory-tool/internal/model"
)

// TSVSource reads a tab-separated machine list, one name<TAB>address per line.
type TSVSource struct {
	path   string
	logger zerolog.Logger
}

// NewTSVSource creates a source for the machine list at path.
func NewTSVSource(path string, logger zerolog.Logger) *TSVSource {
	return &TSVSource{
		path:   path,
		logger: logger.With().Str("component", "tsv-source").Logger(),
	}
}

// Name returns the source identifier.
func (s *TSVSource) Name() string {
	return "file"
}

// Path returns the machine list path.
func (s *TSVSource) Path() string {
	return s.path
}

// Load reads the machine list.
// It returns *MissingInputError if the file does not exist and *ParseError on
// the first malformed line.
func (s *TSVSource) Load(ctx context.Context) ([]model.MachineRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: s.path}
		}
		return nil, fmt.Errorf("failed to open machine list: %w", err)
	}
	defer f.Close()

	records, err := ParseTSV(ctx, f, s.path)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("path", s.path).Int("records", len(records)).Msg("machine list loaded")
	return records, nil
}

// ParseTSV parses name<TAB>address lines from r.
// name is only used to label parse errors.
func ParseTSV(ctx context.Context, r io.Reader, name string) ([]model.MachineRecord, error) {
	var records []model.MachineRecord

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++

		line := scanner.Text()
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, &ParseError{Path: name, Line: lineNo, Text: line, Fields: len(fields)}
		}

		records = append(records, model.MachineRecord{Name: fields[0], Address: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return records, nil
}
