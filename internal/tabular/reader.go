package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"critiplot/internal/domain"
	domaintypes "critiplot/internal/domain/types"
)

// DefaultMaxBytes is the input size cap used when none is configured.
const DefaultMaxBytes int64 = 20 << 20

// Reader loads RawTables from files, refusing anything above MaxBytes.
type Reader struct {
	MaxBytes int64
}

// New returns a Reader with the given size cap; max <= 0 selects DefaultMaxBytes.
func New(max int64) *Reader {
	if max <= 0 {
		max = DefaultMaxBytes
	}
	return &Reader{MaxBytes: max}
}

// ReadFile reads the table at path. The format is chosen by extension.
func (r *Reader) ReadFile(path string) (domain.RawTable, error) {
	if _, err := kindOf(path); err != nil {
		return domain.RawTable{}, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return domain.RawTable{}, err
	}
	if fi.Size() > r.MaxBytes {
		return domain.RawTable{}, fmt.Errorf("%w: %s is %d bytes (limit %d)",
			domaintypes.ErrInputTooLarge, filepath.Base(path), fi.Size(), r.MaxBytes)
	}
	f, err := os.Open(path)
	if err != nil {
		return domain.RawTable{}, err
	}
	defer f.Close()
	return r.Read(filepath.Base(path), f)
}

// Read parses src as the format implied by name's extension.
func (r *Reader) Read(name string, src io.Reader) (domain.RawTable, error) {
	kind, err := kindOf(name)
	if err != nil {
		return domain.RawTable{}, err
	}
	b, err := io.ReadAll(io.LimitReader(src, r.MaxBytes+1))
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(b)) > r.MaxBytes {
		return domain.RawTable{}, fmt.Errorf("%w: %s exceeds %d bytes",
			domaintypes.ErrInputTooLarge, name, r.MaxBytes)
	}

	var rows [][]string
	switch kind {
	case kindCSV:
		rows, err = readDelimited(b, ',')
	case kindTSV:
		rows, err = readDelimited(b, '\t')
	case kindXLSX:
		rows, err = readWorkbook(b)
	}
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return build(name, rows), nil
}

type fileKind int

const (
	kindCSV fileKind = iota
	kindTSV
	kindXLSX
)

func kindOf(name string) (fileKind, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return kindCSV, nil
	case ".tsv", ".txt":
		return kindTSV, nil
	case ".xlsx", ".xlsm":
		return kindXLSX, nil
	case ".xls":
		return 0, fmt.Errorf("%w: %s (legacy .xls workbooks are not supported, save as .xlsx)",
			domaintypes.ErrUnsupportedInput, name)
	default:
		return 0, fmt.Errorf("%w: %s (use .csv, .tsv or .xlsx)", domaintypes.ErrUnsupportedInput, name)
	}
}

func readDelimited(b []byte, comma rune) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(b))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}

// readWorkbook returns the rows of the first sheet.
func readWorkbook(b []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func build(name string, rows [][]string) domain.RawTable {
	t := domain.RawTable{Source: name}
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if t.Header == nil {
			t.Header = append([]string(nil), row...)
			continue
		}
		if len(row) < len(t.Header) {
			padded := make([]string, len(t.Header))
			copy(padded, row)
			row = padded
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Compile-time assertion that Reader implements domain.TableReader.
var _ domain.TableReader = (*Reader)(nil)
