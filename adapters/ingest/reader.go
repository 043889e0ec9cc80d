// Package ingest loads the dashboard's tabular source files. CSV is the
// native format of the open-data exports; XLSX is accepted for datasets
// redistributed as spreadsheets.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"transitdash/domain/table"
	"transitdash/internal/errors"

	"github.com/xuri/excelize/v2"
)

// RawData is a parsed file before typing: a header row plus string records.
type RawData struct {
	Headers []string
	Records [][]string
}

// Reader reads one tabular file, dispatching on extension.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewReader creates a reader for a CSV or Excel file.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".xlsx", ".xls":
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read parses the file into raw string records.
func (r *Reader) Read() (*RawData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IngestError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	switch r.fileType {
	case "xlsx":
		return r.readExcel()
	default:
		return r.readCSV()
	}
}

func (r *Reader) readCSV() (*RawData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open CSV file %s", r.filePath)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // exports have ragged trailing columns
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read CSV file %s", r.filePath)
	}
	log.Printf("[Ingest] CSV file %s read in %.2fms (%d rows)",
		filepath.Base(r.filePath), float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return splitHeader(rows)
}

func (r *Reader) readExcel() (*RawData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open Excel file %s", r.filePath)
	}
	defer f.Close()

	// Data exports carry a single sheet; read the first one present.
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.IngestError(fmt.Sprintf("Excel file %s has no sheets", r.filePath))
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	log.Printf("[Ingest] Excel file %s read (%d rows)", filepath.Base(r.filePath), len(rows))

	return splitHeader(rows)
}

func splitHeader(rows [][]string) (*RawData, error) {
	if len(rows) == 0 {
		return nil, errors.IngestError("file has no header row")
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &RawData{Headers: headers, Records: rows[1:]}, nil
}

// Load reads, types, and normalizes one dataset file in a single call.
func Load(name, path string, rules table.FillRules) (*table.Table, error) {
	raw, err := NewReader(path).Read()
	if err != nil {
		return nil, err
	}
	t, err := table.FromRecords(name, raw.Headers, raw.Records)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build table %s", name)
	}
	return table.Normalize(t, rules), nil
}
