// Package catalog loads the coffee review catalog from disk and serves
// immutable in-memory snapshots of it to the rest of the system.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"

	"github.com/beanlog/cuppa/pkg/models"
)

// ErrUnavailable indicates the catalog source could not be read. Callers
// must surface a data-unavailable condition rather than treating it as an
// empty catalog.
var ErrUnavailable = errors.New("catalog unavailable")

// Required column headers. Numeric columns are optional; a missing one
// yields zero for every record.
const (
	colName   = "name"
	colOrigin = "origin"
	colDesc   = "desc_1"
)

var numericCols = []string{"acid", "body", "flavor", "aftertaste", "aroma", "rating"}

// Stats summarizes one catalog load.
type Stats struct {
	Records      int
	Countries    int
	Other        int
	CoercedCells int
	Encoding     string
}

// Load reads the catalog file at path into ordered records.
//
// The file bytes are decoded by trying UTF-8, then EUC-KR (cp949), then
// ISO 8859-1 (latin1); only when no encoding decodes does the load fail.
// Malformed numeric cells and missing descriptions are coerced (zero and
// empty string) so a partially bad file still yields a usable catalog.
func Load(path string) ([]models.Record, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}

	text, encName, err := decode(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}

	records, stats, err := parse(text)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	stats.Encoding = encName
	return records, stats, nil
}

// decode converts raw file bytes to a UTF-8 string using the fixed
// encoding fallback order. EUC-KR attempts that produce replacement
// runes count as failures; latin1 accepts any byte sequence, so it is
// the terminal fallback.
func decode(data []byte) (string, string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	if out, err := korean.EUCKR.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
		return string(out), "euc-kr", nil
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("no supported encoding decodes the file: %v", err)
	}
	return string(out), "latin1", nil
}

// parse reads the decoded CSV text into records. Rows shorter than the
// header are padded with empty cells; longer rows are truncated.
func parse(text string) ([]models.Record, Stats, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("parse csv: %v", err)
	}
	if len(rows) == 0 {
		return nil, Stats{}, fmt.Errorf("parse csv: no header row")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colName, colOrigin, colDesc} {
		if _, ok := cols[required]; !ok {
			return nil, Stats{}, fmt.Errorf("missing required column %q", required)
		}
	}

	var stats Stats
	countries := make(map[string]struct{})
	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		num := func(name string) float64 {
			v, ok := parseScore(cell(name))
			if !ok {
				stats.CoercedCells++
			}
			return v
		}

		rec := models.Record{
			Name:        cell(colName),
			OriginText:  cell(colOrigin),
			Description: cell(colDesc),
			Acid:        num("acid"),
			Body:        num("body"),
			Flavor:      num("flavor"),
			Aftertaste:  num("aftertaste"),
			Aroma:       num("aroma"),
			Rating:      num("rating"),
		}
		rec.Country = ResolveCountry(rec.OriginText)
		if rec.Country == models.CountryOther {
			stats.Other++
		} else {
			countries[rec.Country] = struct{}{}
		}
		records = append(records, rec)
	}

	stats.Records = len(records)
	stats.Countries = len(countries)
	return records, stats, nil
}

// parseScore coerces a numeric cell. Unparseable, non-finite and
// negative values all become zero so every record carries a full set of
// non-negative scores.
func parseScore(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
