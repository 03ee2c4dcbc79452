package datafile

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"laborlens/domain/labor"
	"laborlens/internal"
)

// Required columns of the labor dataset file
const (
	columnSeriesID = "series_id"
	columnDate     = "date"
	columnYear     = "year"
	columnValue    = "value"
)

// dateLayouts are tried in order when parsing the date column
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// FileSource loads observations from a CSV or XLSX file
type FileSource struct {
	path   string
	reader *DataReader
}

// NewFileSource creates a file-backed observation source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, reader: NewDataReader(path)}
}

// Describe names the source for startup logging
func (s *FileSource) Describe() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Load reads and types every row of the file. Any malformed cell is
// an error: the dashboard treats a bad source as fatal rather than
// rendering partial data.
func (s *FileSource) Load(ctx context.Context) ([]labor.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := s.reader.ReadTable()
	if err != nil {
		return nil, err
	}
	if err := requireColumns(table, columnSeriesID, columnDate, columnValue); err != nil {
		return nil, err
	}

	observations := make([]labor.Observation, 0, len(table.Rows))
	for i, row := range table.Rows {
		obs, err := parseObservation(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err) // +2: header row, 1-indexed
		}
		observations = append(observations, obs)
	}

	internal.DefaultLogger.Info("[FileSource] Loaded %d observations from %s", len(observations), s.path)
	return observations, nil
}

// requireColumns verifies the header row carries every needed column
func requireColumns(table *RawTable, names ...string) error {
	present := make(map[string]bool, len(table.Headers))
	for _, h := range table.Headers {
		present[h] = true
	}

	var missing []string
	for _, name := range names {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("data file is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// parseObservation types one raw row. The year column is optional per
// row; a missing year is derived from the date downstream.
func parseObservation(row RawRow) (labor.Observation, error) {
	obs := labor.Observation{SeriesID: labor.SeriesID(row[columnSeriesID])}
	if obs.SeriesID == "" {
		return obs, fmt.Errorf("empty series_id")
	}

	date, err := parseDate(row[columnDate])
	if err != nil {
		return obs, err
	}
	obs.Date = date

	if raw := row[columnYear]; raw != "" {
		year, err := parseYear(raw)
		if err != nil {
			return obs, err
		}
		obs.Year = year
	}

	value, err := strconv.ParseFloat(row[columnValue], 64)
	if err != nil {
		return obs, fmt.Errorf("invalid value %q: %w", row[columnValue], err)
	}
	obs.Value = value

	return obs, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// parseYear accepts integer years and float-formatted integers, which
// some exporters write for merged frames (e.g. "2019.0")
func parseYear(raw string) (int, error) {
	if year, err := strconv.Atoi(raw); err == nil {
		return year, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	return 0, fmt.Errorf("invalid year %q", raw)
}
