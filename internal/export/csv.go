package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"laborlens/domain/labor"
)

// Filename is the download name offered for an exported view
const Filename = "filtered_bls_data.csv"

const dateLayout = "2006-01-02"

// columns is the export header row. The same columns are accepted back
// by the file source, so an exported view is itself a loadable dataset.
var columns = []string{"series_id", "date", "year", "value", "series_name"}

// Write streams a filtered view as CSV. Values use the shortest
// representation that parses back to the identical float64.
func Write(w io.Writer, view labor.FilteredView) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, obs := range view.Observations {
		record := []string{
			string(obs.SeriesID),
			obs.Date.Format(dateLayout),
			strconv.Itoa(obs.Year),
			strconv.FormatFloat(obs.Value, 'g', -1, 64),
			obs.SeriesName,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the view to path, creating or truncating the file
func WriteFile(path string, view labor.FilteredView) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, view)
}
