package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/katalvlaran/harmonic"
)

// writeCSV writes a "vertex,value" header and one row per vertex.
func writeCSV(w io.Writer, field []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"vertex", "value"}); err != nil {
		return err
	}
	row := make([]string, 2)
	for i, v := range field {
		row[0] = strconv.Itoa(i)
		row[1] = strconv.FormatFloat(v, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// fieldDoc is the JSON output document.
type fieldDoc struct {
	Run        string    `json:"run"`
	Status     string    `json:"status"`
	Method     string    `json:"method"`
	Weighting  string    `json:"weighting"`
	Iterations int       `json:"iterations"`
	Residual   float64   `json:"residual"`
	FellBack   bool      `json:"fell_back,omitempty"`
	Values     []float64 `json:"values"`
}

func writeJSON(w io.Writer, res *harmonic.Result, field []float64) error {
	doc := fieldDoc{
		Run:        res.RunID,
		Status:     res.Status.String(),
		Method:     res.Method.String(),
		Weighting:  res.Weighting.String(),
		Iterations: res.Iterations,
		Residual:   res.Residual,
		FellBack:   res.FellBack,
		Values:     field,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
