package leads

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// LoadXLSX parses a lead list from the first sheet of an XLSX export.
// The first row is the header.
func LoadXLSX(path string) ([]model.BusinessRecord, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "leads: open xlsx")
	}
	if len(f.Sheets) == 0 {
		return nil, eris.New("leads: xlsx has no sheets")
	}

	sheet := f.Sheets[0]
	var header []string
	var records []model.BusinessRecord
	for i, row := range sheet.Rows {
		cells := rowToStrings(row)
		if i == 0 {
			header = cells
			continue
		}
		mapped := zipRow(header, cells)
		if mapped["Company Name"] == "" {
			continue
		}
		records = append(records, recordFromRow(mapped))
	}
	return records, nil
}

func rowToStrings(row *xlsx.Row) []string {
	out := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		out[i] = cell.String()
	}
	return out
}
