package leads

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// splitLine splits one CSV line on unquoted commas. A double quote
// toggles the in-field state; quote characters themselves are dropped
// and each field is whitespace-trimmed. Downstream extraction assumes
// trimmed values, so this contract must hold exactly.
func splitLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

// LoadCSV parses a lead CSV file. The first non-blank line is the
// header; blank lines are skipped.
func LoadCSV(path string) ([]model.BusinessRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "leads: read csv")
	}

	var lines []string
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSuffix(l, "\r"))
		}
	}
	if len(lines) == 0 {
		return nil, eris.New("leads: empty csv")
	}

	header := splitLine(lines[0])
	var records []model.BusinessRecord
	for _, line := range lines[1:] {
		row := zipRow(header, splitLine(line))
		if row["Company Name"] == "" {
			continue
		}
		records = append(records, recordFromRow(row))
	}
	return records, nil
}
