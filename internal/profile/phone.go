package profile

import "strings"

// FormatPhone normalizes a raw phone value into a display form and a
// tel: link form: "+44 1895 625855" → ("+44 1895 625855", "+441895625855").
func FormatPhone(raw string) (display, tel string) {
	display = strings.TrimSpace(raw)
	if display == "" {
		return "", ""
	}
	tel = strings.ReplaceAll(display, " ", "")
	if !strings.HasPrefix(tel, "+") {
		tel = "+" + tel
	}
	return display, tel
}
