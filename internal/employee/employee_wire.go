package employee

import "strconv"

// The remote service serializes decimal salaries as strings; tolerate
// both string and empty values the way the previous client did
// (parseFloat(salary || 0)).
func parseSalary(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
