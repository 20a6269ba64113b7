package review

import "strings"

// Matches reports whether a derived row is visible for the given search
// query. The empty query matches everything; otherwise the query must be
// a case-insensitive substring of the employee name, the department, or
// the derived tier label.
func Matches(row DisplayRow, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(row.EmployeeName), q) ||
		strings.Contains(strings.ToLower(string(row.Department)), q) ||
		strings.Contains(strings.ToLower(string(row.PerformanceTier)), q)
}

// FilterRows narrows a derived view to the rows matching query,
// preserving order. Recomputed per keystroke; a linear scan is fine at
// the collection sizes this app holds.
func FilterRows(rows []DisplayRow, query string) []DisplayRow {
	if query == "" {
		return rows
	}
	out := make([]DisplayRow, 0, len(rows))
	for _, row := range rows {
		if Matches(row, query) {
			out = append(out, row)
		}
	}
	return out
}
