package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	// User input errors
	ErrEmployeeNotFound:  "Use 'abtrack employee list' to see tracked employees.",
	ErrBlankEmployeeName: "Provide a non-empty employee name.",
	ErrBlankCode:         "Provide a non-empty absence code, e.g. 'V' or 'T'.",
	ErrBlankCodeValue:    "Provide a label for the code, e.g. 'Vacation'.",
	ErrInvalidDate:       "Use the YYYY-MM-DD format, e.g. '2024-03-05'.",
	ErrInvalidMonth:      "Use a month name ('March'), a 1-12 number, or a phrase like 'last month'.",
	ErrInvalidYear:       "Use a four-digit year, e.g. '2024'.",
	ErrInvalidMinutes:    "Minutes must be a positive number and apply only to codes starting with 'T'.",

	// System errors
	ErrDocumentNotFound: "Run 'abtrack init' to create empty data files, or point --data-dir at existing ones.",
	ErrDocumentCorrupt:  "The data file could not be parsed. Restore it from a backup before continuing.",
	ErrPermissionDenied: "Check file permissions in your data directory (~/.local/share/abtrack/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	var ue *UserError
	if errors.As(err, &ue) && ue.Suggestion != "" {
		return ue.Suggestion
	}

	return ""
}
