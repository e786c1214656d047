package output

import (
	"abtrack/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryOutput represents one absence entry in JSON output.
type EntryOutput struct {
	Date    string `json:"date"`
	Code    string `json:"code"`
	Minutes int    `json:"minutes,omitempty"`
	Comment string `json:"comment,omitempty"`
	Cell    string `json:"cell"`
}

// NewEntryOutput creates an EntryOutput from an Absence.
func NewEntryOutput(a model.Absence) EntryOutput {
	return EntryOutput{
		Date:    a.Date,
		Code:    a.Code,
		Minutes: a.Minutes,
		Comment: a.Comment,
		Cell:    a.CellText(),
	}
}

// EntriesResponse represents the entries of one employee/date in JSON.
type EntriesResponse struct {
	Employee string        `json:"employee"`
	Date     string        `json:"date"`
	Entries  []EntryOutput `json:"entries"`
}

// NewEntriesResponse creates an EntriesResponse.
func NewEntriesResponse(name, date string, entries []model.Absence) *EntriesResponse {
	outputs := make([]EntryOutput, len(entries))
	for i, a := range entries {
		outputs[i] = NewEntryOutput(a)
	}
	return &EntriesResponse{
		Employee: name,
		Date:     date,
		Entries:  outputs,
	}
}

// EmployeeOutput represents one employee record in JSON output.
type EmployeeOutput struct {
	EmployeeID   int    `json:"employee_id"`
	Name         string `json:"name"`
	Active       bool   `json:"active"`
	AbsenceCount int    `json:"absence_count"`
}

// NewEmployeeOutput creates an EmployeeOutput from an Employee.
func NewEmployeeOutput(e *model.Employee) *EmployeeOutput {
	return &EmployeeOutput{
		EmployeeID:   e.EmployeeID,
		Name:         e.Name,
		Active:       e.Active,
		AbsenceCount: len(e.Absences),
	}
}

// EmployeesResponse represents the employee list in JSON.
type EmployeesResponse struct {
	Employees []*EmployeeOutput `json:"employees"`
	Count     int               `json:"count"`
}

// NewEmployeesResponse creates an EmployeesResponse.
func NewEmployeesResponse(employees []*model.Employee) *EmployeesResponse {
	outputs := make([]*EmployeeOutput, len(employees))
	for i, e := range employees {
		outputs[i] = NewEmployeeOutput(e)
	}
	return &EmployeesResponse{Employees: outputs, Count: len(outputs)}
}

// CodesResponse represents the code catalog in JSON.
type CodesResponse struct {
	Codes []model.CodeEntry `json:"codes"`
	Count int               `json:"count"`
}

// MonthResponse represents the month view in JSON: per-employee day cells
// with their joined comments, per-code summary counts, and the per-day tally
// grid.
type MonthResponse struct {
	Year     int                          `json:"year"`
	Month    int                          `json:"month"`
	Days     []string                     `json:"days"`
	Cells    map[string]map[string]string `json:"cells"`
	Comments map[string]map[string]string `json:"comments"`
	Summary  map[string]map[string]int    `json:"summary"`
	Tally    map[string]map[string]int    `json:"tally"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintError outputs an error response.
func (j *JSONFormatter) PrintError(message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     "error",
		Error:      message,
		Suggestion: suggestion,
	})
}
