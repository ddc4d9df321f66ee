package models

import "time"

// Task is one row of the project plan: an activity with a stage, a
// milestone and a date range. Dates are kept as the strings the client
// sent; nothing normalizes them into a date type.
type Task struct {
	ID            int64     `gorm:"column:id;primaryKey" json:"id"`
	Stage         string    `gorm:"column:stage;not null" json:"stage"`
	Milestone     string    `gorm:"column:milestone;not null" json:"milestone"`
	StartDate     string    `gorm:"column:start_date;not null" json:"startDate"`
	EndDate       string    `gorm:"column:end_date;not null" json:"endDate"`
	Content       string    `gorm:"column:content" json:"description"`
	HolidayImpact string    `gorm:"column:holiday_impact" json:"holidayImpact"`
	Dependencies  string    `gorm:"column:dependencies" json:"dependencies"`
	Responsible   string    `gorm:"column:responsible" json:"responsible"`
	Risks         string    `gorm:"column:risks" json:"risks"`
	Completed     bool      `gorm:"column:completed" json:"completed"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TaskField ties together the three names one task attribute goes by:
// the JSON key the frontend uses, the column it is stored under, and
// the label the spreadsheet-derived import file uses.
type TaskField struct {
	Wire   string
	Column string
	Import string
}

// TaskFields is the single source of truth for the naming of every
// free-text task column. The statement builders, the update
// merge-patch and the bulk import all consult this table instead of
// spelling the mapping out per call site. The completed flag is not
// listed; it is boolean and handled on its own.
var TaskFields = []TaskField{
	{Wire: "stage", Column: "stage", Import: "stage"},
	{Wire: "milestone", Column: "milestone", Import: "milestone"},
	{Wire: "startDate", Column: "start_date", Import: "start-date"},
	{Wire: "endDate", Column: "end_date", Import: "end-date"},
	{Wire: "description", Column: "content", Import: "description"},
	{Wire: "holidayImpact", Column: "holiday_impact", Import: "holiday-impact"},
	{Wire: "dependencies", Column: "dependencies", Import: "dependencies"},
	{Wire: "responsible", Column: "responsible", Import: "responsible"},
	{Wire: "risks", Column: "risks", Import: "risk"},
}

func (t *Task) columnRef(column string) *string {
	switch column {
	case "stage":
		return &t.Stage
	case "milestone":
		return &t.Milestone
	case "start_date":
		return &t.StartDate
	case "end_date":
		return &t.EndDate
	case "content":
		return &t.Content
	case "holiday_impact":
		return &t.HolidayImpact
	case "dependencies":
		return &t.Dependencies
	case "responsible":
		return &t.Responsible
	case "risks":
		return &t.Risks
	}
	return nil
}

// ColumnValue reports the stored value of one of the free-text columns
// listed in TaskFields.
func (t *Task) ColumnValue(column string) string {
	if ref := t.columnRef(column); ref != nil {
		return *ref
	}
	return ""
}

// ApplyPatch merges a wire-format request body into the task: only
// keys present in the patch overwrite fields, everything else keeps
// its stored value.
func (t *Task) ApplyPatch(patch map[string]interface{}) {
	for _, f := range TaskFields {
		if v, ok := patch[f.Wire].(string); ok {
			if ref := t.columnRef(f.Column); ref != nil {
				*ref = v
			}
		}
	}
	if v, ok := patch["completed"].(bool); ok {
		t.Completed = v
	}
}
