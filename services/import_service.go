package services

import (
	"encoding/json"
	"fmt"
	"os"

	"taskplan-app/taskplan/models"
)

type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	TotalCount    int      `json:"total_count"`
	Errors        []string `json:"errors,omitempty"`
}

// ImportTasks loads the spreadsheet-derived JSON export and creates
// one task per record. Records are keyed by the export's own labels
// and mapped onto wire fields through models.TaskFields. A failing
// record is reported and skipped; the rest of the file still imports.
func (s *TaskService) ImportTasks(path string) (ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to read import file %s: %w", path, err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return ImportResult{}, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}

	result := ImportResult{TotalCount: len(records)}
	for _, record := range records {
		data := make(map[string]interface{}, len(models.TaskFields))
		for _, f := range models.TaskFields {
			if v, ok := record[f.Import]; ok {
				data[f.Wire] = v
			} else {
				data[f.Wire] = ""
			}
		}

		if _, err := s.CreateTask(data); err != nil {
			milestone, _ := record["milestone"].(string)
			if milestone == "" {
				milestone = "unknown"
			}
			result.Errors = append(result.Errors, fmt.Sprintf("failed to import %q: %v", milestone, err))
			continue
		}
		result.ImportedCount++
	}

	return result, nil
}
