package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"taskplan-app/taskplan/testutils"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "excel_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}
	return path
}

func TestImportTasks(t *testing.T) {
	db := testutils.SetupTestDB(t)
	taskService := NewTaskService(db)

	path := writeImportFile(t, `[
		{"stage": "A", "milestone": "M1", "start-date": "2024-01-01", "end-date": "2024-01-05",
		 "description": "spec review", "holiday-impact": "", "dependencies": "",
		 "responsible": "core team", "risk": "low"},
		{"stage": "B", "milestone": "M2", "start-date": "2024-02-01", "end-date": "2024-02-10"}
	]`)

	result, err := taskService.ImportTasks(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, 2, result.TotalCount)
	assert.Empty(t, result.Errors)

	tasks, err := taskService.GetAllTasks()
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)

	first, err := taskService.GetTaskById(tasks[0].ID)
	assert.NoError(t, err)
	assert.Equal(t, "A", first.Stage)
	assert.Equal(t, "M1", first.Milestone)
	assert.Equal(t, "2024-01-01", first.StartDate)
	assert.Equal(t, "2024-01-05", first.EndDate)
	assert.Equal(t, "spec review", first.Content)
	assert.Equal(t, "core team", first.Responsible)
	assert.Equal(t, "low", first.Risks)
	assert.Greater(t, first.ID, int64(0))
	assert.False(t, first.CreatedAt.IsZero())
}

func TestImportTasks_PartialFailure(t *testing.T) {
	db := testutils.SetupTestDB(t)
	taskService := NewTaskService(db)

	// The second record carries an explicit null stage, which the NOT
	// NULL constraint rejects; the surrounding records still import.
	path := writeImportFile(t, `[
		{"stage": "A", "milestone": "M1", "start-date": "2024-01-01", "end-date": "2024-01-05"},
		{"stage": null, "milestone": "M2", "start-date": "2024-02-01", "end-date": "2024-02-10"},
		{"stage": "C", "milestone": "M3", "start-date": "2024-03-01", "end-date": "2024-03-10"}
	]`)

	result, err := taskService.ImportTasks(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, 3, result.TotalCount)
	assert.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "M2")
}

func TestImportTasks_MissingFile(t *testing.T) {
	db := testutils.SetupTestDB(t)
	taskService := NewTaskService(db)

	_, err := taskService.ImportTasks(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
