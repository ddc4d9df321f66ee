package services

import (
	"fmt"
	"strings"

	"taskplan-app/taskplan/database"
	"taskplan-app/taskplan/models"
)

type BatchDeleteResult struct {
	DeletedCount   int      `json:"deleted_count"`
	TotalRequested int      `json:"total_requested"`
	Errors         []string `json:"errors,omitempty"`
}

type TaskServiceInterface interface {
	GetAllTasks() ([]models.Task, error)
	GetTaskById(id int64) (models.Task, error)
	CreateTask(data map[string]interface{}) (models.Task, error)
	UpdateTask(id int64, data map[string]interface{}) (models.Task, error)
	ToggleTaskComplete(id int64) (models.Task, error)
	DeleteTask(id int64) (bool, error)
	BatchDeleteTasks(ids []int64) BatchDeleteResult
	ImportTasks(path string) (ImportResult, error)
}

type TaskService struct {
	db *database.Database
}

func NewTaskService(db *database.Database) *TaskService {
	return &TaskService{db: db}
}

// GetAllTasks returns every task ordered by start_date. Dates are
// stored as text, so the order is lexicographic over whatever format
// the rows carry.
func (s *TaskService) GetAllTasks() ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.db.Query(&tasks, "SELECT * FROM tasks ORDER BY start_date"); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(id int64) (models.Task, error) {
	var tasks []models.Task
	if err := s.db.Query(&tasks, "SELECT * FROM tasks WHERE id = ?", id); err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return tasks[0], nil
}

// CreateTask inserts a task from a wire-format body and returns the
// stored row, including the generated id and timestamps. Required
// fields are not pre-checked; a missing one surfaces as the engine's
// NOT NULL violation.
func (s *TaskService) CreateTask(data map[string]interface{}) (models.Task, error) {
	columns := make([]string, 0, len(models.TaskFields))
	placeholders := make([]string, 0, len(models.TaskFields))
	args := make([]interface{}, 0, len(models.TaskFields))
	for _, f := range models.TaskFields {
		columns = append(columns, f.Column)
		placeholders = append(placeholders, "?")
		args = append(args, data[f.Wire])
	}

	stmt := fmt.Sprintf("INSERT INTO tasks (%s) VALUES (%s)",
		strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	var task models.Task
	if err := s.db.InsertAndFetch(&task, "tasks", stmt, args...); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask loads the task, merges the patch over it and writes the
// full row back. Fields absent from the body keep their stored values;
// updated_at advances to the storage-side clock.
func (s *TaskService) UpdateTask(id int64, data map[string]interface{}) (models.Task, error) {
	task, err := s.GetTaskById(id)
	if err != nil {
		return models.Task{}, err
	}
	task.ApplyPatch(data)

	sets := make([]string, 0, len(models.TaskFields)+2)
	args := make([]interface{}, 0, len(models.TaskFields)+2)
	for _, f := range models.TaskFields {
		sets = append(sets, f.Column+" = ?")
		args = append(args, task.ColumnValue(f.Column))
	}
	sets = append(sets, "completed = ?", "updated_at = CURRENT_TIMESTAMP")
	args = append(args, task.Completed, id)

	stmt := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := s.db.Execute(stmt, args...); err != nil {
		return models.Task{}, err
	}

	return s.GetTaskById(id)
}

func (s *TaskService) ToggleTaskComplete(id int64) (models.Task, error) {
	task, err := s.GetTaskById(id)
	if err != nil {
		return models.Task{}, err
	}

	_, err = s.db.Execute(
		"UPDATE tasks SET completed = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		!task.Completed, id)
	if err != nil {
		return models.Task{}, err
	}

	return s.GetTaskById(id)
}

// DeleteTask reports whether a row was actually removed, not merely
// whether the statement executed.
func (s *TaskService) DeleteTask(id int64) (bool, error) {
	affected, err := s.db.Execute("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// BatchDeleteTasks deletes each id independently. One id failing, by
// not existing or by a storage error, never stops the rest; failures
// are reported per id alongside the count of successful deletes.
func (s *TaskService) BatchDeleteTasks(ids []int64) BatchDeleteResult {
	result := BatchDeleteResult{TotalRequested: len(ids)}
	for _, id := range ids {
		deleted, err := s.DeleteTask(id)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("error deleting task %d: %v", id, err))
		case !deleted:
			result.Errors = append(result.Errors, fmt.Sprintf("task %d not found", id))
		default:
			result.DeletedCount++
		}
	}
	return result
}
