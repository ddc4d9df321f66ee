package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskplan-app/taskplan/services"
)

func RegisterTaskRoutes(group *gin.RouterGroup, taskService services.TaskServiceInterface, importFile string) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, taskService) })
	group.POST("/tasks", func(c *gin.Context) { CreateTask(c, taskService) })
	group.PUT("/tasks/:id", func(c *gin.Context) { UpdateTask(c, taskService) })
	group.PUT("/tasks/:id/toggle-complete", func(c *gin.Context) { ToggleTaskComplete(c, taskService) })
	group.DELETE("/tasks/batch-delete", func(c *gin.Context) { BatchDeleteTasks(c, taskService) })
	group.DELETE("/tasks/:id", func(c *gin.Context) { DeleteTask(c, taskService) })
	// The import endpoint accepts GET as well so it can be triggered
	// from a browser address bar.
	group.POST("/import-data", func(c *gin.Context) { ImportData(c, taskService, importFile) })
	group.GET("/import-data", func(c *gin.Context) { ImportData(c, taskService, importFile) })
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

func GetTasks(c *gin.Context, taskService services.TaskServiceInterface) {
	tasks, err := taskService.GetAllTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, taskService services.TaskServiceInterface) {
	var taskData map[string]interface{}
	if err := c.ShouldBindJSON(&taskData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdTask, err := taskService.CreateTask(taskData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, createdTask)
}

func UpdateTask(c *gin.Context, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var taskData map[string]interface{}
	if err := c.ShouldBindJSON(&taskData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedTask, err := taskService.UpdateTask(id, taskData)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updatedTask)
}

func ToggleTaskComplete(c *gin.Context, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := taskService.ToggleTaskComplete(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, taskService services.TaskServiceInterface) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	deleted, err := taskService.DeleteTask(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func BatchDeleteTasks(c *gin.Context, taskService services.TaskServiceInterface) {
	var body struct {
		TaskIds []int64 `json:"taskIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body.TaskIds) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No task IDs provided"})
		return
	}

	result := taskService.BatchDeleteTasks(body.TaskIds)

	// Per-id failures are reported, not fatal; the batch as a whole
	// still succeeds.
	response := gin.H{
		"message":         fmt.Sprintf("Successfully deleted %d tasks", result.DeletedCount),
		"deleted_count":   result.DeletedCount,
		"total_requested": result.TotalRequested,
	}
	if len(result.Errors) > 0 {
		response["errors"] = result.Errors
	}
	c.JSON(http.StatusOK, response)
}

func ImportData(c *gin.Context, taskService services.TaskServiceInterface, importFile string) {
	result, err := taskService.ImportTasks(importFile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"message":        fmt.Sprintf("Successfully imported %d tasks", result.ImportedCount),
		"imported_count": result.ImportedCount,
		"total_count":    result.TotalCount,
	}
	if len(result.Errors) > 0 {
		response["errors"] = result.Errors
		response["warning"] = fmt.Sprintf("%d records failed to import", len(result.Errors))
	}
	c.JSON(http.StatusOK, response)
}
