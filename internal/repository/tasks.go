package repository

import (
	"errors"
	"strings"

	"github.com/taskdeck-dev/taskdeck/db"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/types"
	"gorm.io/gorm"
)

var (
	// ErrTitleRequired rejects a create or update whose title is empty
	// after trimming. Nothing is persisted.
	ErrTitleRequired = errors.New("title is required")

	// ErrTaskNotFound covers both a missing id and an id owned by
	// another user. Callers never learn which one it was.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskInput carries the form fields for a new task. Optional fields left
// as empty strings are stored as NULL.
type TaskInput struct {
	Title       string
	Description string
	Category    string
	DueDate     string
	DueTime     string
	Priority    string
}

// UpdateInput is TaskInput plus the status field, which only the edit
// form exposes.
type UpdateInput struct {
	TaskInput
	Status string
}

// ListFilter narrows and orders a task listing. Empty Category or Status
// means no constraint on that field. Order is "priority" or "due_date";
// anything else falls back to the due-date ordering.
type ListFilter struct {
	Category string
	Status   string
	Order    string
}

// List returns the caller's tasks matching every provided filter.
//
// Priority ordering ranks High=1, Normal=2 and anything else=3, with the
// due date as tie-break. Both orderings place tasks without a due date
// after all dated ones, and fall back to insertion order on full ties.
func List(userID uint, filter ListFilter) ([]models.Task, error) {
	query := db.DB.Where("user_id = ?", userID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Order == types.OrderPriority {
		query = query.Order("CASE priority WHEN 'High' THEN 1 WHEN 'Normal' THEN 2 ELSE 3 END")
	}

	query = query.Order("due_date IS NULL").Order("due_date").Order("id")

	var tasks []models.Task

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// DistinctCategories lists the caller's category labels for the filter
// dropdown, skipping NULL and empty values.
func DistinctCategories(userID uint) ([]string, error) {
	var categories []string

	err := db.DB.Model(&models.Task{}).
		Distinct("category").
		Where("user_id = ? AND category IS NOT NULL AND category <> ''", userID).
		Order("category").
		Pluck("category", &categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Get fetches a single task for the edit form.
func Get(userID uint, id uint) (*models.Task, error) {
	var task models.Task

	err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// Create stores a new Pending task owned by userID.
func Create(userID uint, input TaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)

	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := strings.TrimSpace(input.Priority)

	if priority == "" {
		priority = types.PriorityNormal
	}

	task := models.Task{
		UserID:      userID,
		Title:       title,
		Description: optional(input.Description),
		Category:    optional(input.Category),
		DueDate:     optional(input.DueDate),
		DueTime:     optional(input.DueTime),
		Priority:    priority,
		Status:      types.StatusPending,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// Update overwrites every field of the task in one statement. A missing
// or foreign id yields ErrTaskNotFound without revealing which.
func Update(userID uint, id uint, input UpdateInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)

	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := strings.TrimSpace(input.Priority)

	if priority == "" {
		priority = types.PriorityNormal
	}

	status := strings.TrimSpace(input.Status)

	if status == "" {
		status = types.StatusPending
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": optional(input.Description),
		"category":    optional(input.Category),
		"due_date":    optional(input.DueDate),
		"due_time":    optional(input.DueTime),
		"priority":    priority,
		"status":      status,
	}

	result := db.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return Get(userID, id)
}

// Delete removes the task if the caller owns it. Deleting a missing or
// foreign id is a no-op, not an error.
func Delete(userID uint, id uint) error {
	return db.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{}).Error
}

// Complete marks the task Completed if the caller owns it. Missing,
// foreign and already-completed ids are all no-ops.
func Complete(userID uint, id uint) error {
	return db.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", types.StatusCompleted).Error
}

func optional(value string) *string {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return nil
	}

	return &trimmed
}
