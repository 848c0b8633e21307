package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/flash"
	"github.com/taskdeck-dev/taskdeck/internal/repository"
	"github.com/taskdeck-dev/taskdeck/internal/types"
	"github.com/taskdeck-dev/taskdeck/internal/utils"
)

type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
	DueDate     string `form:"due_date"`
	DueTime     string `form:"due_time"`
	Priority    string `form:"priority"`
	Status      string `form:"status"`
}

// Index renders the task list. The category, status and order query
// parameters map straight onto the repository filter.
func Index(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	filter := repository.ListFilter{
		Category: ctx.Query("category"),
		Status:   ctx.Query("status"),
		Order:    ctx.DefaultQuery("order", types.OrderDueDate),
	}

	tasks, err := repository.List(currentUser.ID, filter)

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	categories, err := repository.DistinctCategories(currentUser.ID)

	if err != nil {
		log.Printf("Failed to list categories: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Username":   currentUser.Username,
		"Tasks":      tasks,
		"Categories": categories,
		"Filter":     filter,
		"Notice":     flash.Pop(ctx),
	})
}

func ShowAddTask(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "task_form.html", gin.H{
		"Action": "Add",
		"Notice": flash.Pop(ctx),
	})
}

func AddTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var form TaskForm

	if err := ctx.ShouldBind(&form); err != nil {
		flash.Set(ctx, "Invalid form submission", "warning")
		ctx.Redirect(http.StatusSeeOther, "/add")
		return
	}

	_, err = repository.Create(userID, repository.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		DueDate:     form.DueDate,
		DueTime:     form.DueTime,
		Priority:    form.Priority,
	})

	if err != nil {
		if errors.Is(err, repository.ErrTitleRequired) {
			flash.Set(ctx, "Title is required", "warning")
			ctx.Redirect(http.StatusSeeOther, "/add")
			return
		}
		log.Printf("Failed to create task: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "Task added", "success")
	ctx.Redirect(http.StatusSeeOther, "/")
}

func ShowEditTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		flash.Set(ctx, "Task not found", "danger")
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	task, err := repository.Get(userID, taskID)

	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			flash.Set(ctx, "Task not found", "danger")
			ctx.Redirect(http.StatusSeeOther, "/")
			return
		}
		log.Printf("Failed to fetch task: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.HTML(http.StatusOK, "task_form.html", gin.H{
		"Action": "Edit",
		"Task":   task,
		"Notice": flash.Pop(ctx),
	})
}

func EditTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		flash.Set(ctx, "Task not found", "danger")
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	var form TaskForm

	if err := ctx.ShouldBind(&form); err != nil {
		flash.Set(ctx, "Invalid form submission", "warning")
		ctx.Redirect(http.StatusSeeOther, "/edit/"+ctx.Param("id"))
		return
	}

	_, err = repository.Update(userID, taskID, repository.UpdateInput{
		TaskInput: repository.TaskInput{
			Title:       form.Title,
			Description: form.Description,
			Category:    form.Category,
			DueDate:     form.DueDate,
			DueTime:     form.DueTime,
			Priority:    form.Priority,
		},
		Status: form.Status,
	})

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTitleRequired):
			flash.Set(ctx, "Title is required", "warning")
			ctx.Redirect(http.StatusSeeOther, "/edit/"+ctx.Param("id"))
		case errors.Is(err, repository.ErrTaskNotFound):
			flash.Set(ctx, "Task not found", "danger")
			ctx.Redirect(http.StatusSeeOther, "/")
		default:
			log.Printf("Failed to update task: %v", err)
			ctx.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	flash.Set(ctx, "Task updated", "success")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// DeleteTask removes a task. A missing or foreign id is a silent no-op.
func DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := repository.Delete(userID, taskID); err != nil {
		log.Printf("Failed to delete task: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "Task deleted", "info")
	ctx.Redirect(http.StatusSeeOther, "/")
}

// CompleteTask marks a task Completed with the same no-op semantics as
// DeleteTask.
func CompleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		return
	}

	taskID, err := utils.GetTaskID(ctx)

	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := repository.Complete(userID, taskID); err != nil {
		log.Printf("Failed to complete task: %v", err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	flash.Set(ctx, "Task marked as completed", "success")
	ctx.Redirect(http.StatusSeeOther, "/")
}
