package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
)

// TaskDeleteSuccess is the acknowledgment returned on successful deletion.
const TaskDeleteSuccess = "Task deleted successfully"

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TaskPatch carries a partial task update. Nil fields are left
// untouched; presence is decided per field, not by zero values.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
}

// TaskService validates task operations and maps store failures to
// fixed outward error kinds.
type TaskService struct {
	tasks domain.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

// CreateTask creates a task with status PENDING.
func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Status:      domain.StatusPending,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		logger.Error("task creation failed", zap.String("title", title), zap.Error(err))
		return nil, ErrTaskCreateFailed
	}

	logger.Info("task created", zap.String("task_id", task.ID))
	return task, nil
}

// ListTasks returns tasks matching the filter in insertion order. Page
// and limit default to 1 and 10 when unset.
func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, filter.Status)
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		logger.Error("task fetch failed", zap.Error(err))
		return nil, ErrTaskFetchFailed
	}
	return tasks, nil
}

// GetTaskByID returns a task or a not-found error carrying the exact id.
func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("task not found", zap.String("task_id", id))
			return nil, domain.TaskNotFound(id)
		}
		logger.Error("task fetch failed", zap.String("task_id", id), zap.Error(err))
		return nil, ErrTaskFetchFailed
	}
	return task, nil
}

// UpdateTaskByID merges the patch onto the existing task and persists it.
// Fields absent from the patch are left unchanged.
func (s *TaskService) UpdateTaskByID(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrInvalidInput)
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *patch.Status)
		}
		task.Status = *patch.Status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Deleted between the read and the write.
			return nil, domain.TaskNotFound(id)
		}
		logger.Error("task update failed", zap.String("task_id", id), zap.Error(err))
		return nil, ErrTaskUpdateFailed
	}

	logger.Info("task updated", zap.String("task_id", id))
	return task, nil
}

// RemoveTaskByID deletes a task and returns a fixed success message.
// Deleting an absent task yields a not-found error with the id.
func (s *TaskService) RemoveTaskByID(ctx context.Context, id string) (string, error) {
	affected, err := s.tasks.Delete(ctx, id)
	if err != nil {
		logger.Error("task deletion failed", zap.String("task_id", id), zap.Error(err))
		return "", ErrTaskDeleteFailed
	}
	if affected == 0 {
		logger.Warn("attempted to delete non-existent task", zap.String("task_id", id))
		return "", domain.TaskNotFound(id)
	}

	logger.Info("task deleted", zap.String("task_id", id))
	return TaskDeleteSuccess, nil
}
