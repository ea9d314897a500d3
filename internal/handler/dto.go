package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// TaskDTO is the JSON representation of a task.
type TaskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func toTaskDTO(t *domain.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func toTaskDTOs(tasks []domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = toTaskDTO(&tasks[i])
	}
	return dtos
}

// CreateTaskRequest is the validated body of POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the validated body of PUT /tasks/{id}. Pointer
// fields distinguish "absent" from "set to the zero value".
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (req *UpdateTaskRequest) toPatch() (service.TaskPatch, error) {
	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		if !status.Valid() {
			return service.TaskPatch{}, fmt.Errorf("unrecognized status %q", *req.Status)
		}
		patch.Status = &status
	}
	return patch, nil
}

// parseTaskFilter reads the status/page/limit query parameters.
// page and limit must be positive integers when present.
func parseTaskFilter(r *http.Request) (domain.TaskFilter, error) {
	var filter domain.TaskFilter

	if status := r.URL.Query().Get("status"); status != "" {
		s := domain.Status(status)
		if !s.Valid() {
			return filter, fmt.Errorf("unrecognized status %q", status)
		}
		filter.Status = s
	}

	for name, dst := range map[string]*int{"page": &filter.Page, "limit": &filter.Limit} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return filter, fmt.Errorf("%s must be a positive number", name)
		}
		*dst = v
	}

	return filter, nil
}
