package service

import (
	"time"
	"todoList/internal/models"
	"todoList/internal/optional"
	"todoList/internal/validator"
)

// TaskPatch lists the fields an edit touches. Unset fields keep their value.
type TaskPatch struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	Status      optional.Value[models.Status]
	// Deadline set to nil clears the deadline.
	Deadline optional.Value[*time.Time]
}

type TaskOption func(*TaskPatch)

func NewTaskPatch(opts ...TaskOption) TaskPatch {
	var patch TaskPatch
	for _, opt := range opts {
		opt(&patch)
	}
	return patch
}

func (p TaskPatch) Empty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.Status.IsSet() && !p.Deadline.IsSet()
}

func WithTitle(title string) TaskOption {
	return func(p *TaskPatch) {
		p.Title = optional.Of(title)
	}
}

func WithDescription(description string) TaskOption {
	return func(p *TaskPatch) {
		p.Description = optional.Of(description)
	}
}

func WithStatus(status models.Status) TaskOption {
	return func(p *TaskPatch) {
		p.Status = optional.Of(status)
	}
}

func WithDeadline(deadline time.Time) TaskOption {
	return func(p *TaskPatch) {
		p.Deadline = optional.Of(&deadline)
	}
}

func WithoutDeadline() TaskOption {
	return func(p *TaskPatch) {
		p.Deadline = optional.Of[*time.Time](nil)
	}
}

func (p TaskPatch) validate() error {
	if title, ok := p.Title.Get(); ok {
		if err := validator.ValidateTaskTitle(title); err != nil {
			return err
		}
	}
	if description, ok := p.Description.Get(); ok {
		if err := validator.ValidateTaskDescription(description); err != nil {
			return err
		}
	}
	if status, ok := p.Status.Get(); ok {
		if err := validator.ValidateStatus(status); err != nil {
			return err
		}
	}
	if deadline, ok := p.Deadline.Get(); ok {
		if err := validator.ValidateDeadline(deadline); err != nil {
			return err
		}
	}
	return nil
}

func (p TaskPatch) apply(t *models.Task) {
	t.Title = p.Title.OrElse(t.Title)
	t.Description = p.Description.OrElse(t.Description)
	t.Status = p.Status.OrElse(t.Status)
	if deadline, ok := p.Deadline.Get(); ok {
		t.Deadline = copyDate(deadline)
	}
}

// copyDate stores deadlines as UTC calendar dates, detached from the caller.
func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := models.DateOnly(*t)
	return &c
}
