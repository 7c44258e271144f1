// Package validator holds the field and count checks applied before any
// project or task is mutated. Field checks are plain functions; checks that
// need to look at stored projects hang off Validator.
package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"todoList/internal/apperrors"
	"todoList/internal/models"
	"todoList/internal/repository"
	"unicode/utf8"
)

const (
	MaxNameLength        = 30
	MaxTitleLength       = 30
	MaxDescriptionLength = 150

	DefaultMaxProjects = 10
	DefaultMaxTasks    = 100
)

type Limits struct {
	MaxProjects int
	MaxTasks    int
}

func DefaultLimits() Limits {
	return Limits{
		MaxProjects: DefaultMaxProjects,
		MaxTasks:    DefaultMaxTasks,
	}
}

type ProjectReader interface {
	GetProject(context.Context, string) (*models.Project, error)
	FindProjectByName(context.Context, string) (*models.Project, error)
	Count(context.Context) (int, error)
}

type Validator struct {
	projects ProjectReader
	limits   Limits
}

func New(projects ProjectReader, limits Limits) *Validator {
	return &Validator{
		projects: projects,
		limits:   limits,
	}
}

func (v *Validator) Limits() Limits {
	return v.limits
}

// ValidateProjectName rejects blank or oversized names and names already used
// by a project other than excludeID. Pass "" to compare against every project.
func (v *Validator) ValidateProjectName(ctx context.Context, name, excludeID string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewInvalidEntity("project name", "cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return apperrors.NewInvalidEntity("project name", fmt.Sprintf("must be <= %d characters", MaxNameLength))
	}

	existing, err := v.projects.FindProjectByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("lookup project by name: %w", err)
	}
	if existing.ID != excludeID {
		return apperrors.NewInvalidEntity("project name", "must be unique")
	}
	return nil
}

func (v *Validator) ValidateProjectLimits(ctx context.Context) error {
	count, err := v.projects.Count(ctx)
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count >= v.limits.MaxProjects {
		return apperrors.NewLimitExceeded("projects", v.limits.MaxProjects)
	}
	return nil
}

// ValidateTaskLimits fails when the project already holds MaxTasks tasks.
// An unknown project is not this check's concern and passes.
func (v *Validator) ValidateTaskLimits(ctx context.Context, projectID string) error {
	project, err := v.projects.GetProject(ctx, projectID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get project: %w", err)
	}
	if project.TaskCount() >= v.limits.MaxTasks {
		return apperrors.NewLimitExceeded("tasks for this project", v.limits.MaxTasks)
	}
	return nil
}

func ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return apperrors.NewInvalidEntity("task title", "cannot be empty")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return apperrors.NewInvalidEntity("task title", fmt.Sprintf("must be <= %d characters", MaxTitleLength))
	}
	return nil
}

func ValidateTaskDescription(description string) error {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return apperrors.NewInvalidEntity("task description", fmt.Sprintf("must be <= %d characters", MaxDescriptionLength))
	}
	return nil
}

func ValidateStatus(status models.Status) error {
	if !status.Valid() {
		return apperrors.NewInvalidEntity("status", fmt.Sprintf("must be one of %v", models.Statuses))
	}
	return nil
}

// ValidateDeadline accepts no deadline or a midnight in any location.
func ValidateDeadline(deadline *time.Time) error {
	if deadline != nil && !models.IsDate(*deadline) {
		return apperrors.NewInvalidEntity("deadline", "must be a calendar date")
	}
	return nil
}
