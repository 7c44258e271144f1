package cli

import (
	"context"
	"time"
	"todoList/internal/models"
	"todoList/internal/service"
)

type ProjectService interface {
	CreateProject(context.Context, string, string) (*models.Project, error)
	GetProject(context.Context, string) (*models.Project, error)
	EditProject(context.Context, string, string, string) (*models.Project, error)
	DeleteProject(context.Context, string) (bool, error)
	ListProjects(context.Context) ([]*models.Project, error)
}

type TaskService interface {
	AddTask(context.Context, string, string, string, *time.Time) (*models.Task, error)
	GetTask(context.Context, string, string) (*models.Task, error)
	ListTasks(context.Context, string) ([]*models.Task, error)
	EditTask(context.Context, string, string, ...service.TaskOption) (*models.Task, error)
	DeleteTask(context.Context, string, string) (bool, error)
	ChangeStatus(context.Context, string, string, models.Status) (*models.Task, error)
	ListOverdue(context.Context, time.Time) ([]service.OverdueTask, error)
}

var (
	_ ProjectService = (*service.ProjectService)(nil)
	_ TaskService    = (*service.TaskService)(nil)
)
