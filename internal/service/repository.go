package service

import (
	"context"
	"todoList/internal/models"
)

type ProjectRepository interface {
	AddProject(context.Context, *models.Project) error
	GetProject(context.Context, string) (*models.Project, error)
	RemoveProject(context.Context, string) (bool, error)
	FindProjectByName(context.Context, string) (*models.Project, error)
	ListProjects(context.Context) ([]*models.Project, error)
	Count(context.Context) (int, error)
}
