package service

import (
	"context"
	"errors"
	"fmt"
	"todoList/internal/apperrors"
	"todoList/internal/logger"
	"todoList/internal/models"
	rep "todoList/internal/repository"
	"todoList/internal/validator"

	"go.uber.org/zap"
)

type ProjectService struct {
	repo      ProjectRepository
	validator *validator.Validator
	newID     IDGenerator
}

func NewProjectService(repo ProjectRepository, v *validator.Validator, opts ...Option) *ProjectService {
	s := newSettings(opts)
	return &ProjectService{
		repo:      repo,
		validator: v,
		newID:     s.newID,
	}
}

// CreateProject validates before touching storage, so a rejected call leaves
// no trace.
func (s *ProjectService) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	if err := s.validator.ValidateProjectName(ctx, name, ""); err != nil {
		logRejected("create project", err, zap.String("name", name))
		return nil, err
	}
	if err := s.validator.ValidateProjectLimits(ctx); err != nil {
		logRejected("create project", err, zap.String("name", name))
		return nil, err
	}

	project := &models.Project{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Tasks:       []*models.Task{},
	}
	if err := s.repo.AddProject(ctx, project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logger.Info("Service: project created",
		zap.String("project_id", project.ID),
		zap.String("name", project.Name))
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	return getProject(ctx, s.repo, id)
}

func (s *ProjectService) EditProject(ctx context.Context, id, name, description string) (*models.Project, error) {
	project, err := getProject(ctx, s.repo, id)
	if err != nil {
		logRejected("edit project", err, zap.String("project_id", id))
		return nil, err
	}
	if err := s.validator.ValidateProjectName(ctx, name, project.ID); err != nil {
		logRejected("edit project", err, zap.String("project_id", id))
		return nil, err
	}

	project.Name = name
	project.Description = description

	logger.Info("Service: project updated", zap.String("project_id", id))
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.RemoveProject(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remove project: %w", err)
	}
	if removed {
		logger.Info("Service: project deleted", zap.String("project_id", id))
	}
	return removed, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func getProject(ctx context.Context, repo ProjectRepository, id string) (*models.Project, error) {
	project, err := repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, apperrors.NewNotFound("project", id)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

func logRejected(op string, err error, fields ...zap.Field) {
	var busErr *apperrors.BusinessError
	if errors.As(err, &busErr) {
		fields = append(fields, zap.String("code", busErr.Code), zap.String("reason", busErr.Message))
		logger.Warn("Service: "+op+" rejected", fields...)
		return
	}
	logger.Error("Service: "+op+" failed", err, fields...)
}
