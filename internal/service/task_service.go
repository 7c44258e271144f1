package service

import (
	"context"
	"fmt"
	"time"
	"todoList/internal/apperrors"
	"todoList/internal/logger"
	"todoList/internal/models"
	"todoList/internal/validator"

	"go.uber.org/zap"
)

type TaskService struct {
	repo      ProjectRepository
	validator *validator.Validator
	newID     IDGenerator
}

// OverdueTask pairs an overdue task with the project holding it.
type OverdueTask struct {
	Project *models.Project
	Task    *models.Task
}

func NewTaskService(repo ProjectRepository, v *validator.Validator, opts ...Option) *TaskService {
	s := newSettings(opts)
	return &TaskService{
		repo:      repo,
		validator: v,
		newID:     s.newID,
	}
}

// AddTask appends a new "todo" task to the project. The per-project task limit
// is enforced here.
func (s *TaskService) AddTask(ctx context.Context, projectID, title, description string, deadline *time.Time) (*models.Task, error) {
	fields := []zap.Field{zap.String("project_id", projectID)}

	if err := validator.ValidateTaskTitle(title); err != nil {
		logRejected("add task", err, fields...)
		return nil, err
	}
	if err := validator.ValidateTaskDescription(description); err != nil {
		logRejected("add task", err, fields...)
		return nil, err
	}
	if err := validator.ValidateDeadline(deadline); err != nil {
		logRejected("add task", err, fields...)
		return nil, err
	}

	project, err := getProject(ctx, s.repo, projectID)
	if err != nil {
		logRejected("add task", err, fields...)
		return nil, err
	}
	if err := s.validator.ValidateTaskLimits(ctx, projectID); err != nil {
		logRejected("add task", err, fields...)
		return nil, err
	}

	task := &models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		Status:      models.StatusTodo,
		Deadline:    copyDate(deadline),
	}
	project.AddTask(task)

	logger.Info("Service: task added", append(fields, zap.String("task_id", task.ID))...)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, projectID, taskID string) (*models.Task, error) {
	_, task, err := s.resolve(ctx, projectID, taskID)
	return task, err
}

// ListTasks returns the project's tasks in insertion order. The slice is a
// copy; the tasks are not.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]*models.Task, error) {
	project, err := getProject(ctx, s.repo, projectID)
	if err != nil {
		return nil, err
	}
	tasks := make([]*models.Task, len(project.Tasks))
	copy(tasks, project.Tasks)
	return tasks, nil
}

// EditTask applies only the fields set by opts. Every set field is validated
// before any of them is written, so a rejected edit changes nothing.
func (s *TaskService) EditTask(ctx context.Context, projectID, taskID string, opts ...TaskOption) (*models.Task, error) {
	fields := []zap.Field{zap.String("project_id", projectID), zap.String("task_id", taskID)}

	_, task, err := s.resolve(ctx, projectID, taskID)
	if err != nil {
		logRejected("edit task", err, fields...)
		return nil, err
	}

	patch := NewTaskPatch(opts...)
	if patch.Empty() {
		return task, nil
	}
	if err := patch.validate(); err != nil {
		logRejected("edit task", err, fields...)
		return nil, err
	}
	patch.apply(task)

	logger.Info("Service: task updated", fields...)
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, projectID, taskID string) (bool, error) {
	project, err := getProject(ctx, s.repo, projectID)
	if err != nil {
		logRejected("delete task", err, zap.String("project_id", projectID))
		return false, err
	}

	removed := project.RemoveTask(taskID)
	if removed {
		logger.Info("Service: task deleted",
			zap.String("project_id", projectID),
			zap.String("task_id", taskID))
	}
	return removed, nil
}

func (s *TaskService) ChangeStatus(ctx context.Context, projectID, taskID string, status models.Status) (*models.Task, error) {
	fields := []zap.Field{zap.String("project_id", projectID), zap.String("task_id", taskID)}

	_, task, err := s.resolve(ctx, projectID, taskID)
	if err != nil {
		logRejected("change status", err, fields...)
		return nil, err
	}
	if err := validator.ValidateStatus(status); err != nil {
		logRejected("change status", err, fields...)
		return nil, err
	}

	prev := task.Status
	task.Status = status

	logger.Info("Service: task status changed",
		append(fields, zap.String("from", string(prev)), zap.String("to", string(status)))...)
	return task, nil
}

// ListOverdue walks every project and collects tasks whose deadline is
// before today's date and which are not done.
func (s *TaskService) ListOverdue(ctx context.Context, today time.Time) ([]OverdueTask, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var res []OverdueTask
	for _, p := range projects {
		for _, t := range p.Tasks {
			if t.IsOverdue(today) {
				res = append(res, OverdueTask{Project: p, Task: t})
			}
		}
	}

	logger.Info("Service: overdue check",
		zap.Int("projects", len(projects)),
		zap.Int("overdue", len(res)))
	return res, nil
}

func (s *TaskService) resolve(ctx context.Context, projectID, taskID string) (*models.Project, *models.Task, error) {
	project, err := getProject(ctx, s.repo, projectID)
	if err != nil {
		return nil, nil, err
	}
	task, ok := project.FindTask(taskID)
	if !ok {
		return nil, nil, apperrors.NewNotFound("task", taskID)
	}
	return project, task, nil
}
