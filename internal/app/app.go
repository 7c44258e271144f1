package app

import (
	"context"
	"fmt"
	"io"
	"todoList/internal/cli"
	"todoList/internal/config"
	"todoList/internal/logger"
	"todoList/internal/repository/project/inmemory"
	"todoList/internal/service"
	"todoList/internal/validator"

	"go.uber.org/zap"
)

type App struct {
	config    *config.Config
	storage   *inmemory.ProjectStorage
	projects  *service.ProjectService
	tasks     *service.TaskService
	shutdowns []func() // run in reverse order on Shutdown
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init wires logger, storage, validator and services. The storage is created
// here once and shared by both services.
func (a *App) Init(ctx context.Context) error {
	err := logger.Init(logger.Options{
		Development: a.config.Logging.Development,
		Level:       a.config.Logging.Level,
		OutputPath:  a.config.Logging.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Shutting down logger")
		logger.Sync()
	})

	limits := validator.Limits{
		MaxProjects: a.config.Limits.MaxProjects,
		MaxTasks:    a.config.Limits.MaxTasks,
	}
	a.storage = inmemory.NewProjectStorage()
	v := validator.New(a.storage, limits)
	a.projects = service.NewProjectService(a.storage, v)
	a.tasks = service.NewTaskService(a.storage, v)

	logger.Info("App initialized",
		zap.Int("max_projects", limits.MaxProjects),
		zap.Int("max_tasks", limits.MaxTasks))
	return nil
}

func (a *App) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if a.projects == nil {
		return fmt.Errorf("app is not initialized")
	}
	return cli.NewMenu(a.projects, a.tasks, in, out).Run(ctx)
}

func (a *App) Shutdown() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = a.shutdowns[:0]
}
