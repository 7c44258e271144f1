package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"todoList/internal/apperrors"
	"todoList/internal/logger"
	"todoList/internal/models"
	"todoList/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errInputClosed = errors.New("input closed")

type action struct {
	key   string
	label string
	run   func(context.Context) error
}

type Menu struct {
	projects ProjectService
	tasks    TaskService
	in       *bufio.Scanner
	out      io.Writer
	now      func() time.Time
	session  string
	actions  []action
}

func NewMenu(projects ProjectService, tasks TaskService, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		projects: projects,
		tasks:    tasks,
		in:       bufio.NewScanner(in),
		out:      out,
		now:      time.Now,
		session:  uuid.NewString(),
	}
	m.actions = []action{
		{"1", "List projects", m.listProjects},
		{"2", "Create project", m.createProject},
		{"3", "Edit project", m.editProject},
		{"4", "Delete project", m.deleteProject},
		{"5", "List tasks", m.listTasks},
		{"6", "Add task", m.addTask},
		{"7", "Edit task", m.editTask},
		{"8", "Change task status", m.changeStatus},
		{"9", "Delete task", m.deleteTask},
		{"10", "Overdue tasks", m.overdueTasks},
	}
	return m
}

// SetClock replaces the clock used by the overdue report.
func (m *Menu) SetClock(now func() time.Time) {
	m.now = now
}

// Run shows the menu until the user quits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	logger.Info("CLI: session started", zap.String("session_id", m.session))
	defer logger.Info("CLI: session finished", zap.String("session_id", m.session))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.prompt("Choose: ")
		if errors.Is(err, errInputClosed) {
			m.println(Info("Goodbye"))
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.ToLower(choice)
		if choice == "q" {
			m.println(Info("Goodbye"))
			return nil
		}

		a, ok := m.lookup(choice)
		if !ok {
			m.println(Error("Invalid choice"))
			continue
		}
		if err := m.dispatch(ctx, a); errors.Is(err, errInputClosed) {
			m.println(Info("Goodbye"))
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	m.println("")
	m.println("=== ToDoList Menu ===")
	for _, a := range m.actions {
		m.printf("%s) %s\n", a.key, a.label)
	}
	m.println("q) Quit")
}

func (m *Menu) lookup(key string) (action, bool) {
	for _, a := range m.actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

// dispatch is the error boundary: failures and panics of a command are shown
// to the user and logged, never passed further up.
func (m *Menu) dispatch(ctx context.Context, a action) (err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			m.println(Error(fmt.Sprintf("Unhandled error: %v", r)))
		}

		lvl := zapcore.InfoLevel
		fields := []zap.Field{
			zap.String("session_id", m.session),
			zap.String("command", a.label),
			zap.Duration("ms", time.Since(start)),
		}
		var busErr *apperrors.BusinessError
		switch {
		case err == nil, errors.Is(err, errInputClosed):
		case errors.As(err, &busErr):
			lvl = zapcore.WarnLevel
			fields = append(fields, zap.String("code", busErr.Code))
		default:
			lvl = zapcore.ErrorLevel
			fields = append(fields, zap.Error(err))
		}
		logger.Log(lvl, "CLI: command finished", fields...)
	}()

	err = a.run(ctx)
	if err != nil && !errors.Is(err, errInputClosed) {
		m.showError(err)
	}
	return err
}

func (m *Menu) showError(err error) {
	var busErr *apperrors.BusinessError
	if errors.As(err, &busErr) {
		m.println(Error(busErr.Message))
		return
	}
	m.println(Error(err.Error()))
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) listProjects(ctx context.Context) error {
	projects, err := m.projects.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		m.println(Info("No projects found."))
		return nil
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(w, "ID\t| Name\t| Tasks\t| Description")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t| %s\t| %d\t| %s\n", p.ID, p.Name, p.TaskCount(), Truncate(p.Description, 50))
	}
	return w.Flush()
}

func (m *Menu) createProject(ctx context.Context) error {
	name, err := m.prompt("Project name: ")
	if err != nil {
		return err
	}
	desc, err := m.prompt("Project description: ")
	if err != nil {
		return err
	}

	p, err := m.projects.CreateProject(ctx, name, desc)
	if err != nil {
		return err
	}
	m.println(Success("Project created: " + FormatProject(p)))
	return nil
}

func (m *Menu) editProject(ctx context.Context) error {
	if err := m.listProjects(ctx); err != nil {
		return err
	}
	id, err := m.prompt("Enter project id to edit: ")
	if err != nil {
		return err
	}
	current, err := m.projects.GetProject(ctx, id)
	if err != nil {
		return err
	}

	name, err := m.prompt(fmt.Sprintf("New project name [%s]: ", current.Name))
	if err != nil {
		return err
	}
	desc, err := m.prompt("New project description (empty keeps current): ")
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}
	if desc == "" {
		desc = current.Description
	}

	p, err := m.projects.EditProject(ctx, id, name, desc)
	if err != nil {
		return err
	}
	m.println(Success("Project updated: " + FormatProject(p)))
	return nil
}

func (m *Menu) deleteProject(ctx context.Context) error {
	if err := m.listProjects(ctx); err != nil {
		return err
	}
	id, err := m.prompt("Enter project id to delete: ")
	if err != nil {
		return err
	}

	removed, err := m.projects.DeleteProject(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		m.println(Success("Project deleted"))
	} else {
		m.println(Error("Project not found"))
	}
	return nil
}

func (m *Menu) listTasks(ctx context.Context) error {
	id, err := m.prompt("Project id: ")
	if err != nil {
		return err
	}
	return m.printTasks(ctx, id)
}

func (m *Menu) printTasks(ctx context.Context, projectID string) error {
	tasks, err := m.tasks.ListTasks(ctx, projectID)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		m.println(Info("No tasks found."))
		return nil
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(w, "ID\t| Title\t| Status\t| Deadline\t| Description")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t| %s\t| %s\t| %s\t| %s\n",
			t.ID, t.Title, t.Status, FormatDeadline(t.Deadline), Truncate(t.Description, 50))
	}
	return w.Flush()
}

func (m *Menu) addTask(ctx context.Context) error {
	projectID, err := m.prompt("Project id: ")
	if err != nil {
		return err
	}
	title, err := m.prompt("Task title: ")
	if err != nil {
		return err
	}
	desc, err := m.prompt("Task description: ")
	if err != nil {
		return err
	}
	rawDeadline, err := m.prompt("Deadline (YYYY-MM-DD, empty for none): ")
	if err != nil {
		return err
	}
	deadline, err := ParseDate(rawDeadline)
	if err != nil {
		return err
	}

	t, err := m.tasks.AddTask(ctx, projectID, title, desc, deadline)
	if err != nil {
		return err
	}
	m.println(Success("Task added: " + FormatTask(t)))
	return nil
}

func (m *Menu) editTask(ctx context.Context) error {
	projectID, err := m.prompt("Project id: ")
	if err != nil {
		return err
	}
	if err := m.printTasks(ctx, projectID); err != nil {
		return err
	}
	taskID, err := m.prompt("Task id: ")
	if err != nil {
		return err
	}
	if _, err := m.tasks.GetTask(ctx, projectID, taskID); err != nil {
		return err
	}

	m.println(Info("Leave a field empty to keep it, enter '-' to clear description or deadline."))
	var opts []service.TaskOption

	title, err := m.prompt("New title: ")
	if err != nil {
		return err
	}
	if title != "" {
		opts = append(opts, service.WithTitle(title))
	}

	desc, err := m.prompt("New description: ")
	if err != nil {
		return err
	}
	switch desc {
	case "":
	case "-":
		opts = append(opts, service.WithDescription(""))
	default:
		opts = append(opts, service.WithDescription(desc))
	}

	rawStatus, err := m.prompt(fmt.Sprintf("New status %v: ", models.Statuses))
	if err != nil {
		return err
	}
	if rawStatus != "" {
		status, _ := models.ParseStatus(rawStatus)
		opts = append(opts, service.WithStatus(status))
	}

	rawDeadline, err := m.prompt("New deadline (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	switch rawDeadline {
	case "":
	case "-":
		opts = append(opts, service.WithoutDeadline())
	default:
		deadline, err := ParseDate(rawDeadline)
		if err != nil {
			return err
		}
		opts = append(opts, service.WithDeadline(*deadline))
	}

	t, err := m.tasks.EditTask(ctx, projectID, taskID, opts...)
	if err != nil {
		return err
	}
	m.println(Success("Task updated: " + FormatTask(t)))
	return nil
}

func (m *Menu) changeStatus(ctx context.Context) error {
	projectID, err := m.prompt("Project id: ")
	if err != nil {
		return err
	}
	taskID, err := m.prompt("Task id: ")
	if err != nil {
		return err
	}
	rawStatus, err := m.prompt(fmt.Sprintf("Status %v: ", models.Statuses))
	if err != nil {
		return err
	}
	status, _ := models.ParseStatus(rawStatus)

	t, err := m.tasks.ChangeStatus(ctx, projectID, taskID, status)
	if err != nil {
		return err
	}
	m.println(Success("Status changed: " + FormatTask(t)))
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	projectID, err := m.prompt("Project id: ")
	if err != nil {
		return err
	}
	taskID, err := m.prompt("Task id: ")
	if err != nil {
		return err
	}

	removed, err := m.tasks.DeleteTask(ctx, projectID, taskID)
	if err != nil {
		return err
	}
	if removed {
		m.println(Success("Task deleted"))
	} else {
		m.println(Error("Task not found"))
	}
	return nil
}

func (m *Menu) overdueTasks(ctx context.Context) error {
	overdue, err := m.tasks.ListOverdue(ctx, m.now())
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		m.println(Info("No overdue tasks."))
		return nil
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(w, "Project\t| Task\t| Title\t| Status\t| Deadline")
	for _, o := range overdue {
		fmt.Fprintf(w, "%s\t| %s\t| %s\t| %s\t| %s\n",
			o.Project.Name, o.Task.ID, o.Task.Title, o.Task.Status, FormatDeadline(o.Task.Deadline))
	}
	return w.Flush()
}
