package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"todoList/internal/cli"
	"todoList/internal/models"
	"todoList/internal/repository/project/inmemory"
	"todoList/internal/service"
	"todoList/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	storage  *inmemory.ProjectStorage
	projects *service.ProjectService
	tasks    *service.TaskService
}

func newHarness(limits validator.Limits) harness {
	storage := inmemory.NewProjectStorage()
	v := validator.New(storage, limits)
	return harness{
		storage:  storage,
		projects: service.NewProjectService(storage, v),
		tasks:    service.NewTaskService(storage, v),
	}
}

func (h harness) run(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	menu := cli.NewMenu(h.projects, h.tasks, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)
	menu.SetClock(func() time.Time { return time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC) })
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func TestMenu_CreateAndListProjects(t *testing.T) {
	h := newHarness(validator.DefaultLimits())

	out := h.run(t,
		"2", "Launch", "Q3 plan",
		"2", "Launch", "other",
		"1",
		"q",
	)

	assert.Contains(t, out, "[OK] Project created:")
	assert.Contains(t, out, "[ERROR] project name must be unique")
	assert.Contains(t, out, "| Launch")
	assert.Contains(t, out, "Q3 plan")
	assert.Contains(t, out, "[INFO] Goodbye")

	list, err := h.projects.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMenu_TaskFlow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(validator.DefaultLimits())
	p, err := h.projects.CreateProject(ctx, "Launch", "")
	require.NoError(t, err)

	out := h.run(t,
		"6", p.ID, "Write docs", "guide", "2025-05-01",
		"6", p.ID, "Bad date", "", "01/05/2025",
		"q",
	)
	assert.Contains(t, out, "[OK] Task added:")
	assert.Contains(t, out, "[ERROR] date must be in YYYY-MM-DD format")

	tasks, err := h.tasks.ListTasks(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), *task.Deadline)

	out = h.run(t,
		"8", p.ID, task.ID, "DOING",
		"10",
		"7", p.ID, task.ID, "", "-", "", "",
		"5", p.ID,
		"q",
	)
	assert.Contains(t, out, "[OK] Status changed:")
	assert.Contains(t, out, "Write docs")
	assert.Contains(t, out, "2025-05-01")
	assert.Contains(t, out, "[OK] Task updated:")

	assert.Equal(t, models.StatusDoing, task.Status)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, "Write docs", task.Title)

	out = h.run(t,
		"8", p.ID, task.ID, "blocked",
		"9", p.ID, "ffff",
		"9", p.ID, task.ID,
		"q",
	)
	assert.Contains(t, out, "[ERROR] status must be one of")
	assert.Contains(t, out, "[ERROR] Task not found")
	assert.Contains(t, out, "[OK] Task deleted")
	assert.Empty(t, p.Tasks)
}

func TestMenu_ErrorsStayAtBoundary(t *testing.T) {
	h := newHarness(validator.Limits{MaxProjects: 1, MaxTasks: 1})

	out := h.run(t,
		"42",
		"2", "One", "",
		"2", "Two", "",
		"4", "ffff",
		"5", "ffff",
		"q",
	)

	assert.Contains(t, out, "[ERROR] Invalid choice")
	assert.Contains(t, out, "[ERROR] maximum number of projects reached (1)")
	assert.Contains(t, out, "[ERROR] Project not found")
	assert.Contains(t, out, "[ERROR] project ffff not found")
}

func TestMenu_EndOfInputQuits(t *testing.T) {
	h := newHarness(validator.DefaultLimits())

	// input ends in the middle of a command
	out := h.run(t, "2", "Half")
	assert.Contains(t, out, "[INFO] Goodbye")

	list, err := h.projects.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseDate(t *testing.T) {
	d, err := cli.ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = cli.ParseDate(" 2025-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), *d)
	assert.True(t, models.IsDate(*d))

	_, err = cli.ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", cli.Truncate("short", 50))
	long := strings.Repeat("a", 60)
	got := cli.Truncate(long, 50)
	assert.Len(t, got, 50)
	assert.True(t, strings.HasSuffix(got, "..."))
}
