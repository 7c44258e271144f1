package models_test

import (
	"testing"
	"time"
	"todoList/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status models.Status
		valid  bool
	}{
		{models.StatusTodo, true},
		{models.StatusDoing, true},
		{models.StatusDone, true},
		{"Done", false},
		{"in progress", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, ok := models.ParseStatus("  DOING ")
	assert.True(t, ok)
	assert.Equal(t, models.StatusDoing, s)

	_, ok = models.ParseStatus("blocked")
	assert.False(t, ok)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, time.March, 14, 22, 15, 0, 0, loc)

	got := models.DateOnly(in)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, models.IsDate(got))
	assert.False(t, models.IsDate(in))
	assert.False(t, models.IsDate(time.Time{}))

	// midnight in any zone is a date and keeps its calendar day
	localMidnight := time.Date(2025, time.March, 14, 0, 0, 0, 0, loc)
	assert.True(t, models.IsDate(localMidnight))
	assert.Equal(t, got, models.DateOnly(localMidnight))
}

func TestTask_IsOverdue(t *testing.T) {
	today := time.Date(2025, time.May, 10, 9, 30, 0, 0, time.UTC)
	yesterday := models.DateOnly(today.AddDate(0, 0, -1))
	todayDate := models.DateOnly(today)

	tests := []struct {
		name     string
		task     models.Task
		expected bool
	}{
		{"no deadline", models.Task{Status: models.StatusTodo}, false},
		{"past deadline", models.Task{Status: models.StatusDoing, Deadline: &yesterday}, true},
		{"past deadline but done", models.Task{Status: models.StatusDone, Deadline: &yesterday}, false},
		{"deadline today", models.Task{Status: models.StatusTodo, Deadline: &todayDate}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsOverdue(today))
		})
	}
}

func TestProject_Tasks(t *testing.T) {
	p := &models.Project{ID: "ab12", Name: "Launch"}
	p.AddTask(&models.Task{ID: "0001", Title: "first"})
	p.AddTask(&models.Task{ID: "0002", Title: "second"})
	p.AddTask(&models.Task{ID: "0003", Title: "third"})
	require.Equal(t, 3, p.TaskCount())

	found, ok := p.FindTask("0002")
	require.True(t, ok)
	assert.Equal(t, "second", found.Title)

	assert.True(t, p.RemoveTask("0002"))
	assert.False(t, p.RemoveTask("0002"))

	_, ok = p.FindTask("0002")
	assert.False(t, ok)
	require.Len(t, p.Tasks, 2)
	assert.Equal(t, "0001", p.Tasks[0].ID)
	assert.Equal(t, "0003", p.Tasks[1].ID)
}
