package models

import (
	"strings"
	"time"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type Status string

const StatusTodo Status = "todo"
const StatusDoing Status = "doing"
const StatusDone Status = "done"

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// ParseStatus accepts the status name in any case and with surrounding spaces.
// The returned bool is false for names outside Statuses.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// DateOnly drops the clock part of t and pins it to UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDate reports whether t is a non-zero midnight in its own location.
func IsDate(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// IsOverdue reports whether the task has a deadline strictly before today
// and is not done yet.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.Deadline == nil || t.Status == StatusDone {
		return false
	}
	return t.Deadline.Before(DateOnly(today))
}
