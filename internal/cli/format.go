package cli

import (
	"fmt"
	"strings"
	"time"
	"todoList/internal/models"
)

const DateLayout = "2006-01-02"

func Success(msg string) string {
	return "[OK] " + msg
}

func Error(msg string) string {
	return "[ERROR] " + msg
}

func Info(msg string) string {
	return "[INFO] " + msg
}

func FormatProject(p *models.Project) string {
	return fmt.Sprintf("%s - %s", p.ID, p.Name)
}

func FormatTask(t *models.Task) string {
	return fmt.Sprintf("%s - %s [%s]", t.ID, t.Title, t.Status)
}

func FormatDeadline(d *time.Time) string {
	if d == nil {
		return "-"
	}
	return d.Format(DateLayout)
}

// Truncate shortens s to at most limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

// ParseDate reads a YYYY-MM-DD date. Empty input means no date.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return &d, nil
}
