// Package project holds the demo dataset shown by tableview: projects with a
// status, a priority, an owner, a due date and a completion percentage.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"tablekit/internal/jsonutil"
)

// Tab values understood by Partition.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"
	FilterOverdue   = "overdue"
)

// ErrUnsupportedFormat is returned by Load for files that are not YAML, JSON or TOML.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// Project is one row of the demo table.
type Project struct {
	ID       string
	Name     string
	Status   string // success, warning, danger, neutral or info
	Priority string // high, medium or low
	Assignee string
	DueDate  time.Time
	Progress int // 0-100
}

// Completed reports whether the project is done.
func (p Project) Completed() bool { return p.Progress >= 100 }

// Overdue reports whether an unfinished project is past its due date.
// A project without a due date is never overdue.
func (p Project) Overdue(now time.Time) bool {
	return !p.Completed() && !p.DueDate.IsZero() && p.DueDate.Before(now)
}

// Active reports whether an unfinished project is still within its due date.
// A project without a due date is not active either; it only shows under all.
func (p Project) Active(now time.Time) bool {
	return !p.Completed() && !p.DueDate.IsZero() && !p.DueDate.Before(now)
}

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Sample returns the built-in demo projects.
func Sample() []Project {
	return []Project{
		{ID: "1", Name: "Website Redesign", Status: "success", Priority: "high", Assignee: "John Doe", DueDate: date("2025-02-15"), Progress: 85},
		{ID: "2", Name: "Mobile App Development", Status: "success", Priority: "medium", Assignee: "Jane Smith", DueDate: date("2025-03-01"), Progress: 100},
		{ID: "3", Name: "Database Migration", Status: "danger", Priority: "high", Assignee: "Bob Johnson", DueDate: date("2024-01-30"), Progress: 25},
		{ID: "4", Name: "API Documentation", Status: "warning", Priority: "low", Assignee: "Alice Brown", DueDate: date("2025-04-15"), Progress: 40},
		{ID: "5", Name: "Security Audit", Status: "danger", Priority: "high", Assignee: "Mike Wilson", DueDate: date("2024-12-01"), Progress: 15},
		{ID: "6", Name: "UI/UX Design Review", Status: "warning", Priority: "medium", Assignee: "Emily Davis", DueDate: date("2025-05-01"), Progress: 60},
		{ID: "7", Name: "Performance Optimization", Status: "info", Priority: "high", Assignee: "Sarah Wilson", DueDate: date("2025-07-15"), Progress: 35},
	}
}

// record is the on-disk shape shared by every data format.
type record struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Status   string `json:"status" yaml:"status" toml:"status"`
	Priority string `json:"priority" yaml:"priority" toml:"priority"`
	Assignee string `json:"assignee" yaml:"assignee" toml:"assignee"`
	DueDate  string `json:"dueDate" yaml:"dueDate" toml:"dueDate"`
	Progress int    `json:"progress" yaml:"progress" toml:"progress"`
}

// tomlFile wraps the records since a TOML document cannot be a bare array.
type tomlFile struct {
	Projects []record `toml:"projects"`
}

// Load reads projects from a .yaml, .yml or .json file holding a list of
// records, or a .toml file holding a [[projects]] array. Dates use the
// YYYY-MM-DD form. Missing IDs are numbered from 1 and progress is clamped
// to 0-100.
func Load(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read projects: %w", err)
	}

	var recs []record
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		recs, err = jsonutil.UnmarshalArray[record](data, "parse "+path)
		if err != nil {
			return nil, err
		}
	case ".toml":
		var f tomlFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		recs = f.Projects
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	out := make([]Project, 0, len(recs))
	for i, r := range recs {
		p, err := r.project(i)
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r record) project(i int) (Project, error) {
	p := Project{
		ID:       strings.TrimSpace(r.ID),
		Name:     r.Name,
		Status:   strings.ToLower(strings.TrimSpace(r.Status)),
		Priority: strings.ToLower(strings.TrimSpace(r.Priority)),
		Assignee: r.Assignee,
		Progress: min(100, max(0, r.Progress)),
	}
	if p.ID == "" {
		p.ID = strconv.Itoa(i + 1)
	}
	if r.DueDate != "" {
		due, err := time.Parse(time.DateOnly, r.DueDate)
		if err != nil {
			return Project{}, fmt.Errorf("due date: %w", err)
		}
		p.DueDate = due
	}
	return p, nil
}

// Partition returns the tab filter for the given clock. Unknown tab values
// return every row.
func Partition(now time.Time) func(rows []Project, active string) []Project {
	return func(rows []Project, active string) []Project {
		var keep func(Project) bool
		switch active {
		case FilterActive:
			keep = func(p Project) bool { return p.Active(now) }
		case FilterCompleted:
			keep = Project.Completed
		case FilterOverdue:
			keep = func(p Project) bool { return p.Overdue(now) }
		default:
			return rows
		}
		out := make([]Project, 0, len(rows))
		for _, p := range rows {
			if keep(p) {
				out = append(out, p)
			}
		}
		return out
	}
}

// Tab describes one partition with the number of rows it holds.
type Tab struct {
	Value string
	Label string
	Count int
}

// Tabs returns the all/active/completed/overdue tabs with counts taken from rows.
func Tabs(rows []Project, now time.Time) []Tab {
	part := Partition(now)
	tabs := []Tab{
		{Value: FilterAll, Label: "All Projects"},
		{Value: FilterActive, Label: "Active"},
		{Value: FilterCompleted, Label: "Completed"},
		{Value: FilterOverdue, Label: "Overdue"},
	}
	for i := range tabs {
		tabs[i].Count = len(part(rows, tabs[i].Value))
	}
	return tabs
}
