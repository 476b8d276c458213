package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aliskhannn/workout-coach-bot/internal/domain/entities"
)

var ErrNotFound = errors.New("catalog entry not found")

// Catalog provides read-only access to the training program structure.
// Loaded once at process start and treated as immutable afterwards.
type Catalog struct {
	weeks []*entities.Week
}

// Load reads the program definition from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program file: %w", err)
	}

	var wrapper struct {
		Weeks []*entities.Week `json:"weeks"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("unmarshal program JSON: %w", err)
	}

	if len(wrapper.Weeks) == 0 {
		return nil, errors.New("program has no weeks")
	}

	return New(wrapper.Weeks), nil
}

// New builds a catalog from an already constructed program. Used directly
// by tests with small fixture programs.
func New(weeks []*entities.Week) *Catalog {
	return &Catalog{weeks: weeks}
}

// Weeks returns all weeks of the program in order.
func (c *Catalog) Weeks() []*entities.Week {
	return c.weeks
}

// Week returns the week with the given number (1-based).
func (c *Catalog) Week(week int) (*entities.Week, error) {
	for _, w := range c.weeks {
		if w.Number == week {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

// Day returns the day with the given number within a week.
func (c *Catalog) Day(week, day int) (*entities.Day, error) {
	w, err := c.Week(week)
	if err != nil {
		return nil, err
	}

	for _, d := range w.Days {
		if d.Number == day {
			return d, nil
		}
	}
	return nil, ErrNotFound
}

// Exercise returns the exercise at index idx within a day. A stale button
// may reference an index past the end of the day; that is ErrNotFound,
// never a panic.
func (c *Catalog) Exercise(week, day, idx int) (*entities.Exercise, error) {
	d, err := c.Day(week, day)
	if err != nil {
		return nil, err
	}

	if idx < 0 || idx >= len(d.Exercises) {
		return nil, ErrNotFound
	}
	return d.Exercises[idx], nil
}
