package model

import (
	"fmt"
	"strings"
)

// Status is the lab's state label as reported by the status API.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
	StatusFire   Status = "fire"
	StatusCoffee Status = "coffee"

	// StatusError stands in for any status that could not be fetched.
	StatusError Status = "error"
)

// DefaultColor is used for labels missing from the color table.
const DefaultColor = "purple"

var statusColors = map[Status]string{
	StatusOpen:   "green",
	StatusClosed: "red",
	StatusFire:   "orange",
	StatusCoffee: "brown",
}

var knownStatuses = []Status{StatusOpen, StatusClosed, StatusFire, StatusCoffee}

// Known returns the statuses with built-in banners and colors.
func Known() []Status {
	return append([]Status(nil), knownStatuses...)
}

func (s Status) IsKnown() bool {
	_, ok := statusColors[s]
	return ok
}

// Color returns the table color for s, or DefaultColor when s is unmapped.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return DefaultColor
}

func ValidateStatus(s Status) error {
	if strings.TrimSpace(string(s)) == "" {
		return fmt.Errorf("status label is required")
	}
	return nil
}

// Request is the body of a state-change call.
type Request struct {
	Label string `json:"StatusName"`
	Color string `json:"StatusColor"`
}

// NewRequest builds a Request, filling in the table color when color is empty.
func NewRequest(label Status, color string) (Request, error) {
	if err := ValidateStatus(label); err != nil {
		return Request{}, err
	}
	if color == "" {
		color = label.Color()
	}
	return Request{Label: string(label), Color: color}, nil
}
