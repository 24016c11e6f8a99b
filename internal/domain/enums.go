package domain

import (
	"fmt"
	"strings"
)

type Location string

const (
	LocationPhysical Location = "physical"
	LocationOnline   Location = "online"
)

// ParseLocation accepts the textual enum forms case-insensitively.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical":
		return LocationPhysical, nil
	case "online":
		return LocationOnline, nil
	default:
		return "", fmt.Errorf("%w: location %q (want physical or online)", ErrInvalidEnum, s)
	}
}

type Status string

const (
	StatusPublic  Status = "public"
	StatusPrivate Status = "private"
)

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return StatusPublic, nil
	case "private":
		return StatusPrivate, nil
	default:
		return "", fmt.Errorf("%w: status %q (want public or private)", ErrInvalidEnum, s)
	}
}

// Property names the editable event fields.
type Property string

const (
	PropertySubject     Property = "subject"
	PropertyStart       Property = "start"
	PropertyEnd         Property = "end"
	PropertyDescription Property = "description"
	PropertyLocation    Property = "location"
	PropertyStatus      Property = "status"
)

func ParseProperty(s string) (Property, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subject":
		return PropertySubject, nil
	case "start":
		return PropertyStart, nil
	case "end":
		return PropertyEnd, nil
	case "description":
		return PropertyDescription, nil
	case "location":
		return PropertyLocation, nil
	case "status":
		return PropertyStatus, nil
	default:
		return "", fmt.Errorf("%w: property %q", ErrInvalidEnum, s)
	}
}
