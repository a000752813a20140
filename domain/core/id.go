package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	PresetID ID
	RunID    ID
)

// String conversions for domain IDs
func (id PresetID) String() string { return ID(id).String() }
func (id RunID) String() string    { return ID(id).String() }

// NewPresetID creates a fresh preset identifier
func NewPresetID() PresetID { return PresetID(NewID()) }

// NewRunID creates a fresh evaluation run identifier
func NewRunID() RunID { return RunID(NewID()) }

// ParsePresetID parses a string into PresetID
func ParsePresetID(s string) (PresetID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("preset ID cannot be empty")
	}
	return PresetID(s), nil
}
