package entities

import (
	"fmt"
	"time"
)

// AnalystID represents a unique analyst identifier
type AnalystID string

// Analyst represents an operational analyst on the procurement team
type Analyst struct {
	ID             AnalystID
	Name           string
	HireDate       time.Time
	Specialization string // product category, empty when the analyst is a generalist
}

// NewAnalyst creates a validated Analyst
func NewAnalyst(id AnalystID, name string, hireDate time.Time, specialization string) (*Analyst, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("analyst ID cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("analyst name cannot be empty")
	}

	return &Analyst{
		ID:             id,
		Name:           name,
		HireDate:       hireDate,
		Specialization: specialization,
	}, nil
}
