package memory

import (
	"fmt"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
)

// AnalystRepository provides in-memory analyst storage
type AnalystRepository struct {
	analysts []entities.Analyst
	index    map[entities.AnalystID]int
}

// NewAnalystRepository creates a new in-memory analyst repository
func NewAnalystRepository(expected int) *AnalystRepository {
	return &AnalystRepository{
		analysts: make([]entities.Analyst, 0, expected),
		index:    make(map[entities.AnalystID]int, expected),
	}
}

// Verify interface compliance
var _ repositories.AnalystRepository = (*AnalystRepository)(nil)

// LoadAnalysts loads analysts into the repository
func (r *AnalystRepository) LoadAnalysts(analysts []*entities.Analyst) error {
	for _, a := range analysts {
		r.index[a.ID] = len(r.analysts)
		r.analysts = append(r.analysts, *a)
	}
	return nil
}

// GetAnalyst returns the analyst with the given ID
func (r *AnalystRepository) GetAnalyst(id entities.AnalystID) (*entities.Analyst, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("analyst not found: %s", id)
	}
	return &r.analysts[i], nil
}

// GetAllAnalysts returns all analysts
func (r *AnalystRepository) GetAllAnalysts() ([]*entities.Analyst, error) {
	out := make([]*entities.Analyst, 0, len(r.analysts))
	for i := range r.analysts {
		out = append(out, &r.analysts[i])
	}
	return out, nil
}
