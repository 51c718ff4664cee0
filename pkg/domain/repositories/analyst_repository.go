package repositories

import "github.com/mvidal/opskpi/pkg/domain/entities"

// AnalystRepository provides access to the analyst roster
type AnalystRepository interface {
	GetAnalyst(id entities.AnalystID) (*entities.Analyst, error)
	GetAllAnalysts() ([]*entities.Analyst, error)
	LoadAnalysts(analysts []*entities.Analyst) error
}
