package refdata

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// DefaultJobs builds the static job list time blocks are tracked against.
func DefaultJobs() *domain.JobSet {
	return domain.NewJobSet([]domain.Job{
		{ID: "rivian", Name: "Rivian", Color: 0xFF6B35},
		{ID: "plato", Name: "Plato", Color: 0x4ECDC4},
	})
}
