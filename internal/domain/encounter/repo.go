package encounter

import (
	"context"
	"time"
)

// Repository is the persistence contract for encounters. Implementations
// must keep the three underlying tables consistent under the composite key.
type Repository interface {
	History(ctx context.Context, studentID string) ([]Summary, error)
	DiagnosesForDate(ctx context.Context, studentID string, recordedAt time.Time) ([]string, error)
	SaveEncounter(ctx context.Context, enc *Encounter) error
	DeleteOne(ctx context.Context, studentID string, recordedAt time.Time) error
	DeleteAll(ctx context.Context, studentID string) error
}
