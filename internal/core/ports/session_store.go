package ports

import (
	"context"

	"github.com/storehub/dashboard-system/internal/core/domain"
)

// SessionStore persists the single session snapshot so a restart rehydrates
// the last session. Load must degrade to the anonymous session when the
// record is missing or unreadable.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}
