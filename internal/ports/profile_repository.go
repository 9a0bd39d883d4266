package ports

import (
	"context"
	"time"

	"github.com/greendaybank/greenday-cli/internal/domain"
)

// Profile is the locally persisted session preference: the identity last
// used, so one-shot commands can omit --user.
type Profile struct {
	LastUser  domain.Identity
	UpdatedAt time.Time
}

type ProfileRepository interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, profile Profile) error
}
