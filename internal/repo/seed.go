package repo

import "context"

// SeedStateRepository guards first-time seeding. Claim must be atomic: of any
// number of concurrent callers, exactly one sees true.
type SeedStateRepository interface {
	Claim(ctx context.Context) (bool, error)
}
