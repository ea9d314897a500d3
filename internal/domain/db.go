package domain

import "context"

// Database defines lifecycle operations for the backing store. The
// implementation owns its migration files and strategy, so the whole
// backend stays swappable behind the repository interfaces.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
