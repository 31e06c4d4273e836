package config

import "context"

// Loader is the interface for a format-specific sweep file loader.
type Loader interface {
	// Load reads every sweep file under the given paths, merges them and
	// returns the resulting plan with defaults applied. It does not
	// validate the plan; callers apply overrides first and then call
	// Plan.Validate.
	Load(ctx context.Context, paths ...string) (*Plan, error)
}
