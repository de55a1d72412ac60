package appconfig

import "context"

// Repository defines persistence for the configuration singleton.
type Repository interface {
	Get(ctx context.Context) (*AppConfig, error)
	Save(ctx context.Context, cfg *AppConfig) error
}
