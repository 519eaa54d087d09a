package workflows

import (
	"context"

	"github.com/PolarWolf314/keepsake/internal/configs"
	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
	"github.com/PolarWolf314/keepsake/internal/history"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Force overwrites an existing config.toml.
	Force bool
}

// InitResult contains the outcome of the init workflow.
type InitResult struct {
	ConfigPath  string
	Overwritten bool
}

// InitConfig writes the default configuration.
//
// Returns ErrConfigExists when config.toml exists and Force is not set.
func InitConfig(ctx context.Context, opts InitOptions) (*InitResult, error) {
	exists, err := configs.ConfigExists()
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, kerrors.ErrConfigExists
	}

	if err := configs.SaveConfig(configs.DefaultConfig()); err != nil {
		return nil, err
	}
	history.Log(history.Entry{Operation: history.OpInit})

	return &InitResult{
		ConfigPath:  configs.KeepsakeSettings.ConfigPath(),
		Overwritten: exists,
	}, nil
}
