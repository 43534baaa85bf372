package config

import (
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/doorap-lab/doorap/pkg/usecase"
)

// Engine is the TOML-configurable tuning of the alert rules and the
// background refresh. All values have working defaults, so the file is
// optional.
type Engine struct {
	path string

	LeaseExpiryDays     int `toml:"lease_expiry_days"`
	DocumentExpiryDays  int `toml:"document_expiry_days"`
	RefreshIntervalMins int `toml:"refresh_interval_minutes"`
	ChecklistMaxSteps   int `toml:"checklist_max_steps"`
}

func defaultEngine() Engine {
	return Engine{
		LeaseExpiryDays:     60,
		DocumentExpiryDays:  30,
		RefreshIntervalMins: 15,
		ChecklistMaxSteps:   8,
	}
}

// Flags returns CLI flags for engine configuration
func (e *Engine) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "engine-config",
			Usage:       "Path to the engine tuning TOML file",
			Sources:     cli.EnvVars("DOORAP_ENGINE_CONFIG"),
			Destination: &e.path,
		},
	}
}

// Validate checks the loaded values
func (e *Engine) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.LeaseExpiryDays, validation.Required, validation.Min(1), validation.Max(365)),
		validation.Field(&e.DocumentExpiryDays, validation.Required, validation.Min(1), validation.Max(365)),
		validation.Field(&e.RefreshIntervalMins, validation.Required, validation.Min(1)),
		validation.Field(&e.ChecklistMaxSteps, validation.Required, validation.Min(1), validation.Max(20)),
	)
}

// Load reads the TOML file if one is configured and applies defaults for
// everything left unset.
func (e *Engine) Load() error {
	loaded := defaultEngine()

	if e.path != "" {
		data, err := os.ReadFile(e.path)
		if err != nil {
			return goerr.Wrap(err, "failed to read engine config", goerr.V("path", e.path))
		}
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return goerr.Wrap(err, "failed to parse engine config", goerr.V("path", e.path))
		}
	}

	loaded.path = e.path
	*e = loaded

	if err := e.Validate(); err != nil {
		return goerr.Wrap(err, "invalid engine config", goerr.V("path", e.path))
	}
	return nil
}

// RefreshInterval returns the background refresh interval
func (e *Engine) RefreshInterval() time.Duration {
	return time.Duration(e.RefreshIntervalMins) * time.Minute
}

// UseCaseOptions translates the tuning into use case options
func (e *Engine) UseCaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithLeaseExpiryWindow(time.Duration(e.LeaseExpiryDays) * 24 * time.Hour),
		usecase.WithDocumentExpiryWindow(time.Duration(e.DocumentExpiryDays) * 24 * time.Hour),
	}
}
