package kinematics

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/fieldturn/utils"
)

// Config is how you describe a robot to the planner. Curvature fields take precedence over the matching
// turning radius fields when both are set.
type Config struct {
	Name                   string   `json:"name,omitempty"`
	WidthM                 float64  `json:"width_m"`
	CoverageWidthM         float64  `json:"coverage_width_m,omitempty"`
	CruiseVelocityMPS      float64  `json:"cruise_velocity_mps,omitempty"`
	TurnVelocityMPS        *float64 `json:"turn_velocity_mps,omitempty"`
	MinTurningRadiusM      float64  `json:"min_turning_radius_m,omitempty"`
	MaxCurvature           float64  `json:"max_curvature,omitempty"`
	MaxDiffCurvature       float64  `json:"max_diff_curvature,omitempty"`
	MinTurningRadiusLeftM  *float64 `json:"min_turning_radius_left_m,omitempty"`
	MinTurningRadiusRightM *float64 `json:"min_turning_radius_right_m,omitempty"`
	MaxCurvatureLeft       *float64 `json:"max_curvature_left,omitempty"`
	MaxCurvatureRight      *float64 `json:"max_curvature_right,omitempty"`
}

// Validate ensures all parts of the config are valid. Every problem found is reported.
func (cfg *Config) Validate(path string) error {
	var errs error
	switch {
	case cfg.WidthM == 0:
		errs = multierr.Append(errs, utils.NewFieldRequiredError(path, "width_m"))
	case cfg.WidthM < 0:
		errs = multierr.Append(errs, utils.NewOutOfRangeFieldError(path, "width_m", cfg.WidthM, "greater than 0"))
	}
	if cfg.CoverageWidthM < 0 {
		errs = multierr.Append(errs,
			utils.NewOutOfRangeFieldError(path, "coverage_width_m", cfg.CoverageWidthM, "at least 0"))
	}
	if cfg.CruiseVelocityMPS < 0 {
		errs = multierr.Append(errs,
			utils.NewOutOfRangeFieldError(path, "cruise_velocity_mps", cfg.CruiseVelocityMPS, "at least 0"))
	}
	if cfg.TurnVelocityMPS != nil && *cfg.TurnVelocityMPS < 0 {
		errs = multierr.Append(errs,
			utils.NewOutOfRangeFieldError(path, "turn_velocity_mps", *cfg.TurnVelocityMPS, "at least 0"))
	}
	return errs
}

// ReadConfig decodes a JSON robot description.
func ReadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "cannot decode robot config")
	}
	return &cfg, nil
}

// AttributeMap is a robot description decoded from a generic document, as found in a larger job file.
type AttributeMap map[string]interface{}

// ConfigFromAttributes converts an attribute map into a Config using the config's JSON field names.
func ConfigFromAttributes(attributes AttributeMap) (*Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: &cfg})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return nil, errors.Wrap(err, "cannot decode robot attributes")
	}
	return &cfg, nil
}

// ConfigSchema returns the JSON schema of a robot config.
func ConfigSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&Config{})
}

// NewRobotFromConfig validates cfg and builds the robot it describes.
func NewRobotFromConfig(cfg *Config) (*Robot, error) {
	if err := cfg.Validate("robot"); err != nil {
		return nil, multierr.Combine(ErrInvalidConfiguration, err)
	}
	r, err := NewRobot(cfg.WidthM, cfg.CoverageWidthM)
	if err != nil {
		return nil, err
	}
	r.SetName(cfg.Name)
	if cfg.CruiseVelocityMPS > 0 {
		r.SetCruiseVel(cfg.CruiseVelocityMPS)
	}
	if cfg.TurnVelocityMPS != nil {
		r.SetTurnVel(*cfg.TurnVelocityMPS)
	}

	switch {
	case cfg.MaxCurvature != 0:
		r.SetMaxCurv(cfg.MaxCurvature)
	case cfg.MinTurningRadiusM != 0:
		r.SetMinTurningRadius(cfg.MinTurningRadiusM)
	}
	r.SetMaxDiffCurv(cfg.MaxDiffCurvature)

	switch {
	case cfg.MaxCurvatureLeft != nil:
		r.SetMaxCurvLeft(*cfg.MaxCurvatureLeft)
	case cfg.MinTurningRadiusLeftM != nil:
		r.SetMinTurningRadiusLeft(*cfg.MinTurningRadiusLeftM)
	}
	switch {
	case cfg.MaxCurvatureRight != nil:
		r.SetMaxCurvRight(*cfg.MaxCurvatureRight)
	case cfg.MinTurningRadiusRightM != nil:
		r.SetMinTurningRadiusRight(*cfg.MinTurningRadiusRightM)
	}
	return r, nil
}
