package settings

import (
	"gopkg.in/yaml.v3"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
)

// ParseYAML decodes an operator-edited settings file and validates it.
// File shape:
//
//	thresholds:
//	  1: 10
//	  2: 15
//	kinds:
//	  1: [creatureType, ac]
//	  2: [speed, senses]
func ParseYAML(data []byte) (*entities.TierSettings, error) {
	var parsed entities.TierSettings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse settings YAML")
	}

	if err := Validate(&parsed); err != nil {
		return nil, err
	}
	normalize(&parsed)
	return &parsed, nil
}

// ToYAML encodes settings for export
func ToYAML(s *entities.TierSettings) ([]byte, error) {
	if s == nil {
		return nil, errors.InvalidArgument("settings cannot be nil")
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode settings YAML")
	}
	return data, nil
}
