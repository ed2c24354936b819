package config

import (
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/thoreinstein/propman/internal/errors"
)

// Validate checks field values. The returned error matches
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Version, validation.Required, validation.In(DefaultVersion).Error("unsupported config version")),
		validation.Field(&c.Color, validation.Required, validation.In("auto", "always", "never")),
		validation.Field(&c.Style, validation.Required, validation.By(knownStyle)),
		validation.Field(&c.LogFormat, validation.Required, validation.In("text", "json")),
		validation.Field(&c.Move, validation.Each(validation.Required, validation.By(propertyName))),
		validation.Field(&c.Remove, validation.Each(validation.Required, validation.By(propertyName))),
	)
	if err != nil {
		return errors.Mark(err, errors.ErrInvalidConfig)
	}
	return nil
}

func knownStyle(value any) error {
	name, _ := value.(string)
	for _, s := range styles.Names() {
		if strings.EqualFold(s, name) {
			return nil
		}
	}
	return validation.NewError("validation_unknown_style", "unknown chroma style")
}

var errPropertyName = validation.NewError("validation_property_name", "must not contain colons or line breaks")

// CheckPropertyName rejects names that cannot be matched as "name:" or
// "name::" on a single line. Spaces are allowed.
func CheckPropertyName(name string) error {
	if strings.ContainsAny(name, ":\r\n") {
		return errPropertyName
	}
	return nil
}

func propertyName(value any) error {
	name, _ := value.(string)
	return CheckPropertyName(name)
}
