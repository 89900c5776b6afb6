package metadecoders

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/sunwei/pagegen/common/maps"
	yaml "gopkg.in/yaml.v3"
)

// Decoder provides some configuration options for the decoders.
type Decoder struct{}

// Default is a Decoder in its default configuration.
var Default = Decoder{}

// ErrNotAMap is returned when the data decodes to something other than a
// key/value mapping, e.g. a list or a scalar.
var ErrNotAMap = errors.New("metadata is not a key/value mapping")

// UnmarshalToMap will unmarshall data in format f into a new map. This is
// what's needed for Hugo's front matter decoding.
func (d Decoder) UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if data == nil {
		return m, nil
	}

	err := d.UnmarshalTo(data, f, &m)

	return m, err
}

// UnmarshalFileToMap is the same as UnmarshalToMap, but reads the data from
// the given filename.
func (d Decoder) UnmarshalFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	format := FormatFromString(filename)
	if format == "" {
		return nil, fmt.Errorf("%q is not a valid configuration format", filename)
	}

	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return d.UnmarshalToMap(data, format)
}

// UnmarshalTo unmarshals data in format f into v.
func (d Decoder) UnmarshalTo(data []byte, f Format, v any) error {
	var err error

	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		var raw any
		if err = yaml.Unmarshal(data, &raw); err != nil {
			break
		}
		err = assignYAML(raw, v)
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}

	if err != nil {
		return fmt.Errorf("unmarshal failed: %w", toFormatError(err))
	}

	return nil
}

// assignYAML copies a decoded YAML document into v. The top level must be a
// mapping (or empty) when v is a *map[string]any.
func assignYAML(raw any, v any) error {
	m, ok := v.(*map[string]any)
	if !ok {
		b, err := yaml.Marshal(raw)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(b, v)
	}

	switch vv := raw.(type) {
	case nil:
		return nil
	case map[string]any:
		*m = maps.CleanConfigStringMap(vv)
		return nil
	case map[any]any:
		sm, err := maps.ToStringMapE(vv)
		if err != nil {
			return err
		}
		*m = maps.CleanConfigStringMap(sm)
		return nil
	default:
		return fmt.Errorf("%w: got %T", ErrNotAMap, raw)
	}
}

func toFormatError(err error) error {
	var tomlErr *toml.DecodeError
	if errors.As(err, &tomlErr) {
		row, col := tomlErr.Position()
		return fmt.Errorf("line %d, column %d: %w", row, col, err)
	}
	return err
}
