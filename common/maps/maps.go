package maps

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/sunwei/pagegen/types"
)

// ToParamsAndPrepare converts in to Params and prepares it for use.
// If in is nil, an empty map is returned.
// See PrepareParams.
func ToParamsAndPrepare(in any) (Params, bool) {
	if types.IsNil(in) {
		return Params{}, true
	}
	m, err := ToStringMapE(in)
	if err != nil {
		return nil, false
	}
	PrepareParams(m)
	return m, true
}

// MustToParamsAndPrepare calls ToParamsAndPrepare and panics if it fails.
func MustToParamsAndPrepare(in any) Params {
	p, ok := ToParamsAndPrepare(in)
	if !ok {
		panic(fmt.Sprintf("cannot convert %T to maps.Params", in))
	}
	return p
}

// ToStringMapE converts in to map[string]interface{}.
func ToStringMapE(in any) (map[string]any, error) {
	switch vv := in.(type) {
	case Params:
		return vv, nil
	case map[string]string:
		m := map[string]any{}
		for k, v := range vv {
			m[k] = v
		}
		return m, nil
	default:
		return cast.ToStringMapE(in)
	}
}

// ToStringMap converts in to map[string]interface{}.
func ToStringMap(in any) map[string]any {
	m, _ := ToStringMapE(in)
	return m
}

// ToStringMapString converts in to map[string]string.
func ToStringMapString(in any) map[string]string {
	m, err := ToStringMapE(in)
	if err != nil {
		return nil
	}
	return cast.ToStringMapString(m)
}

// CleanConfigStringMap replaces the nested map[interface{}]interface{} values
// YAML decoding produces for non-string keys with map[string]interface{}, recursively, leaving key case as-is.
func CleanConfigStringMap(m map[string]any) map[string]any {
	n := make(map[string]any, len(m))
	for k, v := range m {
		n[k] = cleanValue(v)
	}
	return n
}

func cleanValue(v any) any {
	switch vv := v.(type) {
	case map[any]any:
		return CleanConfigStringMap(cast.ToStringMap(vv))
	case map[string]any:
		return CleanConfigStringMap(vv)
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = cleanValue(e)
		}
		return s
	default:
		return v
	}
}
