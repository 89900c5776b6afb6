package maps

import (
	"strings"

	"github.com/spf13/cast"
)

// Params is a map where all keys are lower case.
type Params map[string]any

// Set overwrites values in p with values in pp for common or new keys.
// This is done recursively.
func (p Params) Set(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		switch vvv := vv.(type) {
		case Params:
			if pv, ok := v.(Params); ok {
				vvv.Set(pv)
			} else {
				p[k] = v
			}
		default:
			p[k] = v
		}
	}
}

// SetDefaults adds values from pp for keys not already present in p.
// Nested Params are filled recursively.
func (p Params) SetDefaults(pp Params) {
	for k, v := range pp {
		vv, found := p[k]
		if !found {
			p[k] = v
			continue
		}
		if p1, ok := vv.(Params); ok {
			if p2, ok := v.(Params); ok {
				p1.SetDefaults(p2)
			}
		}
	}
}

// Get does a lower case and nested search in this map.
// It will return nil if none found.
func (p Params) Get(indices ...string) any {
	v, _, _ := getNested(p, indices)
	return v
}

// GetString is Get followed by cast.ToString.
func (p Params) GetString(indices ...string) string {
	return cast.ToString(p.Get(indices...))
}

// IsSet reports whether the nested key is present, even if its value is nil.
func (p Params) IsSet(indices ...string) bool {
	_, key, m := getNested(p, indices)
	if m == nil {
		return false
	}
	_, found := m[strings.ToLower(key)]
	return found
}

func getNested(m map[string]any, indices []string) (any, string, map[string]any) {
	if len(indices) == 0 {
		return nil, "", nil
	}

	first := indices[0]
	v, found := m[strings.ToLower(first)]
	if !found {
		if len(indices) == 1 {
			return nil, first, m
		}
		return nil, "", nil
	}

	if len(indices) == 1 {
		return v, first, m
	}

	switch m2 := v.(type) {
	case Params:
		return getNested(m2, indices[1:])
	case map[string]any:
		return getNested(m2, indices[1:])
	default:
		return nil, "", nil
	}
}

// PrepareParams
// * makes all the keys in the given map lower cased and will do so
// * This will modify the map given.
// * Any nested map[interface{}]interface{}, map[string]interface{},map[string]string  will be converted to Params.
func PrepareParams(m Params) {
	for k, v := range m {
		var retyped bool
		lKey := strings.ToLower(k)

		switch vv := v.(type) {
		case map[any]any:
			var p Params = cast.ToStringMap(v)
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]any:
			var p Params = vv
			v = p
			PrepareParams(p)
			retyped = true
		case map[string]string:
			p := make(Params)
			for k, v := range vv {
				p[k] = v
			}
			v = p
			PrepareParams(p)
			retyped = true
		case Params:
			PrepareParams(vv)
		}

		if retyped || k != lKey {
			delete(m, k)
			m[lKey] = v
		}
	}
}
