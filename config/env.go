package config

import (
	"strings"
)

// EnvPrefix is the prefix of environment variables that override
// configuration values, e.g. PAGEGEN_PUBLISHDIR=out.
const EnvPrefix = "PAGEGEN_"

// SetEnvVars sets vars on the form key=value in the oldVars slice.
func SetEnvVars(oldVars *[]string, keyValues ...string) {
	for i := 0; i < len(keyValues); i += 2 {
		setEnvVar(oldVars, keyValues[i], keyValues[i+1])
	}
}

func setEnvVar(vars *[]string, key, value string) {
	for i := range *vars {
		if strings.HasPrefix((*vars)[i], key+"=") {
			(*vars)[i] = key + "=" + value
			return
		}
	}
	// New var.
	*vars = append(*vars, key+"="+value)
}

// SplitEnvVar splits an environment variable on the form key=value.
func SplitEnvVar(v string) (string, string) {
	name, value, _ := strings.Cut(v, "=")
	return name, value
}

// EnvOverrides extracts the PAGEGEN_ prefixed variables from environ into
// config keys. An underscore after the prefix marks a nested key, so
// PAGEGEN_MARKUP_GOLDMARK_UNSAFE becomes markup.goldmark.unsafe.
func EnvOverrides(environ []string) map[string]string {
	overrides := make(map[string]string)
	for _, v := range environ {
		name, value := SplitEnvVar(v)
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.TrimPrefix(name, EnvPrefix)
		if key == "" {
			continue
		}
		key = strings.ToLower(strings.ReplaceAll(key, "_", "."))
		overrides[key] = value
	}
	return overrides
}

// ApplyEnv sets every PAGEGEN_ prefixed variable in environ on cfg.
func ApplyEnv(cfg Provider, environ []string) {
	for k, v := range EnvOverrides(environ) {
		cfg.Set(k, v)
	}
}
