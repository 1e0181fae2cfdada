package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ReadFromEnv fills cfg from environment variables, layered over defaults
// (which may be nil). Nested fields are addressed with a double
// underscore, e.g. REDIS__ADDRESS maps to Config.Redis.Address.
func ReadFromEnv(cfg any, defaults any) error {
	k := koanf.New(".")

	if defaults != nil {
		if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
			return err
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil)
	if err != nil {
		return err
	}

	return k.Unmarshal("", cfg)
}
