package fantasy

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadSettings reads a scoring profile from a YAML file of flat
// key-to-weight pairs and validates it against the replacement contract.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load fantasy settings from %s: %w", path, err)
	}

	raw := k.All()
	s := make(Settings, len(raw))
	for key, val := range raw {
		switch n := val.(type) {
		case int:
			s[key] = float64(n)
		case int64:
			s[key] = float64(n)
		case float64:
			s[key] = n
		default:
			return nil, fmt.Errorf("fantasy setting %q must be numeric, got %T", key, val)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("fantasy settings from %s: %w", path, err)
	}
	return s, nil
}
