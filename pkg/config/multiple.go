package config

import "sort"

// MultipleConfiguration is a named set of profiles with a guaranteed
// DefaultProfile entry.
type MultipleConfiguration struct {
	profiles map[string]*Configuration
}

// MultipleOption configures NewMultiple.
type MultipleOption func(*multipleConfig)

type multipleConfig struct {
	defaults DefaultsProvider
}

// WithDefaultsProvider sets the options used to synthesize the default
// profile.
func WithDefaultsProvider(provider DefaultsProvider) MultipleOption {
	return func(cfg *multipleConfig) {
		cfg.defaults = provider
	}
}

// NewMultiple stores profiles. When the default profile is absent, nil, or
// empty, it is replaced by a configuration holding the defaults. Nil entries
// under other names become empty configurations.
func NewMultiple(profiles map[string]*Configuration, fns ...MultipleOption) *MultipleConfiguration {
	cfg := &multipleConfig{defaults: BuiltinDefaults}
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(cfg)
	}

	stored := make(map[string]*Configuration, len(profiles)+1)
	for name, profile := range profiles {
		if profile == nil {
			profile = New(nil)
		}
		stored[name] = profile
	}

	if current, ok := stored[DefaultProfile]; !ok || len(current.options) == 0 {
		stored[DefaultProfile] = NewDefault(cfg.defaults)
	}

	return &MultipleConfiguration{profiles: stored}
}

// Profile looks up a profile by name. An empty name selects the default.
func (m *MultipleConfiguration) Profile(name string) (*Configuration, error) {
	if name == "" {
		name = DefaultProfile
	}
	if m == nil {
		return nil, profileNotFound(name)
	}
	profile, ok := m.profiles[name]
	if !ok {
		return nil, profileNotFound(name)
	}
	return profile, nil
}

// Default returns the default profile.
func (m *MultipleConfiguration) Default() *Configuration {
	if m == nil {
		return NewDefault(nil)
	}
	return m.profiles[DefaultProfile]
}

// Names lists the profile names in lexical order.
func (m *MultipleConfiguration) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of profiles, including the default.
func (m *MultipleConfiguration) Len() int {
	if m == nil {
		return 0
	}
	return len(m.profiles)
}
