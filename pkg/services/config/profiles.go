package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Registry holds named settings profiles read from an ini file, one
// section per profile:
//
//	[dinner]
//	currency = €
//	discount_base = charged
type Registry interface {
	GetProfiles() []string
	GetProfile(name string) (map[string]any, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles() []string {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles
}

// GetProfile returns the recognised settings keys set in the profile.
func (r *iniRegistry) GetProfile(name string) (map[string]any, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	values := make(map[string]any)
	for _, key := range settingKeys {
		if section.HasKey(key) {
			values[key] = section.Key(key).String()
		}
	}
	return values, nil
}
