package config

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-report/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ProfileRegistry resolves named settings profiles
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]domain.ReportProfile, error)
	GetProfile(ctx context.Context, name string) (domain.ReportProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewProfileRegistry loads an INI file where each section is a profile and
// each key a settings key, e.g.
//
//	[karachi]
//	input = data/karachi.csv
//	report = karachi.pdf
func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]domain.ReportProfile, error) {
	var profiles []domain.ReportProfile
	for _, section := range r.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) > 0 {
			profiles = append(profiles, toProfile(section))
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.ReportProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.ReportProfile{}, fmt.Errorf("profile %s not found", name)
	}
	return toProfile(section), nil
}

func toProfile(section *ini.Section) domain.ReportProfile {
	return domain.ReportProfile{
		Name:     section.Name(),
		Settings: section.KeysHash(),
	}
}
