package crop

import (
	"fmt"
	"sort"
	"strings"

	"HarvestGuard/internal/model"
)

// Crop names as farmers enter them.
const (
	Potato = "আলু"
	Rice   = "ধান"
	Jute   = "পাট"
	Wheat  = "গম"
	Maize  = "ভুট্টা"
)

// DefaultCrop is the profile unknown crop names resolve to.
const DefaultCrop = Rice

// Table is an immutable crop name -> profile lookup with a fallback entry.
type Table struct {
	profiles map[string]model.CropProfile
	fallback string
}

// NewTable copies profiles into a Table. fallback must name one of them.
func NewTable(profiles map[string]model.CropProfile, fallback string) (*Table, error) {
	if _, ok := profiles[fallback]; !ok {
		return nil, fmt.Errorf("fallback crop %q not in table", fallback)
	}
	t := &Table{profiles: make(map[string]model.CropProfile, len(profiles)), fallback: fallback}
	for name, p := range profiles {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty crop name")
		}
		t.profiles[name] = cloneProfile(p)
	}
	return t, nil
}

// Resolve returns the profile for cropType, trimmed and matched exactly.
// Unknown names get the fallback profile.
func (t *Table) Resolve(cropType string) model.CropProfile {
	if p, ok := t.profiles[strings.TrimSpace(cropType)]; ok {
		return cloneProfile(p)
	}
	return cloneProfile(t.profiles[t.fallback])
}

// Known reports whether cropType has its own profile.
func (t *Table) Known(cropType string) bool {
	_, ok := t.profiles[strings.TrimSpace(cropType)]
	return ok
}

// Fallback returns the name of the fallback crop.
func (t *Table) Fallback() string { return t.fallback }

// Names returns the known crop names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.profiles))
	for name := range t.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns a copy of every profile keyed by crop name.
func (t *Table) Profiles() map[string]model.CropProfile {
	out := make(map[string]model.CropProfile, len(t.profiles))
	for name, p := range t.profiles {
		out[name] = cloneProfile(p)
	}
	return out
}

func cloneProfile(p model.CropProfile) model.CropProfile {
	actions := make(map[model.StorageType][]model.Action, len(p.StorageActions))
	for st, list := range p.StorageActions {
		actions[st] = append([]model.Action(nil), list...)
	}
	p.StorageActions = actions
	return p
}
