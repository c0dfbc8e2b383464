package eepmap

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps model names to chip layout descriptors.
type Registry struct {
	maps map[string]Map
}

// NewRegistry returns a registry containing the given maps.
func NewRegistry(maps ...Map) (*Registry, error) {
	r := &Registry{
		maps: make(map[string]Map, len(maps)),
	}
	for _, m := range maps {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a map to the registry. Names are case insensitive.
func (r *Registry) Register(m Map) error {
	name := strings.ToLower(m.Name())
	if _, ok := r.maps[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChip, m.Name())
	}
	r.maps[name] = m
	return nil
}

// Lookup returns the map registered for the given model name.
func (r *Registry) Lookup(name string) (Map, error) {
	m, ok := r.maps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w '%s', supported chips: %s", ErrUnknownChip, name, strings.Join(r.Names(), ", "))
	}
	return m, nil
}

// Names returns the sorted names of all registered maps.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for _, m := range r.maps {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

// Maps returns all registered maps sorted by name.
func (r *Registry) Maps() []Map {
	maps := make([]Map, 0, len(r.maps))
	for _, m := range r.maps {
		maps = append(maps, m)
	}
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].Name() < maps[j].Name()
	})
	return maps
}
