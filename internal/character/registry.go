package character

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/validation"
)

// RegistrySchemaVersion is the supported characters.json version
const RegistrySchemaVersion = "1.0"

// RegistryConfig is the JSON shape of the character registry file
type RegistryConfig struct {
	Version    string             `json:"version"`
	Characters []domain.Character `json:"characters"`
}

// Registry serves read-only characters from a file.
// Progression is owned elsewhere; this is a snapshot of it.
type Registry struct {
	byID map[string]domain.Character
}

// NewRegistry indexes characters by id. Later duplicates win.
func NewRegistry(characters []domain.Character) *Registry {
	r := &Registry{byID: make(map[string]domain.Character, len(characters))}
	for _, c := range characters {
		r.byID[c.ID] = c
	}
	return r
}

// LoadRegistry reads and schema-checks a registry file
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read character registry: %w", err)
	}
	if err := validation.NewSchemaValidator().ValidateBytes(data, validation.SchemaCharacters); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, path, err)
	}

	var cfg RegistryConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse character registry: %w", err)
	}
	if cfg.Version != RegistrySchemaVersion {
		return nil, fmt.Errorf("%w: unsupported character registry version %q", domain.ErrInvalidInput, cfg.Version)
	}
	return NewRegistry(cfg.Characters), nil
}

// GetCharacter returns a copy of the character so callers cannot mutate the registry
func (r *Registry) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, id)
	}
	out := domain.Character{
		ID:              c.ID,
		Name:            c.Name,
		Masteries:       copyLevels(c.Masteries),
		Specializations: copyLevels(c.Specializations),
	}
	return &out, nil
}

// IDs lists registered character ids in sorted order
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func copyLevels(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
