package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/osse101/CraftEconomy_Go/internal/character"
	"github.com/osse101/CraftEconomy_Go/internal/config"
	"github.com/osse101/CraftEconomy_Go/internal/crafting"
)

// LoadCatalog loads and validates the recipe configuration
func LoadCatalog(cfg *config.Config) (*crafting.Catalog, error) {
	loader := crafting.NewRecipeLoader()

	recipeConfig, err := loader.Load(cfg.RecipesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRecipes, err)
	}
	if err := loader.Validate(recipeConfig); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRecipes, err)
	}

	catalog := crafting.NewCatalog(recipeConfig.Recipes)
	slog.Info(LogMsgRecipesLoaded,
		"path", cfg.RecipesPath,
		"recipes", len(recipeConfig.Recipes),
		"checksum", recipeConfig.Checksum)
	return catalog, nil
}

// LoadCharacters loads the character registry. A missing file yields an empty registry.
func LoadCharacters(cfg *config.Config) (*character.Registry, error) {
	registry, err := character.LoadRegistry(cfg.CharactersPath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgCharactersMissing, "path", cfg.CharactersPath)
		return character.NewRegistry(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRegistry, err)
	}
	slog.Info(LogMsgCharactersLoaded, "path", cfg.CharactersPath, "characters", len(registry.IDs()))
	return registry, nil
}
