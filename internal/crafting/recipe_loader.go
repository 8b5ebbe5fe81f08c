package crafting

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
	"github.com/osse101/CraftEconomy_Go/internal/validation"
)

// Sentinel errors for recipe loader
var (
	ErrDuplicateRecipeKey = errors.New("duplicate recipe key")
	ErrInvalidItem        = errors.New("invalid item reference")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Recipe tier bounds
const (
	MinTier = 1
	MaxTier = 8
)

// RecipeConfig represents the JSON recipe configuration
type RecipeConfig struct {
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Recipes     []domain.Recipe `json:"recipes"`

	// Checksum is the sha256 of the file the config was read from
	Checksum string `json:"-"`
}

// RecipeLoader handles loading and validating recipe configuration
type RecipeLoader interface {
	Load(path string) (*RecipeConfig, error)
	Validate(config *RecipeConfig) error
}

type recipeLoader struct {
	schemas validation.SchemaValidator
}

// NewRecipeLoader creates a new RecipeLoader instance
func NewRecipeLoader() RecipeLoader {
	return &recipeLoader{schemas: validation.NewSchemaValidator()}
}

// Load reads the recipe JSON file, checks it against the bundled schema and parses it
func (l *recipeLoader) Load(path string) (*RecipeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe config file: %w", err)
	}

	if err := l.schemas.ValidateBytes(data, validation.SchemaRecipes); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	var config RecipeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse recipe config: %w", err)
	}

	hash := sha256.Sum256(data)
	config.Checksum = hex.EncodeToString(hash[:])
	return &config, nil
}

// Validate checks the recipe configuration for errors
func (l *recipeLoader) Validate(config *RecipeConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if config.Version != ConfigSchemaVersion {
		return fmt.Errorf("%w: unsupported version %q (expected %s)", ErrInvalidConfig, config.Version, ConfigSchemaVersion)
	}

	keys := make(map[string]bool, len(config.Recipes))
	for i, recipe := range config.Recipes {
		if recipe.ID == "" {
			return fmt.Errorf("%w: recipe at index %d has empty id", ErrInvalidConfig, i)
		}
		if keys[recipe.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateRecipeKey, recipe.ID)
		}
		keys[recipe.ID] = true

		if err := validateRecipe(recipe); err != nil {
			return err
		}
	}
	return nil
}

func validateRecipe(recipe domain.Recipe) error {
	if recipe.Tier < MinTier || recipe.Tier > MaxTier {
		return fmt.Errorf("%w: recipe '%s' has tier %d outside %d..%d", ErrInvalidConfig, recipe.ID, recipe.Tier, MinTier, MaxTier)
	}

	known := false
	for _, c := range domain.Categories {
		if recipe.Category == c {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: recipe '%s' category %q", domain.ErrUnknownCategory, recipe.ID, recipe.Category)
	}

	if len(recipe.Ingredients) == 0 {
		return fmt.Errorf("%w: recipe '%s' has no ingredients", ErrInvalidConfig, recipe.ID)
	}
	for j, ing := range recipe.Ingredients {
		if ing.ItemID == "" {
			return fmt.Errorf("%w: recipe '%s' ingredient[%d] has empty item_id", ErrInvalidItem, recipe.ID, j)
		}
		if ing.Quantity <= 0 {
			return fmt.Errorf("%w: recipe '%s' ingredient[%d] has non-positive quantity", ErrInvalidConfig, recipe.ID, j)
		}
	}

	if recipe.ArtifactQty < 0 || (recipe.ArtifactQty > 0 && recipe.ArtifactID == "") {
		return fmt.Errorf("%w: recipe '%s' has an invalid artifact", ErrInvalidItem, recipe.ID)
	}
	if recipe.OutputQuantity < 0 {
		return fmt.Errorf("%w: recipe '%s' has negative output_quantity", ErrInvalidConfig, recipe.ID)
	}
	if recipe.BaseFocus < 0 {
		return fmt.Errorf("%w: recipe '%s' has negative base_focus", ErrInvalidConfig, recipe.ID)
	}
	if recipe.BonusCity != "" {
		if _, err := domain.ParseCity(string(recipe.BonusCity)); err != nil {
			return fmt.Errorf("recipe '%s': %w", recipe.ID, err)
		}
	}
	return nil
}
