package domain

// Category identifies the crafting activity a recipe belongs to.
type Category string

const (
	CategoryGear     Category = "gear"
	CategoryFood     Category = "food"
	CategoryPotion   Category = "potion"
	CategoryRefining Category = "refining"
)

// Categories lists every supported activity in display order
var Categories = []Category{CategoryGear, CategoryFood, CategoryPotion, CategoryRefining}

// Ingredient is a single material requirement of a recipe
type Ingredient struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Recipe is immutable reference data describing one craftable output.
// Recipes are loaded at startup and never mutated afterwards.
// ArtifactHearts is display-only: the artifact's market price already covers the hearts spent on it.
type Recipe struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Tier           int          `json:"tier"`
	Category       Category     `json:"category"`
	Ingredients    []Ingredient `json:"ingredients"`
	ArtifactID     string       `json:"artifact_id,omitempty"`
	ArtifactQty    int          `json:"artifact_qty,omitempty"`
	ArtifactHearts int          `json:"artifact_hearts,omitempty"`
	OutputItemID   string       `json:"output_item_id,omitempty"` // defaults to ID
	OutputQuantity int          `json:"output_quantity"`
	BaseFocus      float64      `json:"base_focus"`
	BonusCity      City         `json:"bonus_city,omitempty"`
	MasteryID      string       `json:"mastery_id,omitempty"`
	SpecID         string       `json:"spec_id,omitempty"`
}

// OutputID returns the market item id of the crafted product
func (r Recipe) OutputID() string {
	if r.OutputItemID != "" {
		return r.OutputItemID
	}
	return r.ID
}

// HasArtifact reports whether the recipe consumes an artifact
func (r Recipe) HasArtifact() bool {
	return r.ArtifactID != "" && r.ArtifactQty > 0
}

// Outputs returns the number of items produced per craft, never less than one.
func (r Recipe) Outputs() int {
	if r.OutputQuantity < 1 {
		return 1
	}
	return r.OutputQuantity
}

// MarketItemIDs returns every item id whose price is needed to evaluate the recipe
func (r Recipe) MarketItemIDs() []string {
	ids := make([]string, 0, len(r.Ingredients)+2)
	for _, ing := range r.Ingredients {
		ids = append(ids, ing.ItemID)
	}
	if r.HasArtifact() {
		ids = append(ids, r.ArtifactID)
	}
	return append(ids, r.OutputID())
}
