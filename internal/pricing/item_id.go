package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxEnchantment is the highest enchantment level an item id can carry
const MaxEnchantment = 4

const levelInfix = "_LEVEL"

// ItemRef is an item id split into its un-enchanted base and enchantment level
type ItemRef struct {
	Base    string
	Enchant int
}

// ParseItemID accepts the "X@n", "X_LEVELn" and "X_LEVELn@n" spellings of an enchanted item.
// Ids without a recognizable suffix are returned unchanged with enchantment 0.
func ParseItemID(id string) ItemRef {
	id = strings.TrimSpace(id)
	ref := ItemRef{Base: id}

	if at := strings.LastIndexByte(ref.Base, '@'); at >= 0 {
		if n, ok := enchantLevel(ref.Base[at+1:]); ok {
			ref.Enchant = n
			ref.Base = ref.Base[:at]
		}
	}

	if idx := strings.LastIndex(ref.Base, levelInfix); idx >= 0 {
		if n, ok := enchantLevel(ref.Base[idx+len(levelInfix):]); ok {
			if ref.Enchant == 0 {
				ref.Enchant = n
			}
			ref.Base = ref.Base[:idx]
		}
	}

	return ref
}

func enchantLevel(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > MaxEnchantment {
		return 0, false
	}
	return n, true
}

// Unenchanted returns the base item reference
func (r ItemRef) Unenchanted() ItemRef {
	return ItemRef{Base: r.Base}
}

// Candidates returns every id under which a quote for this item may have been recorded.
// The order is canonical so that all spellings of one item resolve identically.
func (r ItemRef) Candidates() []string {
	if r.Enchant == 0 {
		return []string{r.Base}
	}
	leveled := fmt.Sprintf("%s%s%d", r.Base, levelInfix, r.Enchant)
	return []string{
		fmt.Sprintf("%s@%d", leveled, r.Enchant),
		fmt.Sprintf("%s@%d", r.Base, r.Enchant),
		leveled,
	}
}

// Candidates is shorthand for ParseItemID(id).Candidates()
func Candidates(id string) []string {
	return ParseItemID(id).Candidates()
}
