package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemID identifies an inventory item.
type ItemID string

const (
	ItemKeyX18    ItemID = "key_x18"
	ItemDocuments ItemID = "documents"
	ItemPistol    ItemID = "pistol"
	ItemMedkit    ItemID = "medkit"
)

// ItemDefinition holds static display metadata for an item.
type ItemDefinition struct {
	ID    ItemID `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph,omitempty"`
}

var items = map[ItemID]ItemDefinition{
	ItemKeyX18:    {ID: ItemKeyX18, Name: "key to lab X18", Glyph: "🔑"},
	ItemDocuments: {ID: ItemDocuments, Name: "classified documents", Glyph: "📄"},
	ItemPistol:    {ID: ItemPistol, Name: "PM pistol", Glyph: "🔫"},
	ItemMedkit:    {ID: ItemMedkit, Name: "medkit", Glyph: "💊"},
}

// shop maps purchasable items to their prices in rubles.
var shop = map[ItemID]int{
	ItemPistol: 500,
}

var titleCaser = cases.Title(language.English)

// Item returns the definition for an item id. Unknown ids resolve to
// not-found rather than failing.
func Item(id ItemID) (ItemDefinition, bool) {
	def, ok := items[id]
	return def, ok
}

// ItemDisplayName returns a title-cased display name for an item,
// falling back to the raw id for unknown items.
func ItemDisplayName(id ItemID) string {
	def, ok := items[id]
	if !ok {
		return string(id)
	}
	return titleCaser.String(def.Name)
}

// ShopPrice returns the price of an item in Sidorovich's shop.
// Items not for sale resolve to not-found.
func ShopPrice(id ItemID) (int, bool) {
	price, ok := shop[id]
	return price, ok
}
