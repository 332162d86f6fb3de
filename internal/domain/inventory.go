package domain

// Inventory holds a player's money and a serialized item list
type Inventory struct {
	ID       int    `json:"id"`
	Money    int    `json:"money"`
	ItemList string `json:"item_list"`
}

// InventoryInput carries every mutable inventory field
type InventoryInput struct {
	Money    int    `json:"money" validate:"min=0,max=2147483647"`
	ItemList string `json:"item_list"`
}
