package domain

// Item is a catalog entry. Names are not unique.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Rarity      string  `json:"rarity"`
}

// ItemInput carries every mutable item field
type ItemInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Rarity      string  `json:"rarity" validate:"omitempty,oneof=common uncommon rare epic legendary"`
}

// RarityOrDefault returns the rarity, falling back to common
func (in ItemInput) RarityOrDefault() string {
	if in.Rarity == "" {
		return RarityCommon
	}
	return in.Rarity
}
