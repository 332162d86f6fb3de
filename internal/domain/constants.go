package domain

// Entity names used in logs, metrics labels and error messages
const (
	EntityPlayer    = "player"
	EntityItem      = "item"
	EntityInventory = "inventory"
	EntityCharacter = "character"
	EntityMarket    = "market"
	EntityUser      = "user"
)

// Item rarities
const (
	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Field limits shared by validation tags and the schema
const (
	MaxNameLength        = 50
	MaxItemNameLength    = 100
	MaxEmailLength       = 255
	MinPasswordLength    = 8
	MaxPasswordLength    = 72 // bcrypt ignores bytes past 72
	MaxDescriptionLength = 1000

	// MaxInt4 bounds every INTEGER column and serial id; int fields carry it as max=2147483647
	MaxInt4 = 1<<31 - 1
)
