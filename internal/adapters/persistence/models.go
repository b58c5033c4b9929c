package persistence

// Every catalog table carries a position column; rows are read back ordered by it so
// catalog order (and with it recipe expansion order) survives a save/load cycle.
// IDs are not unique keys: duplicates are stored as given and the catalog keeps the first.

// ItemModel represents the items table
type ItemModel struct {
	Position  int    `gorm:"column:position;primaryKey;autoIncrement:false"`
	ItemID    string `gorm:"column:item_id;not null;index"`
	NameJP    string `gorm:"column:name_jp"`
	NameEN    string `gorm:"column:name_en"`
	SpriteCol int    `gorm:"column:sprite_col;not null;default:0"`
	SpriteRow int    `gorm:"column:sprite_row;not null;default:0"`
	IsSeed    int    `gorm:"column:is_seed;not null;default:0"` // 0 or 1 (SQLite compatible)
}

func (ItemModel) TableName() string {
	return "items"
}

// FacilityModel represents the facilities table
type FacilityModel struct {
	Position    int     `gorm:"column:position;primaryKey;autoIncrement:false"`
	FacilityID  string  `gorm:"column:facility_id;not null;index"`
	ProcessTime float64 `gorm:"column:process_time;not null"` // minutes per cycle
	SpriteCol   int     `gorm:"column:sprite_col;not null;default:0"`
	SpriteRow   int     `gorm:"column:sprite_row;not null;default:0"`
}

func (FacilityModel) TableName() string {
	return "facilities"
}

// RecipeModel represents the recipes table
type RecipeModel struct {
	Position       int     `gorm:"column:position;primaryKey;autoIncrement:false"`
	RecipeID       string  `gorm:"column:recipe_id;not null;index"`
	ItemID         string  `gorm:"column:item_id;not null;index"`
	FacilityID     string  `gorm:"column:facility_id;not null"`
	OutputQuantity float64 `gorm:"column:output_quantity;not null"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// MaterialModel represents the materials table
type MaterialModel struct {
	Position   int     `gorm:"column:position;primaryKey;autoIncrement:false"`
	RecipeID   string  `gorm:"column:recipe_id;not null;index"`
	MaterialID string  `gorm:"column:material_id;not null"`
	Quantity   float64 `gorm:"column:quantity;not null"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// AllModels lists the catalog tables for migration
func AllModels() []interface{} {
	return []interface{}{
		&ItemModel{},
		&FacilityModel{},
		&RecipeModel{},
		&MaterialModel{},
	}
}
