package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// fileRecords is the on-disk shape shared by data.json and its YAML equivalent.
// Missing collections decode as empty.
type fileRecords struct {
	Items      []itemRecord     `yaml:"items" json:"items"`
	Facilities []facilityRecord `yaml:"facilities" json:"facilities"`
	Recipes    []recipeRecord   `yaml:"recipes" json:"recipes"`
	Materials  []materialRecord `yaml:"materials" json:"materials"`
}

type itemRecord struct {
	ItemID    string   `yaml:"item_id" json:"item_id"`
	NameJP    string   `yaml:"name_jp" json:"name_jp"`
	NameEN    string   `yaml:"name_en" json:"name_en"`
	SpriteCol int      `yaml:"sprite_col" json:"sprite_col"`
	SpriteRow int      `yaml:"sprite_row" json:"sprite_row"`
	IsSeed    seedFlag `yaml:"is_seed" json:"is_seed"`
}

type facilityRecord struct {
	FacilityID  string  `yaml:"facility_id" json:"facility_id"`
	ProcessTime float64 `yaml:"process_time" json:"process_time"`
	SpriteCol   int     `yaml:"sprite_col" json:"sprite_col"`
	SpriteRow   int     `yaml:"sprite_row" json:"sprite_row"`
}

type recipeRecord struct {
	RecipeID       string  `yaml:"recipe_id" json:"recipe_id"`
	ItemID         string  `yaml:"item_id" json:"item_id"`
	FacilityID     string  `yaml:"facility_id" json:"facility_id"`
	OutputQuantity float64 `yaml:"output_quantity" json:"output_quantity"`
}

type materialRecord struct {
	RecipeID   string  `yaml:"recipe_id" json:"recipe_id"`
	MaterialID string  `yaml:"material_id" json:"material_id"`
	Quantity   float64 `yaml:"quantity" json:"quantity"`
}

// seedFlag accepts true/false, 0/1 and "true"/"false"/"0"/"1"; exports carry any of them
type seedFlag bool

func (f *seedFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return f.set(raw)
}

func (f *seedFlag) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return f.set(raw)
}

func (f *seedFlag) set(raw interface{}) error {
	switch v := raw.(type) {
	case nil:
		*f = false
	case bool:
		*f = seedFlag(v)
	case int:
		*f = v != 0
	case float64:
		*f = v != 0
	case string:
		if v == "" {
			*f = false
			return nil
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid is_seed value %q", v)
		}
		*f = seedFlag(parsed)
	default:
		return fmt.Errorf("invalid is_seed value %v", raw)
	}
	return nil
}

func (r *fileRecords) toDataset() *production.Dataset {
	dataset := &production.Dataset{
		Items:      make([]production.Item, 0, len(r.Items)),
		Facilities: make([]production.Facility, 0, len(r.Facilities)),
		Recipes:    make([]production.Recipe, 0, len(r.Recipes)),
		Materials:  make([]production.Material, 0, len(r.Materials)),
	}

	for _, item := range r.Items {
		dataset.Items = append(dataset.Items, production.Item{
			ID:        item.ItemID,
			NameJP:    item.NameJP,
			NameEN:    item.NameEN,
			SpriteCol: item.SpriteCol,
			SpriteRow: item.SpriteRow,
			IsSeed:    bool(item.IsSeed),
		})
	}
	for _, facility := range r.Facilities {
		dataset.Facilities = append(dataset.Facilities, production.Facility{
			ID:          facility.FacilityID,
			ProcessTime: facility.ProcessTime,
			SpriteCol:   facility.SpriteCol,
			SpriteRow:   facility.SpriteRow,
		})
	}
	for _, recipe := range r.Recipes {
		dataset.Recipes = append(dataset.Recipes, production.Recipe{
			ID:             recipe.RecipeID,
			ItemID:         recipe.ItemID,
			FacilityID:     recipe.FacilityID,
			OutputQuantity: recipe.OutputQuantity,
		})
	}
	for _, material := range r.Materials {
		dataset.Materials = append(dataset.Materials, production.Material{
			RecipeID:   material.RecipeID,
			MaterialID: material.MaterialID,
			Quantity:   material.Quantity,
		})
	}

	return dataset
}

func recordsFromDataset(dataset *production.Dataset) *fileRecords {
	records := &fileRecords{
		Items:      make([]itemRecord, 0, len(dataset.Items)),
		Facilities: make([]facilityRecord, 0, len(dataset.Facilities)),
		Recipes:    make([]recipeRecord, 0, len(dataset.Recipes)),
		Materials:  make([]materialRecord, 0, len(dataset.Materials)),
	}

	for _, item := range dataset.Items {
		records.Items = append(records.Items, itemRecord{
			ItemID:    item.ID,
			NameJP:    item.NameJP,
			NameEN:    item.NameEN,
			SpriteCol: item.SpriteCol,
			SpriteRow: item.SpriteRow,
			IsSeed:    seedFlag(item.IsSeed),
		})
	}
	for _, facility := range dataset.Facilities {
		records.Facilities = append(records.Facilities, facilityRecord{
			FacilityID:  facility.ID,
			ProcessTime: facility.ProcessTime,
			SpriteCol:   facility.SpriteCol,
			SpriteRow:   facility.SpriteRow,
		})
	}
	for _, recipe := range dataset.Recipes {
		records.Recipes = append(records.Recipes, recipeRecord{
			RecipeID:       recipe.ID,
			ItemID:         recipe.ItemID,
			FacilityID:     recipe.FacilityID,
			OutputQuantity: recipe.OutputQuantity,
		})
	}
	for _, material := range dataset.Materials {
		records.Materials = append(records.Materials, materialRecord{
			RecipeID:   material.RecipeID,
			MaterialID: material.MaterialID,
			Quantity:   material.Quantity,
		})
	}

	return records
}
