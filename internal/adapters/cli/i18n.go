package cli

import (
	"fmt"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

type labelKey string

const (
	labelTotalEquipment labelKey = "totalEquipment"
	labelUnits          labelKey = "units"
	labelRequired       labelKey = "required"
	labelWarnings       labelKey = "warnings"
	labelSeed           labelKey = "seed"
	labelRecipes        labelKey = "recipes"
)

var labels = map[production.Locale]map[labelKey]string{
	production.LocaleJA: {
		labelTotalEquipment: "総設備数",
		labelUnits:          "台",
		labelRequired:       "必要量",
		labelWarnings:       "警告",
		labelSeed:           "原料",
		labelRecipes:        "レシピ",
	},
	production.LocaleEN: {
		labelTotalEquipment: "Total Equipment",
		labelUnits:          "units",
		labelRequired:       "Required",
		labelWarnings:       "Warnings",
		labelSeed:           "seed",
		labelRecipes:        "Recipes",
	},
}

// label returns the localized text for key, or the key itself when missing
func label(locale production.Locale, key labelKey) string {
	if text, ok := labels[locale][key]; ok {
		return text
	}
	return string(key)
}

// FormatTotalEquipment renders "Total Equipment: N units" or "総設備数: N 台"
func FormatTotalEquipment(locale production.Locale, total int) string {
	return fmt.Sprintf("%s: %d %s", label(locale, labelTotalEquipment), total, label(locale, labelUnits))
}
