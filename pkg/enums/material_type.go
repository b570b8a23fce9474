package enums

import "fmt"

// MaterialType classifies the metal family of a part.
type MaterialType string

const (
	MaterialFerrous    MaterialType = "FERROUS"
	MaterialNonFerrous MaterialType = "NON_FERROUS"
	MaterialAluminum   MaterialType = "ALUMINUM"
	MaterialCopper     MaterialType = "COPPER"
	MaterialBrass      MaterialType = "BRASS"
	MaterialStainless  MaterialType = "STAINLESS"
	MaterialMixed      MaterialType = "MIXED"
	MaterialOther      MaterialType = "OTHER"
)

var validMaterialTypes = []MaterialType{
	MaterialFerrous,
	MaterialNonFerrous,
	MaterialAluminum,
	MaterialCopper,
	MaterialBrass,
	MaterialStainless,
	MaterialMixed,
	MaterialOther,
}

var materialTypeAliases = map[string]MaterialType{
	"STEEL": MaterialFerrous,
}

// String implements fmt.Stringer.
func (m MaterialType) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MaterialType.
func (m MaterialType) IsValid() bool {
	for _, candidate := range validMaterialTypes {
		if candidate == m {
			return true
		}
	}
	_, aliased := materialTypeAliases[string(m)]
	return aliased
}

// ParseMaterialType converts raw input into a canonical MaterialType.
func ParseMaterialType(value string) (MaterialType, error) {
	for _, candidate := range validMaterialTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	if mapped, ok := materialTypeAliases[value]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("invalid material type %q", value)
}
