package enums

import "fmt"

// PartCondition grades the state of a part.
//
// Two deployed vocabularies exist (CLEAN/CONTAMINATED/MIXED and
// NEW/USED/DAMAGED/SCRAP) and the backend does not reconcile them, so both
// families validate. The backend is authoritative for which set it accepts
// on write.
type PartCondition string

const (
	ConditionClean        PartCondition = "CLEAN"
	ConditionContaminated PartCondition = "CONTAMINATED"
	ConditionMixed        PartCondition = "MIXED"

	ConditionNew     PartCondition = "NEW"
	ConditionUsed    PartCondition = "USED"
	ConditionDamaged PartCondition = "DAMAGED"
	ConditionScrap   PartCondition = "SCRAP"
)

var validPartConditions = []PartCondition{
	ConditionClean,
	ConditionContaminated,
	ConditionMixed,
	ConditionNew,
	ConditionUsed,
	ConditionDamaged,
	ConditionScrap,
}

// String implements fmt.Stringer.
func (p PartCondition) String() string {
	return string(p)
}

// IsValid reports whether the value belongs to either deployed vocabulary.
func (p PartCondition) IsValid() bool {
	for _, candidate := range validPartConditions {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePartCondition converts raw input into a PartCondition.
func ParsePartCondition(value string) (PartCondition, error) {
	for _, candidate := range validPartConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid part condition %q", value)
}
