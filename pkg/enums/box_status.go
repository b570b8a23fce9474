package enums

import "fmt"

// BoxStatus tracks whether a box is still being packed or sealed for sale.
type BoxStatus string

const (
	BoxStatusWIP       BoxStatus = "WIP"
	BoxStatusFinalized BoxStatus = "FINALIZED"
)

var validBoxStatuses = []BoxStatus{
	BoxStatusWIP,
	BoxStatusFinalized,
}

// Some deployments serve the alternate vocabulary.
var boxStatusAliases = map[string]BoxStatus{
	"IN_PROGRESS": BoxStatusWIP,
	"FINISHED":    BoxStatusFinalized,
}

// String implements fmt.Stringer.
func (b BoxStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BoxStatus.
func (b BoxStatus) IsValid() bool {
	for _, candidate := range validBoxStatuses {
		if candidate == b {
			return true
		}
	}
	_, aliased := boxStatusAliases[string(b)]
	return aliased
}

// Normalize maps alternate-vocabulary values onto the canonical set.
func (b BoxStatus) Normalize() BoxStatus {
	if mapped, ok := boxStatusAliases[string(b)]; ok {
		return mapped
	}
	return b
}

// ParseBoxStatus converts raw input into a canonical BoxStatus.
func ParseBoxStatus(value string) (BoxStatus, error) {
	for _, candidate := range validBoxStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	if mapped, ok := boxStatusAliases[value]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("invalid box status %q", value)
}
