package enums

import "fmt"

// PhotoSlot names a box photo position. The slot doubles as the multipart
// form field name on upload.
type PhotoSlot string

const (
	PhotoSlot1 PhotoSlot = "photo1"
	PhotoSlot2 PhotoSlot = "photo2"
	PhotoSlot3 PhotoSlot = "photo3"
	PhotoSlot4 PhotoSlot = "photo4"
	PhotoSlot5 PhotoSlot = "photo5"
	PhotoSlot6 PhotoSlot = "photo6"
	PhotoSlot7 PhotoSlot = "photo7"
	PhotoSlot8 PhotoSlot = "photo8"

	// Named slots served by older deployments.
	PhotoSlotMain         PhotoSlot = "photo_main"
	PhotoSlotOverall      PhotoSlot = "photo_overall"
	PhotoSlotWeightTicket PhotoSlot = "photo_weight_ticket"
)

var validPhotoSlots = []PhotoSlot{
	PhotoSlot1,
	PhotoSlot2,
	PhotoSlot3,
	PhotoSlot4,
	PhotoSlot5,
	PhotoSlot6,
	PhotoSlot7,
	PhotoSlot8,
	PhotoSlotMain,
	PhotoSlotOverall,
	PhotoSlotWeightTicket,
}

// String implements fmt.Stringer.
func (p PhotoSlot) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PhotoSlot.
func (p PhotoSlot) IsValid() bool {
	for _, candidate := range validPhotoSlots {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePhotoSlot converts raw input into a PhotoSlot.
func ParsePhotoSlot(value string) (PhotoSlot, error) {
	for _, candidate := range validPhotoSlots {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid photo slot %q", value)
}
