package enums

import "fmt"

// SaleType distinguishes sealed-bid listings from open auctions.
type SaleType string

const (
	SaleTypeSealedBid   SaleType = "SEALED_BID"
	SaleTypeOpenAuction SaleType = "OPEN_AUCTION"
)

var validSaleTypes = []SaleType{
	SaleTypeSealedBid,
	SaleTypeOpenAuction,
}

// String implements fmt.Stringer.
func (s SaleType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SaleType.
func (s SaleType) IsValid() bool {
	for _, candidate := range validSaleTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSaleType converts raw input into a SaleType.
func ParseSaleType(value string) (SaleType, error) {
	for _, candidate := range validSaleTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sale type %q", value)
}
