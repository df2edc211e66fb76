// Package entity contains the core business objects of the project.
package entity

// WasteType classifies a unit of olive-processing by-product.
type WasteType string

const (
	// WasteTypeBranches indicates pruning branches from the grove.
	WasteTypeBranches WasteType = "BRANCHES"
	// WasteTypeLeaves indicates leaves collected during harvest.
	WasteTypeLeaves WasteType = "LEAVES"
	// WasteTypeOlives indicates whole olives rejected before milling.
	WasteTypeOlives WasteType = "OLIVES"
	// WasteTypeOlivePaste indicates exhausted paste left after pressing.
	WasteTypeOlivePaste WasteType = "OLIVE_PASTE"
	// WasteTypeResidualWater indicates vegetation water from extraction.
	WasteTypeResidualWater WasteType = "RESIDUAL_WATER"
	// WasteTypePits indicates olive pits and stone fragments.
	WasteTypePits WasteType = "PITS"
	// WasteTypeOther indicates any by-product outside the named categories.
	WasteTypeOther WasteType = "OTHER"
)

// String returns the string representation of the WasteType.
func (t WasteType) String() string {
	return string(t)
}

// IsValid checks if the WasteType is a valid value.
func (t WasteType) IsValid() bool {
	switch t {
	case WasteTypeBranches, WasteTypeLeaves, WasteTypeOlives, WasteTypeOlivePaste,
		WasteTypeResidualWater, WasteTypePits, WasteTypeOther:
		return true
	default:
		return false
	}
}
