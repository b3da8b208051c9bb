package models

import "fmt"

// PartKind distinguishes the two fastener shapes the resolver produces.
type PartKind string

const (
	PartScrew PartKind = "screw"
	PartNut   PartKind = "nut"
)

// Family is a fastener shape category, e.g. a socket-head screw.
type Family string

// Standard is the dimensional standard a family conforms to.
type Standard string

const (
	SocketHeadCapScrew Family = "SocketHeadCapScrew"
	HexHeadScrew       Family = "HexHeadScrew"
	CounterSunkScrew   Family = "CounterSunkScrew"
	PanHeadScrew       Family = "PanHeadScrew"
	HexNut             Family = "HexNut"

	ISO4762  Standard = "iso4762"
	ISO4017  Standard = "iso4017"
	ISO10642 Standard = "iso10642"
	ISO1580  Standard = "iso1580"
	ISO4032  Standard = "iso4032"
)

// FamilyStandard pairs a family with the standard it is offered under.
type FamilyStandard struct {
	Family   Family
	Standard Standard
}

// SupportedPairs is the closed set of (family, standard) combinations the
// resolver knows about. Extending it requires both a classifier rule and a
// size enumeration for the new pair.
var SupportedPairs = []FamilyStandard{
	{SocketHeadCapScrew, ISO4762},
	{HexHeadScrew, ISO4017},
	{CounterSunkScrew, ISO10642},
	{PanHeadScrew, ISO1580},
	{HexNut, ISO4032},
}

// ScrewFamilies contains every family that takes a length.
var ScrewFamilies = map[Family]bool{
	SocketHeadCapScrew: true,
	HexHeadScrew:       true,
	CounterSunkScrew:   true,
	PanHeadScrew:       true,
}

// ParsedItem is one fastener the resolver extracted from free text.
// LengthMm is set exactly when Part is a screw; nuts never carry a length.
type ParsedItem struct {
	Part     PartKind `json:"part"`
	Family   Family   `json:"family"`
	Standard Standard `json:"fastener_type"`
	Size     string   `json:"size"`
	LengthMm *float64 `json:"length_mm"`
}

// Validate enforces the length invariant and the closed part-kind set.
func (p ParsedItem) Validate() error {
	switch p.Part {
	case PartScrew:
		if p.LengthMm == nil {
			return fmt.Errorf("length_mm is required for screws")
		}
		if *p.LengthMm <= 0 {
			return fmt.Errorf("length_mm must be positive, got %v", *p.LengthMm)
		}
	case PartNut:
		if p.LengthMm != nil {
			return fmt.Errorf("length_mm must not be set for nuts")
		}
	default:
		return fmt.Errorf("part must be 'screw' or 'nut', got %q", p.Part)
	}
	if p.Size == "" {
		return fmt.Errorf("size is required")
	}
	return nil
}

// ResolutionStatus is the terminal outcome of a vendor lookup.
type ResolutionStatus string

const (
	StatusResolved      ResolutionStatus = "resolved"
	StatusNeedsSourcing ResolutionStatus = "needs_sourcing"
)

// ResolvedItem is a ParsedItem after the vendor catalog lookup. The vendor
// fields are populated only when Status is resolved.
type ResolvedItem struct {
	ParsedItem
	Status            ResolutionStatus `json:"status"`
	McMasterPN        string           `json:"mcmaster_pn,omitempty"`
	VendorDescription string           `json:"vendor_description,omitempty"`
	VendorURL         string           `json:"vendor_url,omitempty"`
	PackQty           *int             `json:"pack_qty,omitempty"`
}

// GenerateSpec is the payload handed to the downstream geometry and drawing
// consumers. The resolver's only obligation is that it satisfies the
// ParsedItem invariants before it leaves this package.
type GenerateSpec struct {
	Part     PartKind `json:"part"`
	Family   Family   `json:"family"`
	Standard Standard `json:"fastener_type"`
	Size     string   `json:"size"`
	LengthMm *float64 `json:"length_mm"`
	Simple   bool     `json:"simple"`
}

// BuildSpec validates an item against the supported family set and converts
// it into the downstream payload. Unsupported combinations are user-facing
// errors, never silently defaulted.
func BuildSpec(item ParsedItem) (GenerateSpec, error) {
	if err := item.Validate(); err != nil {
		return GenerateSpec{}, err
	}
	switch item.Part {
	case PartScrew:
		if !ScrewFamilies[item.Family] {
			return GenerateSpec{}, fmt.Errorf("unsupported screw family: %s", item.Family)
		}
	case PartNut:
		if item.Family != HexNut {
			return GenerateSpec{}, fmt.Errorf("unsupported nut family: %s", item.Family)
		}
	}
	return GenerateSpec{
		Part:     item.Part,
		Family:   item.Family,
		Standard: item.Standard,
		Size:     item.Size,
		LengthMm: item.LengthMm,
		Simple:   true,
	}, nil
}

// Float64Ptr is a small helper for building optional lengths.
func Float64Ptr(v float64) *float64 { return &v }
