package catalog

import "strings"

// Item is one reagent record from the lab catalog. Every field except the
// hazard flags is optional: records imported from school inventories are
// sparse, and question templates that need a missing field simply skip the
// item. Consumers must check for nil before use.
type Item struct {
	// NameKo is the Korean substance name.
	NameKo *string `json:"name_ko,omitempty"`

	// NameEn is the English substance name.
	NameEn *string `json:"name_en,omitempty"`

	// Formula is the molecular formula, e.g. "H2SO4".
	Formula *string `json:"formula,omitempty"`

	// CAS is the CAS registry number, e.g. "7664-93-9".
	CAS *string `json:"cas,omitempty"`

	// MolarMass is the molar mass in g/mol.
	MolarMass *float64 `json:"molar_mass,omitempty"`

	// Density is the recorded solution/substance density in g/mL.
	Density *float64 `json:"density,omitempty"`

	// LocationArea is the storage area, e.g. a prep-room name.
	LocationArea *string `json:"location_area,omitempty"`

	// LocationCabinet is the cabinet or shelf within the area.
	LocationCabinet *string `json:"location_cabinet,omitempty"`

	// Hazard carries the legal classification flags.
	Hazard Hazard `json:"hazard"`
}

// Hazard holds the classification flags a Korean school lab tracks.
// Absent flags unmarshal to false.
type Hazard struct {
	Toxic            bool `json:"toxic"`
	Restricted       bool `json:"restricted"`
	Prohibited       bool `json:"prohibited"`
	SchoolDesignated bool `json:"school_designated"`
}

// Hazard classification labels, most severe first. Label picks the first
// set flag in this priority order.
const (
	LabelToxic            = "유독물질"
	LabelRestricted       = "제한물질"
	LabelProhibited       = "금지물질"
	LabelSchoolDesignated = "학교장지정물질"
	LabelGeneral          = "일반물질"
)

// Label returns the single display classification for these flags.
func (h Hazard) Label() string {
	switch {
	case h.Toxic:
		return LabelToxic
	case h.Restricted:
		return LabelRestricted
	case h.Prohibited:
		return LabelProhibited
	case h.SchoolDesignated:
		return LabelSchoolDesignated
	default:
		return LabelGeneral
	}
}

// DisplayName returns the best available name for the item: Korean name,
// then English name, then formula. Empty string if none is recorded.
func (i Item) DisplayName() string {
	for _, p := range []*string{i.NameKo, i.NameEn, i.Formula} {
		if p != nil && strings.TrimSpace(*p) != "" {
			return strings.TrimSpace(*p)
		}
	}
	return ""
}

// Location returns the combined storage location ("area cabinet") and
// whether any location is recorded at all.
func (i Item) Location() (string, bool) {
	var parts []string
	if i.LocationArea != nil && strings.TrimSpace(*i.LocationArea) != "" {
		parts = append(parts, strings.TrimSpace(*i.LocationArea))
	}
	if i.LocationCabinet != nil && strings.TrimSpace(*i.LocationCabinet) != "" {
		parts = append(parts, strings.TrimSpace(*i.LocationCabinet))
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// Str returns the trimmed value of an optional string field and whether it
// holds anything usable.
func Str(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	s := strings.TrimSpace(*p)
	return s, s != ""
}
