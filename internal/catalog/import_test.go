package catalog

import (
	"strings"
	"testing"
)

const sampleCatalog = `[
  {
    "name_ko": "황산",
    "name_en": "Sulfuric acid",
    "formula": "H2SO4",
    "cas": "7664-93-9",
    "molar_mass": 98.08,
    "density": 1.84,
    "location_area": "준비실",
    "location_cabinet": "시약장 3",
    "hazard": {"toxic": true}
  },
  {
    "name_ko": "염화나트륨",
    "formula": "NaCl",
    "cas": "7647-14-5",
    "molar_mass": 58.44
  }
]`

func TestParseCatalog(t *testing.T) {
	items, warnings, err := ParseCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	first := items[0]
	if first.DisplayName() != "황산" {
		t.Errorf("DisplayName = %q, want 황산", first.DisplayName())
	}
	if first.MolarMass == nil || *first.MolarMass != 98.08 {
		t.Errorf("MolarMass = %v, want 98.08", first.MolarMass)
	}
	if !first.Hazard.Toxic {
		t.Error("hazard flag toxic not set")
	}
	loc, ok := first.Location()
	if !ok || loc != "준비실 시약장 3" {
		t.Errorf("Location = %q, %v", loc, ok)
	}

	second := items[1]
	if second.NameEn != nil {
		t.Errorf("NameEn = %v, want nil for absent field", *second.NameEn)
	}
	if _, ok := second.Location(); ok {
		t.Error("Location reported present for item without one")
	}
	if second.Hazard.Label() != LabelGeneral {
		t.Errorf("Label = %q, want %q", second.Hazard.Label(), LabelGeneral)
	}
}

func TestParseCatalogRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{]`},
		{"not an array", `{"name_ko": "물"}`},
		{"unknown field", `[{"nickname": "acid"}]`},
		{"negative molar mass", `[{"formula": "X", "molar_mass": -1}]`},
		{"wrong type", `[{"cas": 7664939}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseCatalog([]byte(tt.raw)); err == nil {
				t.Error("ParseCatalog accepted malformed input")
			}
		})
	}
}

func TestParseCatalogWarnings(t *testing.T) {
	raw := `[
	  {"name_ko": "물", "cas": "7732-18-4"},
	  {"name_ko": "에탄올", "cas": "64175"},
	  {"location_area": "창고"}
	]`
	items, warnings, err := ParseCatalog([]byte(raw))
	if err != nil {
		t.Fatalf("ParseCatalog: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if len(warnings) != 3 {
		t.Fatalf("got %d warnings (%v), want 3", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0].String(), "check digit") {
		t.Errorf("warning 0 = %q, want check digit complaint", warnings[0])
	}
	if !strings.Contains(warnings[1].String(), "digits-digits-digit") {
		t.Errorf("warning 1 = %q, want pattern complaint", warnings[1])
	}
	if !strings.Contains(warnings[2].String(), "no name") {
		t.Errorf("warning 2 = %q, want missing name complaint", warnings[2])
	}
}

func TestHazardLabelPriority(t *testing.T) {
	tests := []struct {
		h    Hazard
		want string
	}{
		{Hazard{Toxic: true, Restricted: true, Prohibited: true, SchoolDesignated: true}, LabelToxic},
		{Hazard{Restricted: true, Prohibited: true}, LabelRestricted},
		{Hazard{Prohibited: true, SchoolDesignated: true}, LabelProhibited},
		{Hazard{SchoolDesignated: true}, LabelSchoolDesignated},
		{Hazard{}, LabelGeneral},
	}

	for _, tt := range tests {
		if got := tt.h.Label(); got != tt.want {
			t.Errorf("Label(%+v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}
