package catalog

import "testing"

func TestHazardLabel(t *testing.T) {
	tests := []struct {
		name   string
		hazard Hazard
		want   string
	}{
		{"toxic wins over everything", Hazard{Toxic: true, Restricted: true, SchoolDesignated: true}, LabelToxic},
		{"restricted before prohibited", Hazard{Restricted: true, Prohibited: true}, LabelRestricted},
		{"prohibited alone", Hazard{Prohibited: true}, LabelProhibited},
		{"school designated alone", Hazard{SchoolDesignated: true}, LabelSchoolDesignated},
		{"no flags is general", Hazard{}, LabelGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hazard.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	ko := "황산"
	en := "Sulfuric acid"
	formula := "H2SO4"
	blank := "   "

	tests := []struct {
		name string
		item Item
		want string
	}{
		{"korean preferred", Item{NameKo: &ko, NameEn: &en, Formula: &formula}, "황산"},
		{"english fallback", Item{NameEn: &en, Formula: &formula}, "Sulfuric acid"},
		{"formula fallback", Item{Formula: &formula}, "H2SO4"},
		{"blank korean skipped", Item{NameKo: &blank, NameEn: &en}, "Sulfuric acid"},
		{"nothing recorded", Item{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	area := "준비실"
	cabinet := "A-3"

	t.Run("area and cabinet joined", func(t *testing.T) {
		got, ok := Item{LocationArea: &area, LocationCabinet: &cabinet}.Location()
		if !ok || got != "준비실 A-3" {
			t.Errorf("Location() = %q, %v; want %q, true", got, ok, "준비실 A-3")
		}
	})

	t.Run("cabinet only", func(t *testing.T) {
		got, ok := Item{LocationCabinet: &cabinet}.Location()
		if !ok || got != "A-3" {
			t.Errorf("Location() = %q, %v; want %q, true", got, ok, "A-3")
		}
	})

	t.Run("nothing recorded", func(t *testing.T) {
		if _, ok := (Item{}).Location(); ok {
			t.Error("Location() reported a location for an empty item")
		}
	})
}
