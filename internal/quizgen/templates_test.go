package quizgen

import (
	"strings"
	"testing"

	"github.com/daylab/labmate/internal/catalog"
)

func TestDeriveForItemAllFacts(t *testing.T) {
	e := newTestEngine(21)
	items := fullItems(6)

	candidates := e.deriveForItem(items[0], items)

	// location, formula, CAS, hazard, English name, reverse formula,
	// reverse CAS.
	if len(candidates) != 7 {
		t.Fatalf("got %d candidates, want 7", len(candidates))
	}
	for _, q := range candidates {
		if len(q.Options) != 4 {
			t.Errorf("%q: %d options, want 4", q.Text, len(q.Options))
		}
		if q.Options[q.CorrectIndex] == "" {
			t.Errorf("%q: empty correct option", q.Text)
		}
	}
}

func TestDeriveForItemCorrectFact(t *testing.T) {
	e := newTestEngine(22)
	item := catalog.Item{
		NameKo:       strp("황산"),
		Formula:      strp("H2SO4"),
		LocationArea: strp("준비실"),
		Hazard:       catalog.Hazard{Toxic: true},
	}
	candidates := e.deriveForItem(item, []catalog.Item{item})

	want := []struct {
		prompt string
		answer string
	}{
		{"황산의 보관 위치는 어디인가요?", "준비실"},
		{"황산의 화학식은 무엇인가요?", "H2SO4"},
		{"황산의 위험물 분류는 무엇인가요?", catalog.LabelToxic},
		{"화학식이 H2SO4인 물질은 무엇인가요?", "황산"},
	}
	if len(candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(candidates), len(want))
	}
	for _, q := range candidates {
		found := false
		for _, w := range want {
			if w.prompt != q.Text {
				continue
			}
			found = true
			if got := q.Options[q.CorrectIndex]; got != w.answer {
				t.Errorf("%q: correct option %q, want %q", q.Text, got, w.answer)
			}
		}
		if !found {
			t.Errorf("unexpected question %q", q.Text)
		}
	}
}

func TestDeriveForItemSkipsMissingFacts(t *testing.T) {
	e := newTestEngine(23)

	tests := []struct {
		name      string
		item      catalog.Item
		wantCount int
	}{
		// Hazard classification alone is always derivable for a named item.
		{"name only", catalog.Item{NameKo: strp("물")}, 1},
		{"blank item", catalog.Item{}, 0},
		{"whitespace name", catalog.Item{NameKo: strp("   ")}, 0},
		// An invalid CAS kills both the forward and reverse CAS questions.
		{"bad CAS", catalog.Item{NameKo: strp("물"), CAS: strp("not-a-cas")}, 1},
		{"valid CAS", catalog.Item{NameKo: strp("물"), CAS: strp("7732-18-5")}, 3},
		// English-name-only items still ask, prompted by the English name.
		{"english only", catalog.Item{NameEn: strp("Water")}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.deriveForItem(tt.item, []catalog.Item{tt.item})
			if len(got) != tt.wantCount {
				var texts []string
				for _, q := range got {
					texts = append(texts, q.Text)
				}
				t.Errorf("got %d candidates (%s), want %d",
					len(got), strings.Join(texts, "; "), tt.wantCount)
			}
		})
	}
}

func TestDeriveForItemHazardDistractors(t *testing.T) {
	e := newTestEngine(24)
	item := catalog.Item{NameKo: strp("수은"), Hazard: catalog.Hazard{Restricted: true}}

	candidates := e.deriveForItem(item, []catalog.Item{item})
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	q := candidates[0]
	if q.Options[q.CorrectIndex] != catalog.LabelRestricted {
		t.Errorf("correct option %q, want %q", q.Options[q.CorrectIndex], catalog.LabelRestricted)
	}
	// Distractors are the other classification labels.
	valid := map[string]bool{}
	for _, l := range hazardLabels() {
		valid[l] = true
	}
	for _, o := range q.Options {
		if !valid[o] {
			t.Errorf("option %q is not a classification label", o)
		}
	}
}
