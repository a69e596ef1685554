package quizgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/chem"
)

// deriveForItem synthesizes every candidate question the item's recorded
// facts support. A template whose fact is absent or malformed produces no
// candidate; a fully blank item yields an empty slice, never an error.
// Distractors come from the same fact across allItems, padded from the
// configured fallbacks.
func (e *Engine) deriveForItem(item catalog.Item, allItems []catalog.Item) []Question {
	name := item.DisplayName()
	if name == "" {
		return nil
	}

	var out []Question

	if loc, ok := item.Location(); ok {
		opts, ci := e.buildOptions(loc, collectLocations(allItems), e.cfg.Fallbacks.Locations)
		out = append(out, e.question(fmt.Sprintf("%s의 보관 위치는 어디인가요?", name), opts, ci))
	}

	if formula, ok := catalog.Str(item.Formula); ok {
		opts, ci := e.buildOptions(formula, collect(allItems, func(i catalog.Item) *string { return i.Formula }), e.cfg.Fallbacks.Formulas)
		out = append(out, e.question(fmt.Sprintf("%s의 화학식은 무엇인가요?", name), opts, ci))
	}

	if cas, ok := catalog.Str(item.CAS); ok && chem.ValidCAS(cas) {
		opts, ci := e.buildOptions(cas, collectCAS(allItems), e.cfg.Fallbacks.CASNums)
		out = append(out, e.question(fmt.Sprintf("%s의 CAS 번호는 무엇인가요?", name), opts, ci))
	}

	// Hazard classification always has a label (general/none at worst),
	// and the other labels are natural distractors.
	label := item.Hazard.Label()
	opts, ci := e.buildOptions(label, hazardLabels(), nil)
	out = append(out, e.question(fmt.Sprintf("%s의 위험물 분류는 무엇인가요?", name), opts, ci))

	if en, ok := catalog.Str(item.NameEn); ok {
		opts, ci := e.buildOptions(en, collect(allItems, func(i catalog.Item) *string { return i.NameEn }), e.cfg.Fallbacks.NamesEn)
		out = append(out, e.question(fmt.Sprintf("%s의 영어 이름은 무엇인가요?", name), opts, ci))
	}

	// Reverse lookups ask for the Korean name given the formula or CAS
	// number. They need both endpoints recorded.
	if ko, ok := catalog.Str(item.NameKo); ok {
		koNames := collect(allItems, func(i catalog.Item) *string { return i.NameKo })

		if formula, ok := catalog.Str(item.Formula); ok {
			opts, ci := e.buildOptions(ko, koNames, e.cfg.Fallbacks.Names)
			out = append(out, e.question(fmt.Sprintf("화학식이 %s인 물질은 무엇인가요?", formula), opts, ci))
		}
		if cas, ok := catalog.Str(item.CAS); ok && chem.ValidCAS(cas) {
			opts, ci := e.buildOptions(ko, koNames, e.cfg.Fallbacks.Names)
			out = append(out, e.question(fmt.Sprintf("CAS 번호가 %s인 물질은 무엇인가요?", cas), opts, ci))
		}
	}

	for i := range out {
		out[i].Topic = name
	}
	return out
}

func (e *Engine) question(text string, options []string, correctIndex int) Question {
	return Question{
		ID:           uuid.NewString(),
		Text:         text,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// hazardLabels returns every classification label, the distractor pool for
// hazard questions.
func hazardLabels() []string {
	return []string{
		catalog.LabelToxic,
		catalog.LabelRestricted,
		catalog.LabelProhibited,
		catalog.LabelSchoolDesignated,
		catalog.LabelGeneral,
	}
}

func collect(items []catalog.Item, field func(catalog.Item) *string) []string {
	var out []string
	for _, it := range items {
		if v, ok := catalog.Str(field(it)); ok {
			out = append(out, v)
		}
	}
	return out
}

func collectLocations(items []catalog.Item) []string {
	var out []string
	for _, it := range items {
		if loc, ok := it.Location(); ok {
			out = append(out, loc)
		}
	}
	return out
}

func collectCAS(items []catalog.Item) []string {
	var out []string
	for _, it := range items {
		if cas, ok := catalog.Str(it.CAS); ok && chem.ValidCAS(cas) {
			out = append(out, cas)
		}
	}
	return out
}
