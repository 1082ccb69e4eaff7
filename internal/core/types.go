package core

import "strings"

// Element is one of the five classical elements. The set is closed; every
// stem, branch, and dictionary character maps to exactly one element.
type Element string

const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

// Elements lists the five elements in generation-cycle order.
var Elements = []Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// generates maps each element to the element it produces.
var generates = map[Element]Element{
	ElementWood:  ElementFire,
	ElementFire:  ElementEarth,
	ElementEarth: ElementMetal,
	ElementMetal: ElementWater,
	ElementWater: ElementWood,
}

// destroys maps each element to the element it overcomes.
var destroys = map[Element]Element{
	ElementWood:  ElementEarth,
	ElementEarth: ElementWater,
	ElementWater: ElementFire,
	ElementFire:  ElementMetal,
	ElementMetal: ElementWood,
}

// Generates returns the element produced by e in the generation cycle.
func (e Element) Generates() Element {
	return generates[e]
}

// GeneratedBy returns the element that produces e.
func (e Element) GeneratedBy() Element {
	for parent, child := range generates {
		if child == e {
			return parent
		}
	}
	return ""
}

// Destroys returns the element overcome by e in the destruction cycle.
func (e Element) Destroys() Element {
	return destroys[e]
}

// DestroyedBy returns the element that overcomes e.
func (e Element) DestroyedBy() Element {
	for attacker, victim := range destroys {
		if victim == e {
			return attacker
		}
	}
	return ""
}

// Valid reports whether e is one of the five canonical elements.
func (e Element) Valid() bool {
	switch e {
	case ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater:
		return true
	default:
		return false
	}
}

// ParseElement normalizes a user-supplied element label.
func ParseElement(value string) (Element, bool) {
	e := Element(strings.ToLower(strings.TrimSpace(value)))
	if e.Valid() {
		return e, true
	}
	return "", false
}

// Gender tags a dictionary character's naming convention.
type Gender string

const (
	GenderAny    Gender = "any"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Style filters candidate characters by naming style.
type Style string

const (
	StyleAny     Style = "any"
	StyleClassic Style = "classic"
	StyleModern  Style = "modern"
	StyleElegant Style = "elegant"
)

// Source filters candidate characters by literary provenance.
type Source string

const (
	SourceAny    Source = "any"
	SourcePoetry Source = "poetry"
	SourceIdiom  Source = "idiom"
)

// CharacterInfo is one read-only dictionary entry. Absent entries are
// reported as nil by the repository, never as an error.
type CharacterInfo struct {
	Char             string  `json:"char"`
	Strokes          int     `json:"strokes"`
	ClassicalStrokes int     `json:"classical_strokes"`
	Tone             int     `json:"tone"`
	Element          Element `json:"element"`
	MeaningQuality   int     `json:"meaning_quality"`
	Pinyin           string  `json:"pinyin"`
	Gender           Gender  `json:"gender"`
	Style            Style   `json:"style"`
	Source           Source  `json:"source"`
	Meaning          string  `json:"meaning,omitempty"`
	SourceNote       string  `json:"source_note,omitempty"`
}

// BirthMoment is a Gregorian date plus hour-of-day, resolved externally into
// a four-pillar chart.
type BirthMoment struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	Hour  int `json:"hour"`
}

// NameScore is the composite quality rating for one full name. Immutable
// once computed; safe to cache and share.
type NameScore struct {
	Overall       int      `json:"overall"`
	Rating        string   `json:"rating"`
	ChartScore    int      `json:"chart_score"`
	GridScore     int      `json:"grid_score"`
	PhoneticScore int      `json:"phonetic_score"`
	MeaningScore  int      `json:"meaning_score"`
	Breakdown     []string `json:"breakdown,omitempty"`
}

// GenerationRequest carries the constraints for one candidate search.
type GenerationRequest struct {
	Surname           string       `json:"surname"`
	Gender            Gender       `json:"gender,omitempty"`
	Birth             *BirthMoment `json:"birth,omitempty"`
	PreferredElements []Element    `json:"preferred_elements,omitempty"`
	AvoidedElements   []Element    `json:"avoided_elements,omitempty"`
	Style             Style        `json:"style,omitempty"`
	Source            Source       `json:"source,omitempty"`
	GivenNameChars    int          `json:"given_name_chars,omitempty"`
	MaxResults        int          `json:"max_results,omitempty"`
}

// GeneratedName is one ranked suggestion.
type GeneratedName struct {
	FullName    string     `json:"full_name"`
	Characters  []string   `json:"characters"`
	Score       *NameScore `json:"score"`
	SourceNote  string     `json:"source_note,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
}
