// Package wuge computes five-grid numerology over name stroke counts and
// the Three-Talents compatibility among the heaven, human, and earth grids.
package wuge

import (
	"errors"
	"fmt"
)

// ErrInvalidStrokes marks stroke input that violates the caller contract.
var ErrInvalidStrokes = errors.New("invalid stroke counts")

// Grids holds the five derived grid numbers before 1-81 reduction.
type Grids struct {
	Heaven int `json:"heaven"`
	Human  int `json:"human"`
	Earth  int `json:"earth"`
	Outer  int `json:"outer"`
	Total  int `json:"total"`
}

// Compute derives the five grids from ordered surname and given-name stroke
// counts. Single-character surnames and given names carry a +1 adjustment on
// the heaven and earth grids respectively.
func Compute(surnameStrokes, givenStrokes []int) (*Grids, error) {
	if len(surnameStrokes) == 0 || len(givenStrokes) == 0 {
		return nil, fmt.Errorf("%w: surname and given name are both required", ErrInvalidStrokes)
	}
	for _, strokes := range surnameStrokes {
		if strokes <= 0 {
			return nil, fmt.Errorf("%w: surname stroke count %d", ErrInvalidStrokes, strokes)
		}
	}
	for _, strokes := range givenStrokes {
		if strokes <= 0 {
			return nil, fmt.Errorf("%w: given-name stroke count %d", ErrInvalidStrokes, strokes)
		}
	}

	surnameSum := sum(surnameStrokes)
	givenSum := sum(givenStrokes)

	grids := &Grids{
		Human: surnameStrokes[len(surnameStrokes)-1] + givenStrokes[0],
		Total: surnameSum + givenSum,
	}

	grids.Heaven = surnameSum
	if len(surnameStrokes) == 1 {
		grids.Heaven++
	}

	grids.Earth = givenSum
	if len(givenStrokes) == 1 {
		grids.Earth++
	}

	if len(givenStrokes) == 1 {
		grids.Outer = surnameStrokes[0] + 1
	} else {
		grids.Outer = grids.Total - grids.Human + 1
	}

	return grids, nil
}

// Reduce wraps a grid number into the 1-81 luck-table domain by repeated
// subtraction of 81.
func Reduce(number int) int {
	for number > 81 {
		number -= 81
	}
	return number
}

func sum(values []int) int {
	total := 0
	for _, value := range values {
		total += value
	}
	return total
}
