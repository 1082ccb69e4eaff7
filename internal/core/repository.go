package core

import "context"

// CandidateFilter narrows the dictionary to characters usable for a
// generation request. Zero fields mean "no constraint".
type CandidateFilter struct {
	Elements []Element
	Gender   Gender
	Style    Style
	Source   Source
	Limit    int
}

// CharacterRepository is the read-only dictionary collaborator. Lookup
// returns (nil, nil) for characters absent from the reference data; absence
// is expected, not an error.
type CharacterRepository interface {
	Lookup(ctx context.Context, char string) (*CharacterInfo, error)
	Candidates(ctx context.Context, filter CandidateFilter) ([]*CharacterInfo, error)
}
