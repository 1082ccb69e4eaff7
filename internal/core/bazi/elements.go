// Package bazi analyzes four-pillar charts: elemental balance, day-master
// strength, and favorable/unfavorable element classification.
package bazi

import (
	"fmt"
	"strings"

	"github.com/qiminglab/qiming/internal/core"
)

// Stem is one of the ten heavenly stems.
type Stem int

const (
	StemJia Stem = iota
	StemYi
	StemBing
	StemDing
	StemWu
	StemJi
	StemGeng
	StemXin
	StemRen
	StemGui
)

// Branch is one of the twelve earthly branches.
type Branch int

const (
	BranchZi Branch = iota
	BranchChou
	BranchYin
	BranchMao
	BranchChen
	BranchSi
	BranchWu
	BranchWei
	BranchShen
	BranchYou
	BranchXu
	BranchHai
)

var stemNames = [...]string{"jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}

var branchNames = [...]string{"zi", "chou", "yin", "mao", "chen", "si", "wu", "wei", "shen", "you", "xu", "hai"}

// stemElements maps each heavenly stem to its element.
var stemElements = [...]core.Element{
	StemJia:  core.ElementWood,
	StemYi:   core.ElementWood,
	StemBing: core.ElementFire,
	StemDing: core.ElementFire,
	StemWu:   core.ElementEarth,
	StemJi:   core.ElementEarth,
	StemGeng: core.ElementMetal,
	StemXin:  core.ElementMetal,
	StemRen:  core.ElementWater,
	StemGui:  core.ElementWater,
}

// branchElements maps each earthly branch to its element.
var branchElements = [...]core.Element{
	BranchZi:   core.ElementWater,
	BranchChou: core.ElementEarth,
	BranchYin:  core.ElementWood,
	BranchMao:  core.ElementWood,
	BranchChen: core.ElementEarth,
	BranchSi:   core.ElementFire,
	BranchWu:   core.ElementFire,
	BranchWei:  core.ElementEarth,
	BranchShen: core.ElementMetal,
	BranchYou:  core.ElementMetal,
	BranchXu:   core.ElementEarth,
	BranchHai:  core.ElementWater,
}

// Valid reports whether s is within the ten-stem enumeration.
func (s Stem) Valid() bool {
	return s >= StemJia && s <= StemGui
}

// Element returns the element of the stem.
func (s Stem) Element() core.Element {
	if !s.Valid() {
		return ""
	}
	return stemElements[s]
}

func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("stem(%d)", int(s))
	}
	return stemNames[s]
}

// Valid reports whether b is within the twelve-branch enumeration.
func (b Branch) Valid() bool {
	return b >= BranchZi && b <= BranchHai
}

// Element returns the element of the branch.
func (b Branch) Element() core.Element {
	if !b.Valid() {
		return ""
	}
	return branchElements[b]
}

func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("branch(%d)", int(b))
	}
	return branchNames[b]
}

// ParseStem resolves a stem from its pinyin label.
func ParseStem(value string) (Stem, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for i, name := range stemNames {
		if name == normalized {
			return Stem(i), true
		}
	}
	return 0, false
}

// ParseBranch resolves a branch from its pinyin label.
func ParseBranch(value string) (Branch, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for i, name := range branchNames {
		if name == normalized {
			return Branch(i), true
		}
	}
	return 0, false
}
