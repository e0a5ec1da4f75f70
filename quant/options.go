package quant

import (
	"github.com/pkg/errors"
)

// RepMode selects how the internal representative of an equivalence class
// is chosen.
type RepMode uint8

const (
	_ RepMode = iota
	// RepModeEE returns the equality engine's own representative,
	// bypassing selection and the cache entirely
	RepModeEE
	// RepModeFirst prefers the term that was first used as a
	// representative, for stability across instantiation rounds
	RepModeFirst
	// RepModeDepth prefers structurally shallow terms
	RepModeDepth
)

func (m RepMode) String() string {
	switch m {
	case RepModeEE:
		return "ee"
	case RepModeFirst:
		return "first"
	case RepModeDepth:
		return "depth"
	default:
		return "invalid"
	}
}

func ParseRepMode(s string) (RepMode, error) {
	switch s {
	case "ee":
		return RepModeEE, nil
	case "first":
		return RepModeFirst, nil
	case "depth":
		return RepModeDepth, nil
	default:
		return 0, errors.Errorf("unknown representative mode %q", s)
	}
}

// NoInstMaxLevel disables the instantiation-level filter.
const NoInstMaxLevel = -1

type Options struct {
	Mode RepMode
	// FiniteModelFind maps opaque model values back to witnessing input
	// terms before selection
	FiniteModelFind bool
	// Cbqi rejects candidates carrying an instantiation constant
	Cbqi bool
	// RestrictInstClosure demotes candidates outside the instantiation
	// closure, or not current in the active assertions
	RestrictInstClosure bool
	// InstMaxLevel, when not NoInstMaxLevel, scores candidates by their
	// instantiation level, lower preferred
	InstMaxLevel int
	// InstLevelInputOnly demotes unleveled terms instead of scoring them
	// as level 0
	InstLevelInputOnly bool
}

func DefaultOptions() Options {
	return Options{
		Mode:         RepModeDepth,
		InstMaxLevel: NoInstMaxLevel,
	}
}
