// Package types holds the small value types shared by the loader, the
// renderer and the summary reader.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which simulation output is visualized.
type Mode int

const (
	// TargetSouls samples hold the pulls needed to reach a soul target.
	TargetSouls Mode = 1
	// FixedPulls samples hold the souls obtained from a fixed pull budget.
	FixedPulls Mode = 2
)

// Default input files written by the simulation.
const (
	DefaultPullResultsFile = "pull_results.csv"
	DefaultSoulResultsFile = "soul_results.csv"
)

// ErrInvalidMode is returned for any mode other than 1 or 2.
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode converts a CLI argument into a Mode.
func ParseMode(s string) (Mode, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number (choose from 1, 2)", ErrInvalidMode, s)
	}
	m := Mode(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d (choose from 1, 2)", ErrInvalidMode, n)
	}
	return m, nil
}

func (m Mode) Valid() bool { return m == TargetSouls || m == FixedPulls }

// DefaultFile returns the file name the simulation writes for this mode.
func (m Mode) DefaultFile() string {
	if m == FixedPulls {
		return DefaultSoulResultsFile
	}
	return DefaultPullResultsFile
}

func (m Mode) String() string {
	switch m {
	case TargetSouls:
		return "Target Souls"
	case FixedPulls:
		return "Fixed Pulls"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}
