// Package mapimage reconstructs tag-class identifiers in a compiled
// first-person-shooter map image by walking the payload graph rooted at
// the scenario tag.
package mapimage

import "errors"

// Sentinel errors surfaced through a Handle's Err field or returned
// directly from OpenPath, Deprotect and Rename. Save returns the
// underlying write error unchanged. Structural problems encountered mid-walk
// (null references, out-of-range translations, unknown discriminants)
// never reach this surface; they prune the offending edge instead, per
// the package's best-effort contract.
var (
	ErrInvalidHeader       = errors.New("mapimage: invalid header")
	ErrInvalidIndexPointer = errors.New("mapimage: invalid index pointer")
	ErrInvalidPath         = errors.New("mapimage: invalid path")
)
