package mapimage

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ReferenceMap is the threaded-through argument for cross-map fuzzy
// name recovery. Per spec, the feature is an open question left
// unresolved upstream: the hook is kept available for a future fuzzy
// matcher, but no implementation here ever raises a match above
// matchingThreshold, so it is a guaranteed no-op.
type ReferenceMap struct {
	Names []string
}

// ClassNamer supplies the human-readable name for a class code, used to
// build a synthesized tag name. The table itself is an external
// collaborator (spec.md §1); callers without one may pass nil to fall
// back to the raw class code with trailing spaces trimmed.
type ClassNamer func(ClassCode) string

func rawClassName(c ClassCode) string {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(c))
	return strings.TrimRight(string(b), " ")
}

// Rename appends synthesized placeholder names for every eligible tag
// and rewrites its name_pointer to point at the new name. h's buffer is
// never mutated; Rename returns an extended copy.
func Rename(h *Handle, referenceMaps []ReferenceMap, className ClassNamer) (*Handle, error) {
	if h.Err != nil {
		return h, h.Err
	}
	if className == nil {
		className = rawClassName
	}

	maxAppend := uint64(maxTagNameSize) * uint64(h.tagCount)
	buf := make([]byte, len(h.Buf), uint64(len(h.Buf))+maxAppend)
	buf = buf[:len(h.Buf)]
	copy(buf, h.Buf)

	work := Open(buf)
	if work.Err != nil {
		return h, work.Err
	}

	base, ok := work.tagArrayBase()
	if !ok {
		return h, ErrInvalidIndexPointer
	}

	type pendingRename struct {
		entryOffset uint32
		placeholder []byte
	}
	var pending []pendingRename
	for i := uint32(0); i < work.tagCount; i++ {
		e, entryOff, ok := work.entry(base, uint16(i))
		if !ok || !renameEligible(work, e) {
			continue
		}
		if !autoGeneric[e.ClassPrimary] {
			_ = fuzzyMatch(referenceMaps, e) // never clears matchingThreshold; always falls through below
		}

		placeholder := fmt.Sprintf(`deathstar\%s\tag_%d`, className(e.ClassPrimary), i)
		pending = append(pending, pendingRename{entryOffset: entryOff, placeholder: append([]byte(placeholder), 0)})
	}

	for _, pr := range pending {
		target := uint32(len(work.Buf))
		work.Buf = append(work.Buf, pr.placeholder...)
		namePtr := uint32(work.mainMagic()) + target
		binary.LittleEndian.PutUint32(work.Buf[pr.entryOffset+offNamePointer:], namePtr)
	}

	newLength := uint32(len(work.Buf))
	binary.LittleEndian.PutUint32(work.Buf[0x8:], newLength)
	binary.LittleEndian.PutUint32(work.Buf[0x10:], work.hdr.metaSize+(newLength-uint32(len(h.Buf))))

	return work, nil
}

func renameEligible(h *Handle, e TagTableEntry) bool {
	if nonDeprotectable[e.ClassPrimary] {
		return false
	}
	off, ok := h.translateMain(e.NamePointer)
	if !ok {
		return false
	}
	idxEnd := h.indexOffset + indexHeaderSize + h.tagCount*tagEntrySize
	if off < h.indexOffset || off >= idxEnd {
		return false
	}
	if e.NotInMap {
		return false
	}
	name, ok := h.readName(e.NamePointer)
	if !ok {
		return false
	}
	if strings.HasPrefix(name, `ui\`) || strings.HasPrefix(name, `sound\`) {
		return false
	}
	return true
}

// fuzzyMatch is the stubbed cross-map name recovery hook: it always
// returns a similarity of 0, which never clears matchingThreshold, so
// the caller always falls back to the synthesized placeholder name.
func fuzzyMatch(maps []ReferenceMap, e TagTableEntry) string {
	bestMatch := 0.0
	var best string
	for _, m := range maps {
		for _, candidate := range m.Names {
			currentMatch := 0.0
			if currentMatch > bestMatch {
				bestMatch = currentMatch
				best = candidate
			}
		}
	}
	if bestMatch > matchingThreshold {
		return best
	}
	return ""
}
