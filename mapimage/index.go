package mapimage

import "bytes"

// entry field offsets within a tagEntrySize-byte tag-table record.
const (
	offClassPrimary   = 0x00
	offClassSecondary = 0x04
	offClassTertiary  = 0x08
	offIdentifier     = 0x0C
	offNamePointer    = 0x10
	offPayloadOffset  = 0x14
	offNotInMap       = 0x18
)

// TagTableEntry is a read-only view of one tag-table record, except for
// ClassPrimary which the traversal engine mutates in place.
type TagTableEntry struct {
	ClassPrimary   ClassCode
	ClassSecondary ClassCode
	ClassTertiary  ClassCode
	Identifier     TagID
	NamePointer    uint32
	PayloadOffset  uint32
	NotInMap       bool
}

// tagArrayBase translates the tag index pointer once; callers pass the
// result to entry() to avoid re-translating per lookup.
func (h *Handle) tagArrayBase() (uint32, bool) {
	return h.translateMain(h.tagIndexPtr)
}

// entry reads the table-index'th tag-table record. It returns ok=false
// if the index is out of range or the record falls outside the buffer.
func (h *Handle) entry(base uint32, index uint16) (TagTableEntry, uint32, bool) {
	if uint32(index) >= h.tagCount {
		return TagTableEntry{}, 0, false
	}
	off := base + uint32(index)*tagEntrySize
	if !h.withinBuffer(uint64(off), tagEntrySize) {
		return TagTableEntry{}, 0, false
	}
	cp, _ := h.classAt(off + offClassPrimary)
	cs, _ := h.classAt(off + offClassSecondary)
	ct, _ := h.classAt(off + offClassTertiary)
	ident, _ := h.u32(off + offIdentifier)
	name, _ := h.u32(off + offNamePointer)
	payload, _ := h.u32(off + offPayloadOffset)
	notInMap, _ := h.u32(off + offNotInMap)
	e := TagTableEntry{
		ClassPrimary:   cp,
		ClassSecondary: cs,
		ClassTertiary:  ct,
		Identifier:     TagID(ident),
		NamePointer:    name,
		PayloadOffset:  payload,
		NotInMap:       h.isCE() && notInMap != 0,
	}
	return e, off, true
}

// setClass writes class_code to the class_primary field of id's table
// entry. It is a no-op for a null or out-of-range id.
func (h *Handle) setClass(base uint32, id TagID, c ClassCode) {
	if id.isNull(h.tagCount) {
		return
	}
	off := base + uint32(id.tableIndex())*tagEntrySize
	if !h.withinBuffer(uint64(off), 4) {
		return
	}
	h.putU32(off+offClassPrimary, uint32(c))
}

// readName reads a NUL-terminated string at a main-space name pointer,
// bounded by maxTagNameSize*4 to avoid scanning unbounded garbage.
func (h *Handle) readName(namePointer uint32) (string, bool) {
	off, ok := h.translateMain(namePointer)
	if !ok {
		return "", false
	}
	limit := off + maxTagNameSize*4
	if uint64(limit) > uint64(len(h.Buf)) {
		limit = uint32(len(h.Buf))
	}
	end := bytes.IndexByte(h.Buf[off:limit], 0)
	if end < 0 {
		return "", false
	}
	return string(h.Buf[off : off+uint32(end)]), true
}

// findGlobals linear-scans the tag index for the matg entry named
// "globals\globals".
func (h *Handle) findGlobals(base uint32) (TagID, bool) {
	for i := uint32(0); i < h.tagCount; i++ {
		e, _, ok := h.entry(base, uint16(i))
		if !ok || e.ClassPrimary != classGlobals {
			continue
		}
		name, ok := h.readName(e.NamePointer)
		if ok && name == `globals\globals` {
			return e.Identifier, true
		}
	}
	return 0, false
}
