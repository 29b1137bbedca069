package mapimage

// payload is a cursor over a translated, bounds-checked payload region.
// It never copies bytes; every accessor reads directly from the
// handle's buffer and reports ok=false on any out-of-range access
// instead of panicking, so a truncated or malformed payload degrades to
// a partially-read struct rather than aborting the walk.
type payload struct {
	h   *Handle
	off uint32 // translated base offset of the payload in the buffer
}

// openPayload translates a main-space payload pointer and returns a
// cursor over it. Callers that cannot translate prune the tag's edges:
// none are discovered. visitObject and visitShader then write no class,
// since theirs comes from the payload; visitKnown and visitBSP have
// already written the class the reference site supplied.
func (h *Handle) openPayload(ptr uint32) (payload, bool) {
	off, ok := h.translateMain(ptr)
	if !ok {
		return payload{}, false
	}
	return payload{h: h, off: off}, true
}

func (p payload) at(rel uint32) uint32 { return p.off + rel }

func (p payload) u8(rel uint32) (uint8, bool)   { return p.h.u8(p.at(rel)) }
func (p payload) u16(rel uint32) (uint16, bool) { return p.h.u16(p.at(rel)) }
func (p payload) u32(rel uint32) (uint32, bool) { return p.h.u32(p.at(rel)) }

func (p payload) class(rel uint32) (ClassCode, bool) { return p.h.classAt(p.at(rel)) }

func (p payload) tagID(rel uint32) (TagID, bool) {
	v, ok := p.u32(rel)
	return TagID(v), ok
}

func (p payload) reflexive(rel uint32) Reflexive {
	count, _ := p.u32(rel)
	offset, _ := p.u32(rel + 4)
	return Reflexive{Count: count, Offset: offset}
}

// dependency is a reference field embedded in a payload: a class code
// carried alongside the target identifier. The main class is
// authoritative when present and nonzero.
type dependency struct {
	MainClass      ClassCode
	SecondaryClass ClassCode
	TertiaryClass  ClassCode
	NamePointer    uint32
	Identifier     TagID
}

const dependencySize = 0x14

func (p payload) dependency(rel uint32) dependency {
	mc, _ := p.class(rel)
	sc, _ := p.class(rel + 4)
	tc, _ := p.class(rel + 8)
	np, _ := p.u32(rel + 0xC)
	id, _ := p.tagID(rel + 0x10)
	return dependency{MainClass: mc, SecondaryClass: sc, TertiaryClass: tc, NamePointer: np, Identifier: id}
}

// record returns a payload cursor positioned at base+index*stride,
// for iterating reflexive sub-records.
func (h *Handle) record(base uint32, index, stride uint32) payload {
	return payload{h: h, off: base + index*stride}
}
