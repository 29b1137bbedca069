package mapimage

// Report tallies best-effort outcomes from a single Deprotect pass. It
// is not an error: a nonzero EdgesPruned or UnknownDiscriminants count
// means the walk recovered a partial graph from a partially obfuscated
// or truncated map, which is the documented contract, not a failure.
type Report struct {
	TagsVisited          int
	EdgesPruned          int
	UnknownDiscriminants int
}

// pass threads the state of a single deprotection walk: the buffer
// being mutated, the translated tag-array base, and the visited
// bitmap. It replaces the source's process-global tagArray/tagCount/
// mapdata/magic/deprotectedTags with a value that does not outlive the
// call.
type pass struct {
	h       *Handle
	base    uint32
	visited *visitedSet
	report  Report
}

// Deprotect reconstructs the class_primary field of every tag
// reachable from the scenario root. It never mutates the caller's
// buffer: h.Buf is copied up front, and the copy is what gets walked
// and returned.
func Deprotect(h *Handle) (*Handle, Report, error) {
	if h.Err != nil {
		return h, Report{}, h.Err
	}

	buf := make([]byte, len(h.Buf))
	copy(buf, h.Buf)
	work := Open(buf)
	if work.Err != nil {
		return h, Report{}, work.Err
	}

	base, ok := work.tagArrayBase()
	if !ok {
		return h, Report{}, ErrInvalidIndexPointer
	}

	p := &pass{h: work, base: base, visited: newVisitedSet(work.tagCount)}

	if work.isCE() {
		for i := uint32(0); i < work.tagCount; i++ {
			e, _, ok := work.entry(base, uint16(i))
			if ok && e.NotInMap {
				p.visited.set(uint16(i))
			}
		}
	}

	var globalsID TagID
	var haveGlobals bool
	if gid, ok := work.findGlobals(base); ok {
		globalsID = gid
		haveGlobals = true
		p.visited.set(gid.tableIndex())
	}

	scenarioID := work.scenarioID
	work.setClass(base, scenarioID, classScenario)
	p.visitKnown(scenarioID, classScenario)

	if haveGlobals {
		// matg is in the non-deprotectable allowlist, so the ordinary
		// visitKnown gate would mark it visited and stop without ever
		// applying its rule. Globals is special-cased by the traversal
		// engine: already pre-marked visited above, its class is left
		// alone, but its payload is still walked for outgoing edges.
		e, _, ok := work.entry(base, globalsID.tableIndex())
		if ok {
			if pl, ok := work.openPayload(e.PayloadOffset); ok {
				ruleGlobals(p, globalsID, pl)
			} else {
				p.report.EdgesPruned++
			}
		} else {
			p.report.EdgesPruned++
		}
	}

	return work, p.report, nil
}

// visitKnown is the three-guard recursive entry point described by the
// traversal engine: null/out-of-range check, already-visited check,
// then set-class-before-recurse so self-referential edges terminate.
func (p *pass) visitKnown(id TagID, c ClassCode) {
	if id.isNull(p.h.tagCount) {
		return
	}
	idx := id.tableIndex()
	if p.visited.get(idx) {
		return
	}
	p.visited.set(idx)
	p.report.TagsVisited++

	if nonDeprotectable[c] {
		return
	}
	p.h.setClass(p.base, id, c)
	p.walk(id, c)
}

// visitCarried follows a generic dependency field whose class travels
// with the reference. An absent (zero) carried class cannot be
// resolved from the reference site alone and is pruned.
func (p *pass) visitCarried(dep dependency) {
	if dep.Identifier.isNull(p.h.tagCount) {
		return
	}
	if p.visited.get(dep.Identifier.tableIndex()) {
		return
	}
	c := dep.MainClass
	if c == 0 {
		p.report.EdgesPruned++
		return
	}
	switch {
	case isObjectFamily(c):
		p.visitObject(dep.Identifier)
	case c == classEffect:
		p.visitKnown(dep.Identifier, classEffect)
	default:
		p.visitKnown(dep.Identifier, c)
	}
}

// objTypeDiscriminant is the relative offset of the type byte at the
// start of an object-family payload.
const objTypeDiscriminant = 0x0

// visitObject re-discriminates an object-family reference by reading
// the type byte out of the referent's own payload, since the carried
// class (if any) only says "this is some object", not which concrete
// subtype.
func (p *pass) visitObject(id TagID) {
	if id.isNull(p.h.tagCount) {
		return
	}
	idx := id.tableIndex()
	if p.visited.get(idx) {
		return
	}
	e, _, ok := p.h.entry(p.base, idx)
	if !ok {
		p.visited.set(idx)
		p.report.EdgesPruned++
		return
	}
	pl, ok := p.h.openPayload(e.PayloadOffset)
	if !ok {
		p.visited.set(idx)
		p.report.EdgesPruned++
		return
	}
	typ, ok := pl.u8(objTypeDiscriminant)
	if !ok || int(typ) >= len(objectClassByType) {
		p.visited.set(idx)
		p.report.UnknownDiscriminants++
		return
	}
	concrete := objectClassByType[typ]
	p.visited.set(idx)
	p.report.TagsVisited++
	p.h.setClass(p.base, id, concrete)
	ruleObject(p, id, pl, typ)
}

// shaderDiscriminant is the relative offset of the shader-type byte at
// the start of a shader payload.
const shaderDiscriminant = 0x0

// visitShader re-discriminates a shader reference the same way
// visitObject does for objects: the concrete subclass lives in a byte
// at the start of the referent's own payload, not in any carried
// class. Discriminants 0-2 reclassify to the generic shdr class and
// are not walked further.
func (p *pass) visitShader(id TagID) {
	if id.isNull(p.h.tagCount) {
		return
	}
	idx := id.tableIndex()
	if p.visited.get(idx) {
		return
	}
	e, _, ok := p.h.entry(p.base, idx)
	if !ok {
		p.visited.set(idx)
		p.report.EdgesPruned++
		return
	}
	pl, ok := p.h.openPayload(e.PayloadOffset)
	if !ok {
		p.visited.set(idx)
		p.report.EdgesPruned++
		return
	}
	typ, ok := pl.u8(shaderDiscriminant)
	if !ok || int(typ) >= len(shaderClassByType) {
		p.visited.set(idx)
		p.report.UnknownDiscriminants++
		return
	}
	concrete := shaderClassByType[typ]
	p.visited.set(idx)
	p.report.TagsVisited++
	p.h.setClass(p.base, id, concrete)
	if typ <= 2 {
		return // generic shdr: not walked further
	}
	ruleShaderConcrete(p, id, pl, concrete)
}

// visitBSP is the entry point for a structure-bsp reference. The sbsp
// tag's own table entry and top-level payload live in the main address
// space like any other tag, but the reflexives inside that payload
// (collision-material and lightmap-material shader lists) were loaded
// under the BSP's own (bspMagic, fileOffset) pair and must be
// translated accordingly.
func (p *pass) visitBSP(id TagID, bspMagic, fileOffset uint32) {
	if id.isNull(p.h.tagCount) {
		return
	}
	idx := id.tableIndex()
	if p.visited.get(idx) {
		return
	}
	p.visited.set(idx)
	p.report.TagsVisited++
	p.h.setClass(p.base, id, classBSP)

	e, _, ok := p.h.entry(p.base, idx)
	if !ok {
		p.report.EdgesPruned++
		return
	}
	pl, ok := p.h.openPayload(e.PayloadOffset)
	if !ok {
		p.report.EdgesPruned++
		return
	}
	ruleBSP(p, pl, bspMagic, fileOffset)
}

// walk dispatches to the class-inference rule for a tag whose class is
// now known, looking up and opening its payload. Classes with no rule
// below are terminal: they carry no further references this system
// models (bitm, snd , jpt!, phys, actv, trak, colo, str#, ...).
func (p *pass) walk(id TagID, c ClassCode) {
	e, _, ok := p.h.entry(p.base, id.tableIndex())
	if !ok {
		p.report.EdgesPruned++
		return
	}
	pl, ok := p.h.openPayload(e.PayloadOffset)
	if !ok {
		p.report.EdgesPruned++
		return
	}
	switch c {
	case classScenario:
		ruleScenario(p, id, pl)
	case class("senv"), class("soso"), class("sotr"), class("schi"),
		class("scex"), class("swat"), class("sgla"), class("smet"), class("spla"):
		ruleShaderConcrete(p, id, pl, c)
	case classModel:
		ruleModel(p, id, pl)
	case classEffect:
		ruleEffect(p, id, pl)
	case classParticle:
		ruleParticle(p, id, pl)
	case classFootImpact:
		ruleFootImpact(p, id, pl)
	case classCollision:
		ruleCollision(p, id, pl)
	case classWeaponHUD:
		ruleWeaponHUD(p, id, pl)
	case classUnitHUD:
		ruleUnitHUD(p, id, pl)
	case classGrenadeHUD:
		ruleGrenadeHUD(p, id, pl)
	case classFont:
		ruleFont(p, id, pl)
	case classDecal:
		ruleDecal(p, id, pl)
	case classAnimation:
		ruleAnimation(p, id, pl)
	case classHUDDigits:
		ruleHUDDigits(p, id, pl)
	case classHUDGlobals:
		ruleHUDGlobals(p, id, pl)
	case classSky:
		ruleSky(p, id, pl)
	case classItemColl:
		ruleItemCollection(p, id, pl)
	default:
		// terminal class: no outgoing references modeled here.
	}
}
