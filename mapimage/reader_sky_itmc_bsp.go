package mapimage

var classFog = class("fog ")

// Sky (sky ): model, animation, fog (terminal), and a reflexive of
// carried-class lens-flare references.
const (
	skyModel      = 0x00
	skyAnimation  = 0x04
	skyFog        = 0x08
	skyLensFlares = 0x0C
)

func ruleSky(p *pass, _ TagID, pl payload) {
	if id, ok := pl.tagID(skyModel); ok {
		p.visitKnown(id, classModel)
	}
	if id, ok := pl.tagID(skyAnimation); ok {
		p.visitKnown(id, classAnimation)
	}
	if id, ok := pl.tagID(skyFog); ok {
		p.visitKnown(id, classFog)
	}
	p.eachReflexive(pl.reflexive(skyLensFlares), dependencySize, func(rec payload) {
		p.visitCarried(rec.dependency(0))
	})
}

// Item collection (itmc): a permutation list, each an object reference.
const itmcPermutations = 0x00

func ruleItemCollection(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(itmcPermutations), dependencySize, func(rec payload) {
		dep := rec.dependency(0)
		p.visitObject(dep.Identifier)
	})
}

// BSP (sbsp): the reflexives below live in the BSP's own address space,
// not the main one, because the geometry data they describe is loaded
// with its own (bspMagic, fileOffset) pair.
const (
	sbspCollisionMaterials = 0x00 // reflexive<TagID> shader refs
	sbspLightmaps          = 0x0C // reflexive<lightmapRecord>
)

// lightmapRecord: materials reflexive<TagID> (BSP-space, nested).
const lightmapRecordSize = 12

func ruleBSP(p *pass, pl payload, bspMagic, fileOffset uint32) {
	p.eachReflexiveBSP(pl.reflexive(sbspCollisionMaterials), 4, bspMagic, fileOffset, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitShader(id)
	})
	p.eachReflexiveBSP(pl.reflexive(sbspLightmaps), lightmapRecordSize, bspMagic, fileOffset, func(lm payload) {
		materials := lm.reflexive(0x0)
		p.eachReflexiveBSP(materials, 4, bspMagic, fileOffset, func(rec payload) {
			id, _ := rec.tagID(0)
			p.visitShader(id)
		})
	})
}
