package mapimage

const footMaterials = 0x00

// materialRecord: effect dependency (carried class, 0x0), sound TagID
// (0x14).
const footMaterialRecordSize = dependencySize + 4

func ruleFootImpact(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(footMaterials), footMaterialRecordSize, func(rec payload) {
		p.visitCarried(rec.dependency(0x0))
		if id, ok := rec.tagID(dependencySize); ok {
			p.visitKnown(id, classSound)
		}
	})
}
