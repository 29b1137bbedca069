package mapimage

const effeEvents = 0x00

// eventRecord: parts reflexive<dependency> (0x0), particles
// reflexive<TagID part> (0xC).
const eventRecordSize = 12 + 12

func ruleEffect(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(effeEvents), eventRecordSize, func(event payload) {
		p.eachReflexive(event.reflexive(0x0), dependencySize, func(part payload) {
			p.visitCarried(part.dependency(0))
		})
		p.eachReflexive(event.reflexive(0xC), 4, func(particle payload) {
			id, _ := particle.tagID(0)
			p.visitKnown(id, classParticle)
		})
	})
}
