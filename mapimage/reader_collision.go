package mapimage

const collEffects = 0x00 // 8 carried-class dependency slots, dependencySize apart
const collRegions = collEffects + 8*dependencySize

func ruleCollision(p *pass, _ TagID, pl payload) {
	for i := uint32(0); i < 8; i++ {
		p.visitCarried(pl.dependency(collEffects + i*dependencySize))
	}
	p.eachReflexive(pl.reflexive(collRegions), dependencySize, func(rec payload) {
		p.visitCarried(rec.dependency(0))
	})
}
