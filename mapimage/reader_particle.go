package mapimage

var classParticlePhysics = class("pphy")

const (
	partBitmap1     = 0x00
	partBitmap2     = 0x04
	partPhysics     = 0x08
	partEffect1     = 0x0C
	partEffect2     = partEffect1 + dependencySize
	partFootImpact  = partEffect2 + dependencySize
)

func ruleParticle(p *pass, _ TagID, pl payload) {
	if id, ok := pl.tagID(partBitmap1); ok {
		p.visitKnown(id, classBitmap)
	}
	if id, ok := pl.tagID(partBitmap2); ok {
		p.visitKnown(id, classBitmap)
	}
	if id, ok := pl.tagID(partPhysics); ok {
		p.visitKnown(id, classParticlePhysics)
	}
	p.visitCarried(pl.dependency(partEffect1))
	p.visitCarried(pl.dependency(partEffect2))
	if id, ok := pl.tagID(partFootImpact); ok {
		p.visitKnown(id, classFootImpact)
	}
}
