package mapimage

// Font (font): four self-referential edges, each a font.
var fontFieldOffsets = []uint32{0x00, 0x04, 0x08, 0x0C} // bold, italic, condensed, underline

func ruleFont(p *pass, _ TagID, pl payload) {
	for _, off := range fontFieldOffsets {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classFont)
		}
	}
}

// Decal (deca): one bitmap and one self-referential next-decal edge.
const (
	decaBitmap = 0x00
	decaNext   = 0x04
)

func ruleDecal(p *pass, _ TagID, pl payload) {
	if id, ok := pl.tagID(decaBitmap); ok {
		p.visitKnown(id, classBitmap)
	}
	if id, ok := pl.tagID(decaNext); ok {
		p.visitKnown(id, classDecal)
	}
}

// Animation (antr): a sound list, all snd .
const antrSounds = 0x00

func ruleAnimation(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(antrSounds), 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classSound)
	})
}
