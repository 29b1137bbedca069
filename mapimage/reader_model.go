package mapimage

const modelShaders = 0x00

func ruleModel(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(modelShaders), 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitShader(id)
	})
}
