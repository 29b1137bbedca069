package mapimage

// Common object payload header, present in every object-family payload
// regardless of concrete type (offset 0x0 is the type discriminant
// consumed by visitObject before this rule runs):
//
//	0x00 type (u8, already consumed)
//	0x04 model           (known class mod2)
//	0x08 animation       (known class antr)
//	0x0C collision       (known class coll)
//	0x10 shader          (discriminated, like visitShader)
//	0x14 widgets         (reflexive of carried-class dependencies)
//	0x18 attachments     (reflexive of carried-class dependencies)
//	0x1C resources       (reflexive of {kind u8, pad, id u32}; kind 0->bitm, 1->snd )
//	0x24 physics         (known class phys, terminal)
//	0x28 type-specific extra data begins
const (
	objModel       = 0x04
	objAnimation   = 0x08
	objCollision   = 0x0C
	objShader      = 0x10
	objWidgets     = 0x14
	objAttachments = 0x18
	objResources   = 0x1C
	objPhysics     = 0x24
	objExtra       = 0x28
)

const resourceRecordSize = 8 // kind u8 + 3 pad + id u32

func ruleObjectCommon(p *pass, pl payload) {
	if id, ok := pl.tagID(objModel); ok {
		p.visitKnown(id, classModel)
	}
	if id, ok := pl.tagID(objAnimation); ok {
		p.visitKnown(id, classAnimation)
	}
	if id, ok := pl.tagID(objCollision); ok {
		p.visitKnown(id, classCollision)
	}
	if id, ok := pl.tagID(objShader); ok {
		p.visitShader(id)
	}
	if id, ok := pl.tagID(objPhysics); ok {
		p.visitKnown(id, classPhysics)
	}

	p.eachReflexive(pl.reflexive(objWidgets), dependencySize, func(rec payload) {
		p.visitCarried(rec.dependency(0))
	})
	p.eachReflexive(pl.reflexive(objAttachments), dependencySize, func(rec payload) {
		p.visitCarried(rec.dependency(0))
	})
	p.eachReflexive(pl.reflexive(objResources), resourceRecordSize, func(rec payload) {
		kind, _ := rec.u8(0)
		id, _ := rec.tagID(4)
		if kind == 0 {
			p.visitKnown(id, classBitmap)
		} else {
			p.visitKnown(id, classSound)
		}
	})
}

// ruleObject dispatches the type-specific extra edges for an
// already-reclassified object-family tag. typ is the discriminant
// value decoded by visitObject.
func ruleObject(p *pass, _ TagID, pl payload, typ uint8) {
	ruleObjectCommon(p, pl)

	switch typ {
	case 0x0: // bipd
		ruleObjectUnitExtra(p, pl)
		ruleObjectBipedExtra(p, pl)
	case 0x1: // vehi
		ruleObjectUnitExtra(p, pl)
		ruleObjectVehicleExtra(p, pl)
	case 0x2: // weap
		ruleObjectWeaponExtra(p, pl)
	case 0x3: // eqip
		ruleObjectItemExtra(p, pl)
	case 0x5: // proj
		ruleObjectProjectileExtra(p, pl)
	default:
		// garb, scen, mach, ctrl, lifi, plac, ssce carry no extra
		// reference fields beyond ruleObjectCommon.
	}
}

// Item extra fields (eqip, and shared by weap): foot-impact, collision
// sound, detonating/detonation effects.
const (
	itemFootImpact       = objExtra + 0x00
	itemCollisionSound   = objExtra + 0x04
	itemDetonatingEffect = objExtra + 0x08
	itemDetonationEffect = objExtra + 0x0C
)

func ruleObjectItemExtra(p *pass, pl payload) {
	if id, ok := pl.tagID(itemFootImpact); ok {
		p.visitKnown(id, classFootImpact)
	}
	if id, ok := pl.tagID(itemCollisionSound); ok {
		p.visitKnown(id, classSound)
	}
	if id, ok := pl.tagID(itemDetonatingEffect); ok {
		p.visitKnown(id, classEffect)
	}
	if id, ok := pl.tagID(itemDetonationEffect); ok {
		p.visitKnown(id, classEffect)
	}
}
