package mapimage

// Projectile extra fields, relative to objExtra:
//
//	0x00 detonation_effect        (effe)
//	0x04 super_detonation_effect  (effe)
//	0x08 attached_damage          (jpt!, terminal)
//	0x0C impact_damage            (jpt!, terminal)
//	0x10 material_responses       reflexive<materialResponseRecord>
const (
	projDetonation      = objExtra + 0x00
	projSuperDetonation = objExtra + 0x04
	projAttachedDamage  = objExtra + 0x08
	projImpactDamage    = objExtra + 0x0C
	projMaterialResp    = objExtra + 0x10
)

// materialResponseRecord holds three carried-class response edges.
const materialResponseRecordSize = 3 * dependencySize

func ruleObjectProjectileExtra(p *pass, pl payload) {
	if id, ok := pl.tagID(projDetonation); ok {
		p.visitKnown(id, classEffect)
	}
	// The source walks super_detonation by re-reading the detonation
	// field instead of its own offset (projSuperDetonation is never
	// read) — almost certainly an off-by-one in the field originally
	// intended here. Preserved as-is: the visited set makes the
	// duplicate walk a no-op, not a bug worth silently fixing.
	if id, ok := pl.tagID(projDetonation); ok {
		p.visitKnown(id, classEffect)
	}

	if id, ok := pl.tagID(projAttachedDamage); ok {
		p.visitKnown(id, classDamage)
	}
	if id, ok := pl.tagID(projImpactDamage); ok {
		p.visitKnown(id, classDamage)
	}

	p.eachReflexive(pl.reflexive(projMaterialResp), materialResponseRecordSize, func(rec payload) {
		for i := uint32(0); i < 3; i++ {
			p.visitCarried(rec.dependency(i * dependencySize))
		}
	})
}
