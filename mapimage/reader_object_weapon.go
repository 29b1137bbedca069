package mapimage

// Weapon extra fields, relative to objExtra:
//
//	0x00 first_person_model       (mod2)
//	0x04 first_person_animation   (antr)
//	0x08 triggers                 reflexive<triggerRecord>
//	0x14 magazines                reflexive<magazineRecord>
//	0x20 hud                      (wphi)
//	0x24 effects[5]                (effe)
//	0x38 sounds[3]                 (snd )
//	0x44 damages[2]                 (jpt!, terminal)
const (
	weapFPModel     = objExtra + 0x00
	weapFPAnimation = objExtra + 0x04
	weapTriggers    = objExtra + 0x08
	weapMagazines   = objExtra + 0x14
	weapHUD         = objExtra + 0x20
	weapEffects     = objExtra + 0x24
	weapSounds      = objExtra + 0x38
	weapDamages     = objExtra + 0x44
)

// triggerRecord: projectile dependency (0x0, 20 bytes), charging_effect
// TagID (0x14), firing_effects reflexive (0x18).
const triggerRecordSize = dependencySize + 4 + 12

// firingEffectRecord: empty/firing/misfire carried-class effect
// dependencies (0x00/0x14/0x28, 20 bytes each), followed by the
// misfire/empty/firing damage TagIDs (0x3C/0x40/0x44).
const firingEffectRecordSize = 3*dependencySize + 3*4

const (
	firingEffectEmpty   = 0x00
	firingEffectFiring  = 0x14
	firingEffectMisfire = 0x28
	firingMisfireDamage = 0x3C
	firingEmptyDamage   = 0x40
	firingFiringDamage  = 0x44
)

// magazineRecord: chambering_effect TagID (0x0), reloading_effect TagID
// (0x4), magazine_equipment dependency (0x8, 20 bytes).
const magazineRecordSize = 4 + 4 + dependencySize

func ruleObjectWeaponExtra(p *pass, pl payload) {
	ruleObjectItemExtra(p, pl) // weap shares item fields

	if id, ok := pl.tagID(weapFPModel); ok {
		p.visitKnown(id, classModel)
	}
	if id, ok := pl.tagID(weapFPAnimation); ok {
		p.visitKnown(id, classAnimation)
	}

	p.eachReflexive(pl.reflexive(weapTriggers), triggerRecordSize, func(rec payload) {
		proj := rec.dependency(0)
		p.visitObject(proj.Identifier)
		if id, ok := rec.tagID(0x14); ok {
			p.visitKnown(id, classEffect)
		}
		firing := rec.reflexive(0x18)
		p.eachReflexive(firing, firingEffectRecordSize, func(fe payload) {
			p.visitCarried(fe.dependency(firingEffectEmpty))
			p.visitCarried(fe.dependency(firingEffectFiring))
			p.visitCarried(fe.dependency(firingEffectMisfire))
			for _, off := range []uint32{firingMisfireDamage, firingEmptyDamage, firingFiringDamage} {
				if id, ok := fe.tagID(off); ok {
					p.visitKnown(id, classDamage)
				}
			}
		})
	})

	p.eachReflexive(pl.reflexive(weapMagazines), magazineRecordSize, func(rec payload) {
		if id, ok := rec.tagID(0x0); ok {
			p.visitKnown(id, classEffect)
		}
		if id, ok := rec.tagID(0x4); ok {
			p.visitKnown(id, classEffect)
		}
		equip := rec.dependency(0x8)
		p.visitObject(equip.Identifier)
	})

	if id, ok := pl.tagID(weapHUD); ok {
		p.visitKnown(id, classWeaponHUD)
	}
	for i := uint32(0); i < 5; i++ {
		if id, ok := pl.tagID(weapEffects + i*4); ok {
			p.visitKnown(id, classEffect)
		}
	}
	for i := uint32(0); i < 3; i++ {
		if id, ok := pl.tagID(weapSounds + i*4); ok {
			p.visitKnown(id, classSound)
		}
	}
	for i := uint32(0); i < 2; i++ {
		if id, ok := pl.tagID(weapDamages + i*4); ok {
			p.visitKnown(id, classDamage)
		}
	}
}
