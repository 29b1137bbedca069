package mapimage

// Vehicle extra fields, relative to objExtra (after the shared unit
// block ending at objExtra+0x34):
//
//	0x34 effect            (effe)
//	0x38 foot_impact       (foot)
//	0x3C crash_sound       (snd )
//	0x40 suspension_sound  (snd )
const (
	vehiEffect          = objExtra + 0x34
	vehiFootImpact      = objExtra + 0x38
	vehiCrashSound      = objExtra + 0x3C
	vehiSuspensionSound = objExtra + 0x40
)

func ruleObjectVehicleExtra(p *pass, pl payload) {
	if id, ok := pl.tagID(vehiEffect); ok {
		p.visitKnown(id, classEffect)
	}
	if id, ok := pl.tagID(vehiFootImpact); ok {
		p.visitKnown(id, classFootImpact)
	}
	if id, ok := pl.tagID(vehiCrashSound); ok {
		p.visitKnown(id, classSound)
	}
	if id, ok := pl.tagID(vehiSuspensionSound); ok {
		p.visitKnown(id, classSound)
	}
}

// Biped extra fields, relative to objExtra:
//
//	0x34 foot_impact (foot)
const bipdFootImpact = objExtra + 0x34

func ruleObjectBipedExtra(p *pass, pl payload) {
	if id, ok := pl.tagID(bipdFootImpact); ok {
		p.visitKnown(id, classFootImpact)
	}
}
