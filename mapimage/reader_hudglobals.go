package mapimage

// HUD globals (hudg): eleven known-class edges. The two ustr slots are a
// non-deprotectable class: visitKnown still marks them visited (so
// nothing else can claim them) but never writes their class_primary.
const (
	hudgAlternateIconText     = 0x00 // ustr
	hudgCarnageReport         = 0x04
	hudgCheckpointSound       = 0x08
	hudgDamageIndicatorBitmap = 0x0C
	hudgDefaultWeaponHud      = 0x10 // wphi
	hudgHudMessages           = 0x14 // hmt
	hudgIconBitmap            = 0x18
	hudgIconMessageText       = 0x1C // ustr
	hudgMultiPlayerFont       = 0x20
	hudgSinglePlayerFont      = 0x24
	hudgWaypointArrowBitmap   = 0x28
)

func ruleHUDGlobals(p *pass, _ TagID, pl payload) {
	if id, ok := pl.tagID(hudgAlternateIconText); ok {
		p.visitKnown(id, classUnicodeStr)
	}
	for _, off := range []uint32{hudgCarnageReport, hudgDamageIndicatorBitmap, hudgIconBitmap, hudgWaypointArrowBitmap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
	if id, ok := pl.tagID(hudgCheckpointSound); ok {
		p.visitKnown(id, classSound)
	}
	if id, ok := pl.tagID(hudgDefaultWeaponHud); ok {
		p.visitKnown(id, classWeaponHUD)
	}
	if id, ok := pl.tagID(hudgHudMessages); ok {
		p.visitKnown(id, classHUDMessage)
	}
	if id, ok := pl.tagID(hudgIconMessageText); ok {
		p.visitKnown(id, classUnicodeStr)
	}
	for _, off := range []uint32{hudgMultiPlayerFont, hudgSinglePlayerFont} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classFont)
		}
	}
}
