package mapimage

// multitextureOverlayRecord: mapPrimary, mapSecondary, mapTertiary, all
// BITM references, 4 bytes apart. Shared by wphi, unhi, and grhi, the
// way the underlying deprotector routes every multitexture-overlay
// field through one helper regardless of which HUD owns it.
const multitextureOverlayRecordSize = 3 * 4

func visitMultitextureOverlay(p *pass, r Reflexive) {
	p.eachReflexive(r, multitextureOverlayRecordSize, func(rec payload) {
		for i := uint32(0); i < 3; i++ {
			if id, ok := rec.tagID(i * 4); ok {
				p.visitKnown(id, classBitmap)
			}
		}
	})
}

// Weapon HUD (wphi): five known-class bitmaps, a reflexive of
// multitexture overlay records, and a self-referential child_hud edge
// walked under the same cycle guard as every other recursive entry
// point.
const (
	wphiMeterBitmap        = 0x00
	wphiStaticBitmap       = 0x04
	wphiOverlayBitmap      = 0x08
	wphiCrosshairBitmap    = 0x0C
	wphiScreenEffectBitmap = 0x10
	wphiMultitexture       = 0x14
	wphiChildHUD           = 0x20
)

func ruleWeaponHUD(p *pass, _ TagID, pl payload) {
	for _, off := range []uint32{wphiMeterBitmap, wphiStaticBitmap, wphiOverlayBitmap, wphiCrosshairBitmap, wphiScreenEffectBitmap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
	visitMultitextureOverlay(p, pl.reflexive(wphiMultitexture))
	if id, ok := pl.tagID(wphiChildHUD); ok {
		p.visitKnown(id, classWeaponHUD)
	}
}

// Unit HUD (unhi): a reflexive of multitexture overlay records, seven
// bitmaps, a reflexive of auxiliary meter bitmaps, and a reflexive of
// carried-class warning sounds.
const (
	unhiMultitexture    = 0x00
	unhiBitmaps         = unhiMultitexture + 8
	unhiAuxiliaryMeters = unhiBitmaps + 7*4
	unhiWarningSounds   = unhiAuxiliaryMeters + 8
)

func ruleUnitHUD(p *pass, _ TagID, pl payload) {
	visitMultitextureOverlay(p, pl.reflexive(unhiMultitexture))
	for i := uint32(0); i < 7; i++ {
		if id, ok := pl.tagID(unhiBitmaps + i*4); ok {
			p.visitKnown(id, classBitmap)
		}
	}
	p.eachReflexive(pl.reflexive(unhiAuxiliaryMeters), 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classBitmap)
	})
	p.eachReflexive(pl.reflexive(unhiWarningSounds), dependencySize, func(rec payload) {
		p.visitCarried(rec.dependency(0))
	})
}

// Grenade HUD (grhi): three bitmaps and two multitexture overlay
// reflexives (background, foreground).
const (
	grhiBitmaps                = 0x00 // 3 slots
	grhiBackgroundMultitexture = grhiBitmaps + 3*4
	grhiForegroundMultitexture = grhiBackgroundMultitexture + 8
)

func ruleGrenadeHUD(p *pass, _ TagID, pl payload) {
	for i := uint32(0); i < 3; i++ {
		if id, ok := pl.tagID(grhiBitmaps + i*4); ok {
			p.visitKnown(id, classBitmap)
		}
	}
	visitMultitextureOverlay(p, pl.reflexive(grhiBackgroundMultitexture))
	visitMultitextureOverlay(p, pl.reflexive(grhiForegroundMultitexture))
}

// HUD digits (hud#): one bitmap.
const hudDigitsBitmap = 0x00

func ruleHUDDigits(p *pass, _ TagID, pl payload) {
	if id, ok := pl.tagID(hudDigitsBitmap); ok {
		p.visitKnown(id, classBitmap)
	}
}
