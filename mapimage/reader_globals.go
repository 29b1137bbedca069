package mapimage

// Globals (matg), traversed only when found by name. Weapon, powerup,
// and grenade lists reference object-family tags; camera tracks are
// terminal; the interface-bitmaps block lists eleven typed references
// per entry, covering fonts, color tables, HUD digits, HUD globals,
// the string list, and localization; player info and multiplayer info
// each walk the units (and, for multiplayer, flags/balls/vehicles)
// spawned on that palette entry.
const (
	matgWeapons          = 0x00
	matgPowerups         = 0x0C
	matgGrenades         = 0x18
	matgCameraTracks     = 0x24
	matgInterfaceBitmaps = 0x30
	matgPlayerInfo       = 0x38
	matgMultiplayerInfo  = 0x40
)

// grenadeRecord: equipment object dependency (0x00), projectile object
// dependency (0x14), throwing_effect carried-class dependency (0x28),
// hud_interface TagID (0x3C, grhi).
const grenadeRecordSize = dependencySize + dependencySize + dependencySize + 4

const (
	grenadeEquipment   = 0x00
	grenadeProjectile  = 0x14
	grenadeThrowEffect = 0x28
	grenadeHUD         = 0x3C
)

// playerInfoRecord: unit object dependency (0x00).
const playerInfoRecordSize = dependencySize

// multiplayerInfoRecord: unit/flag/ball object dependencies (0x00/0x14/
// 0x28), vehicles reflexive<dependency> (0x3C).
const multiplayerInfoRecordSize = dependencySize + dependencySize + dependencySize + 8

const (
	multiplayerUnit     = 0x00
	multiplayerFlag     = 0x14
	multiplayerBall     = 0x28
	multiplayerVehicles = 0x3C
)

// interfaceRecord: 11 typed slots — 4 fonts, a color table, HUD digits,
// HUD globals, a string list, localization, and 2 interface bitmaps.
const interfaceRecordSize = 11 * 4

var interfaceRecordClasses = [11]ClassCode{
	classFont, classFont, classFont, classFont,
	classColorTable,
	classHUDDigits,
	classHUDGlobals,
	classStringList,
	classLocaliz,
	classBitmap, classBitmap,
}

func ruleGlobals(p *pass, _ TagID, pl payload) {
	p.eachReflexive(pl.reflexive(matgWeapons), dependencySize, func(rec payload) {
		dep := rec.dependency(0)
		p.visitObject(dep.Identifier)
	})
	p.eachReflexive(pl.reflexive(matgPowerups), dependencySize, func(rec payload) {
		dep := rec.dependency(0)
		p.visitObject(dep.Identifier)
	})
	p.eachReflexive(pl.reflexive(matgGrenades), grenadeRecordSize, func(rec payload) {
		equip := rec.dependency(grenadeEquipment)
		p.visitObject(equip.Identifier)
		proj := rec.dependency(grenadeProjectile)
		p.visitObject(proj.Identifier)
		p.visitCarried(rec.dependency(grenadeThrowEffect))
		if id, ok := rec.tagID(grenadeHUD); ok {
			p.visitKnown(id, classGrenadeHUD)
		}
	})
	p.eachReflexive(pl.reflexive(matgCameraTracks), 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classCameraTrack)
	})
	p.eachReflexive(pl.reflexive(matgInterfaceBitmaps), interfaceRecordSize, func(rec payload) {
		for i, c := range interfaceRecordClasses {
			if id, ok := rec.tagID(uint32(i) * 4); ok {
				p.visitKnown(id, c)
			}
		}
	})
	p.eachReflexive(pl.reflexive(matgPlayerInfo), playerInfoRecordSize, func(rec payload) {
		unit := rec.dependency(0)
		p.visitObject(unit.Identifier)
	})
	p.eachReflexive(pl.reflexive(matgMultiplayerInfo), multiplayerInfoRecordSize, func(rec payload) {
		unit := rec.dependency(multiplayerUnit)
		p.visitObject(unit.Identifier)
		flag := rec.dependency(multiplayerFlag)
		p.visitObject(flag.Identifier)
		ball := rec.dependency(multiplayerBall)
		p.visitObject(ball.Identifier)
		p.eachReflexive(rec.reflexive(multiplayerVehicles), dependencySize, func(ve payload) {
			veh := ve.dependency(0)
			p.visitObject(veh.Identifier)
		})
	})
}
