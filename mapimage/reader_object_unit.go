package mapimage

var classLight = class("ligh")

// Unit extra fields, shared by biped and vehicle, relative to objExtra:
//
//	0x00 weapons            reflexive<dependency> (object, re-discriminated)
//	0x0C integrated_light   (ligh, terminal)
//	0x10 melee_damage       (jpt!, terminal)
//	0x14 spawned_actor      (actv, terminal)
//	0x18 camera_tracks      (trak, terminal)
//	0x1C unit_hud_list      reflexive<TagID> (unhi)
//	0x28 seats              reflexive<seatRecord>
const (
	unitWeapons         = objExtra + 0x00
	unitIntegratedLight = objExtra + 0x0C
	unitMeleeDamage     = objExtra + 0x10
	unitSpawnedActor    = objExtra + 0x14
	unitCameraTracks    = objExtra + 0x18
	unitHUDList         = objExtra + 0x1C
	unitSeats           = objExtra + 0x28
)

// seatRecord: camera_tracks TagID (0x0, trak), hud TagID (0x4, unhi).
const seatRecordSize = 4 + 4

func ruleObjectUnitExtra(p *pass, pl payload) {
	p.eachReflexive(pl.reflexive(unitWeapons), dependencySize, func(rec payload) {
		dep := rec.dependency(0)
		p.visitObject(dep.Identifier)
	})
	if id, ok := pl.tagID(unitIntegratedLight); ok {
		p.visitKnown(id, classLight)
	}
	if id, ok := pl.tagID(unitMeleeDamage); ok {
		p.visitKnown(id, classDamage)
	}
	if id, ok := pl.tagID(unitSpawnedActor); ok {
		p.visitKnown(id, classActorVar)
	}
	if id, ok := pl.tagID(unitCameraTracks); ok {
		p.visitKnown(id, classCameraTrack)
	}
	p.eachReflexive(pl.reflexive(unitHUDList), 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classUnitHUD)
	})
	p.eachReflexive(pl.reflexive(unitSeats), seatRecordSize, func(rec payload) {
		if id, ok := rec.tagID(0x0); ok {
			p.visitKnown(id, classCameraTrack)
		}
		if id, ok := rec.tagID(0x4); ok {
			p.visitKnown(id, classUnitHUD)
		}
	})
}
