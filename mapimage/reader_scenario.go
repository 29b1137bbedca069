package mapimage

// Scenario payload layout (relative offsets, all reflexives):
//
//	0x00 skies                (known class sky , TagID-only records)
//	0x0C bipeds                object palette
//	0x18 vehicles              object palette
//	0x24 weapons               object palette
//	0x30 equipment             object palette
//	0x3C scenery               object palette
//	0x48 machines              object palette
//	0x54 controls              object palette
//	0x60 light fixtures        object palette
//	0x6C sound scenery         object palette
//	0x78 starting equipment    (6 itmc refs per entry)
//	0x84 decals                (known class deca, TagID-only records)
//	0x90 structure bsps        (per-entry bsp_magic/file_offset + sbsp dependency)
//	0x9C netgame equipment     (known class itmc, TagID-only records)
const (
	scnrSkies             = 0x00
	scnrBipeds            = 0x0C
	scnrVehicles          = 0x18
	scnrWeapons           = 0x24
	scnrEquipment         = 0x30
	scnrScenery           = 0x3C
	scnrMachines          = 0x48
	scnrControls          = 0x54
	scnrLightFixtures     = 0x60
	scnrSoundScenery      = 0x6C
	scnrStartingEquipment = 0x78
	scnrDecals            = 0x84
	scnrStructureBSPs     = 0x90
	scnrNetgameEquipment  = 0x9C
)

var scenarioObjectPalettes = []uint32{
	scnrBipeds, scnrVehicles, scnrWeapons, scnrEquipment, scnrScenery,
	scnrMachines, scnrControls, scnrLightFixtures, scnrSoundScenery,
}

const startingEquipmentRecordSize = 6 * 4 // 6 itmc TagID slots

const bspRecordSize = 4 + 4 + 4 + 4 + dependencySize // start, size, magic, file_offset, dependency

func ruleScenario(p *pass, _ TagID, pl payload) {
	skies := pl.reflexive(scnrSkies)
	p.eachReflexive(skies, 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classSky)
	})

	for _, off := range scenarioObjectPalettes {
		r := pl.reflexive(off)
		p.eachReflexive(r, dependencySize, func(rec payload) {
			dep := rec.dependency(0)
			p.visitObject(dep.Identifier)
		})
	}

	starting := pl.reflexive(scnrStartingEquipment)
	p.eachReflexive(starting, startingEquipmentRecordSize, func(rec payload) {
		for i := uint32(0); i < 6; i++ {
			id, _ := rec.tagID(i * 4)
			p.visitKnown(id, classItemColl)
		}
	})

	decals := pl.reflexive(scnrDecals)
	p.eachReflexive(decals, 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classDecal)
	})

	bsps := pl.reflexive(scnrStructureBSPs)
	p.eachReflexive(bsps, bspRecordSize, func(rec payload) {
		bspMagic, _ := rec.u32(8)
		fileOffset, _ := rec.u32(12)
		dep := rec.dependency(16)
		p.visitBSP(dep.Identifier, bspMagic, fileOffset)
	})

	netgame := pl.reflexive(scnrNetgameEquipment)
	p.eachReflexive(netgame, 4, func(rec payload) {
		id, _ := rec.tagID(0)
		p.visitKnown(id, classItemColl)
	})
}
