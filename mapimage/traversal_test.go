package mapimage

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeprotectScenarioOnly(t *testing.T) {
	b := newMapBuilder(haloCEVersion)
	scenarioID := b.addTag(0, make([]byte, 0xA4)) // class starts obfuscated
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	out, report, err := Deprotect(h)
	require.NoError(t, err)
	require.Equal(t, 1, report.TagsVisited)
	require.Equal(t, 0, report.EdgesPruned)

	base, ok := out.tagArrayBase()
	require.True(t, ok)
	e, _, ok := out.entry(base, scenarioID.tableIndex())
	require.True(t, ok)
	require.Equal(t, classScenario, e.ClassPrimary)
}

func TestDeprotectBipedPaletteResolvesToBipd(t *testing.T) {
	b := newMapBuilder(haloCEVersion)

	bipedID := b.addTag(0, make([]byte, 0x60)) // type byte 0 -> bipd

	scenarioPayload := make([]byte, 0xA4)
	paletteRecord := encDependency(0, bipedID) // carried class unknown, re-discriminated from payload
	paletteBlob := b.addBlob(paletteRecord)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrBipeds:], 1)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrBipeds+4:], paletteBlob)

	scenarioID := b.addTag(0, scenarioPayload)
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	out, report, err := Deprotect(h)
	require.NoError(t, err)
	require.Equal(t, 0, report.EdgesPruned)

	base, _ := out.tagArrayBase()
	e, _, ok := out.entry(base, bipedID.tableIndex())
	require.True(t, ok)
	require.Equal(t, class("bipd"), e.ClassPrimary)
}

func TestDeprotectWeaponReferencedTwiceVisitedOnce(t *testing.T) {
	b := newMapBuilder(haloCEVersion)

	weaponPayload := make([]byte, 0x80)
	weaponPayload[0] = 0x2 // weap discriminant
	weaponID := b.addTag(0, weaponPayload)

	scenarioPayload := make([]byte, 0xA4)
	dep := encDependency(0, weaponID)
	blobOne := b.addBlob(dep)
	blobTwo := b.addBlob(dep)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrWeapons:], 1)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrWeapons+4:], blobOne)

	// Reference the same weapon a second time through the vehicles
	// palette to exercise the cross-palette visited-once guarantee.
	binary.LittleEndian.PutUint32(scenarioPayload[scnrVehicles:], 1)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrVehicles+4:], blobTwo)

	scenarioID := b.addTag(0, scenarioPayload)
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	out, report, err := Deprotect(h)
	require.NoError(t, err)
	require.Equal(t, 2, report.TagsVisited) // scenario + weapon, exactly once each

	base, _ := out.tagArrayBase()
	e, _, ok := out.entry(base, weaponID.tableIndex())
	require.True(t, ok)
	require.Equal(t, class("weap"), e.ClassPrimary)
}

func TestVisitKnownTerminatesOnSelfReference(t *testing.T) {
	b := newMapBuilder(haloCEVersion)

	fontID := TagID(uint32(len(b.tags)) | (1 << 16))
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint32(payload[0:], uint32(fontID)) // bold variant references itself
	b.addTag(0, payload)

	h := Open(b.build())
	require.NoError(t, h.Err)

	base, ok := h.tagArrayBase()
	require.True(t, ok)

	p := &pass{h: h, base: base, visited: newVisitedSet(h.tagCount)}
	p.visitKnown(fontID, classFont)

	require.Equal(t, 1, p.report.TagsVisited, "a self-referencing font must be walked exactly once")
	e, _, ok := h.entry(base, fontID.tableIndex())
	require.True(t, ok)
	require.Equal(t, classFont, e.ClassPrimary)
}

func TestDeprotectPreservesNotInMapTags(t *testing.T) {
	b := newMapBuilder(haloCEVersion)

	garbage := ClassCode(0xDEADBEEF)
	xID := b.addTag(garbage, nil)
	b.markNotInMap(xID)

	scenarioPayload := make([]byte, 0xA4)
	decalBlob := b.addBlob(encTagID(xID))
	binary.LittleEndian.PutUint32(scenarioPayload[scnrDecals:], 1)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrDecals+4:], decalBlob)

	scenarioID := b.addTag(0, scenarioPayload)
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	out, report, err := Deprotect(h)
	require.NoError(t, err)
	require.Equal(t, 1, report.TagsVisited, "pre-marked not_in_map tags are never counted as newly visited")

	base, _ := out.tagArrayBase()
	e, _, ok := out.entry(base, xID.tableIndex())
	require.True(t, ok)
	require.Equal(t, garbage, e.ClassPrimary, "a not_in_map tag's class must never be overwritten")
	require.True(t, e.NotInMap)
}

func TestDeprotectAppliesGlobalsRuleWithoutOverwritingGlobalsClass(t *testing.T) {
	b := newMapBuilder(haloCEVersion)

	weaponPayload := make([]byte, 0x80)
	weaponPayload[0] = 0x2
	weaponID := b.addTag(0, weaponPayload)

	globalsPayload := make([]byte, matgInterfaceBitmaps+interfaceRecordSize)
	weaponsDep := encDependency(0, weaponID)
	weaponsBlob := b.addBlob(weaponsDep)
	binary.LittleEndian.PutUint32(globalsPayload[matgWeapons:], 1)
	binary.LittleEndian.PutUint32(globalsPayload[matgWeapons+4:], weaponsBlob)
	globalsID := b.addNamedTag(classGlobals, `globals\globals`, globalsPayload)

	scenarioID := b.addTag(0, make([]byte, 0xA4))
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	out, _, err := Deprotect(h)
	require.NoError(t, err)

	base, _ := out.tagArrayBase()

	ge, _, ok := out.entry(base, globalsID.tableIndex())
	require.True(t, ok)
	require.Equal(t, classGlobals, ge.ClassPrimary, "matg's own class is never rewritten")

	we, _, ok := out.entry(base, weaponID.tableIndex())
	require.True(t, ok)
	require.Equal(t, class("weap"), we.ClassPrimary, "globals' weapon list must still be walked")
}

func TestDeprotectIsIdempotent(t *testing.T) {
	b := newMapBuilder(haloCEVersion)
	bipedID := b.addTag(0, make([]byte, 0x60))
	scenarioPayload := make([]byte, 0xA4)
	paletteRecord := encDependency(0, bipedID)
	paletteBlob := b.addBlob(paletteRecord)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrBipeds:], 1)
	binary.LittleEndian.PutUint32(scenarioPayload[scnrBipeds+4:], paletteBlob)
	scenarioID := b.addTag(0, scenarioPayload)
	b.scenario = scenarioID

	h := Open(b.build())
	require.NoError(t, h.Err)

	once, _, err := Deprotect(h)
	require.NoError(t, err)
	twice, _, err := Deprotect(once)
	require.NoError(t, err)

	require.Equal(t, once.Buf, twice.Buf)
}
