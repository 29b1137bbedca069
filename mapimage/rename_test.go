package mapimage

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// entryOffset returns the tag-table byte offset of table index i, matching
// the layout mapBuilder.build produces (tag table immediately follows the
// index header).
func entryOffset(b *mapBuilder, i int) uint32 {
	return b.indexOffset + indexHeaderSize + uint32(i)*tagEntrySize
}

func TestRenameSynthesizesPlaceholderForEligibleTag(t *testing.T) {
	b := newMapBuilder(haloCEVersion)
	bipedID := b.addTag(class("bipd"), make([]byte, 0x60))
	scenarioID := b.addTag(classScenario, make([]byte, 0xA4))
	b.scenario = scenarioID

	buf := b.build()
	// A name pointer that resolves inside the index region itself (rather
	// than the separately-stored names area) marks a tag as having no real
	// name, which is what makes it eligible for synthesis.
	fakeNamePtr := b.mainPtr(b.indexOffset + indexHeaderSize)
	binary.LittleEndian.PutUint32(buf[entryOffset(b, int(bipedID.tableIndex())):][offNamePointer:], fakeNamePtr)

	h := Open(buf)
	require.NoError(t, h.Err)

	out, err := Rename(h, nil, nil)
	require.NoError(t, err)

	base, ok := out.tagArrayBase()
	require.True(t, ok)
	e, _, ok := out.entry(base, bipedID.tableIndex())
	require.True(t, ok)

	name, ok := out.readName(e.NamePointer)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(name, `deathstar\bipd\tag_`), "got %q", name)
	require.NotEqual(t, h.Buf, out.Buf, "Rename must not mutate the original buffer")
}

func TestRenameSkipsNonDeprotectableAndNotInMapTags(t *testing.T) {
	b := newMapBuilder(haloCEVersion)
	devcID := b.addTag(class("devc"), nil)
	notInMapID := b.addTag(class("bipd"), make([]byte, 0x60))
	b.markNotInMap(notInMapID)
	scenarioID := b.addTag(classScenario, make([]byte, 0xA4))
	b.scenario = scenarioID

	buf := b.build()
	fakeNamePtr := b.mainPtr(b.indexOffset + indexHeaderSize)
	binary.LittleEndian.PutUint32(buf[entryOffset(b, int(devcID.tableIndex())):][offNamePointer:], fakeNamePtr)
	binary.LittleEndian.PutUint32(buf[entryOffset(b, int(notInMapID.tableIndex())):][offNamePointer:], fakeNamePtr)
	origDevcName := binary.LittleEndian.Uint32(buf[entryOffset(b, int(devcID.tableIndex()))+offNamePointer:])
	origNotInMapName := binary.LittleEndian.Uint32(buf[entryOffset(b, int(notInMapID.tableIndex()))+offNamePointer:])

	h := Open(buf)
	require.NoError(t, h.Err)

	out, err := Rename(h, nil, nil)
	require.NoError(t, err)

	base, _ := out.tagArrayBase()

	de, _, ok := out.entry(base, devcID.tableIndex())
	require.True(t, ok)
	require.Equal(t, origDevcName, de.NamePointer, "a non-deprotectable class is never renamed")

	ne, _, ok := out.entry(base, notInMapID.tableIndex())
	require.True(t, ok)
	require.Equal(t, origNotInMapName, ne.NamePointer, "a not_in_map tag is never renamed")
}

func TestRenameGrowsBufferByExactlyTheSynthesizedNameBytes(t *testing.T) {
	b := newMapBuilder(haloCEVersion)
	bipedID := b.addTag(class("bipd"), make([]byte, 0x60))
	scenarioID := b.addTag(classScenario, make([]byte, 0xA4))
	b.scenario = scenarioID

	buf := b.build()
	fakeNamePtr := b.mainPtr(b.indexOffset + indexHeaderSize)
	binary.LittleEndian.PutUint32(buf[entryOffset(b, int(bipedID.tableIndex())):][offNamePointer:], fakeNamePtr)

	h := Open(buf)
	require.NoError(t, h.Err)

	out, err := Rename(h, nil, nil)
	require.NoError(t, err)

	base, _ := out.tagArrayBase()
	e, _, _ := out.entry(base, bipedID.tableIndex())
	name, ok := out.readName(e.NamePointer)
	require.True(t, ok)

	require.Equal(t, len(h.Buf)+len(name)+1, len(out.Buf), "buffer grows by exactly the placeholder bytes including its NUL terminator")

	namePtrOffset, ok := out.translateMain(e.NamePointer)
	require.True(t, ok)
	require.True(t, namePtrOffset >= uint32(len(h.Buf)), "the synthesized name lands in the appended region")
}
