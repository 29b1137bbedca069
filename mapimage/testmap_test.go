package mapimage

import "encoding/binary"

// mapBuilder assembles a minimal, internally-consistent map image for
// tests: a header, an index header, a tag table, and packed payloads.
// It mirrors the format this package reads, not any external file —
// this package both writes and reads the fixtures it tests against.
type mapBuilder struct {
	version     uint32
	indexOffset uint32
	tags        []builtTag
	scenario    TagID
	blobs       [][]byte
}

type builtTag struct {
	class    ClassCode
	name     string
	notInMap bool
	payload  []byte
}

func newMapBuilder(version uint32) *mapBuilder {
	return &mapBuilder{version: version, indexOffset: 0x1000}
}

// addTag registers a tag with the given class and payload bytes,
// returning its TagID (table index in the low 16 bits, salt 1 to avoid
// the all-zero null sentinel).
func (b *mapBuilder) addTag(class ClassCode, payload []byte) TagID {
	idx := len(b.tags)
	b.tags = append(b.tags, builtTag{class: class, payload: payload})
	return TagID(uint32(idx) | (1 << 16))
}

func (b *mapBuilder) addNamedTag(class ClassCode, name string, payload []byte) TagID {
	idx := len(b.tags)
	b.tags = append(b.tags, builtTag{class: class, name: name, payload: payload})
	return TagID(uint32(idx) | (1 << 16))
}

// blobRegionOffset is a fixed offset reserved for raw reflexive
// sub-record data, independent of tag-table/name/payload layout, so
// addBlob can hand back a usable main-space pointer immediately.
const blobRegionOffset = 0x8000

// addBlob places an arbitrary raw byte slice (a reflexive's packed
// sub-record array) in the main address space and returns its pointer.
func (b *mapBuilder) addBlob(data []byte) uint32 {
	off := blobRegionOffset
	for _, existing := range b.blobs {
		off += len(existing)
	}
	b.blobs = append(b.blobs, data)
	return b.mainPtr(uint32(off))
}

func (b *mapBuilder) markNotInMap(id TagID) {
	b.tags[id.tableIndex()].notInMap = true
}

func (b *mapBuilder) mainMagic() uint32 {
	return uint32(metaMemoryOffset) - b.indexOffset
}

// mainPtr converts a planned buffer offset to a main-space pointer.
func (b *mapBuilder) mainPtr(offset uint32) uint32 {
	return b.mainMagic() + offset
}

// build lays out: header | index header | tag table | names | payloads.
func (b *mapBuilder) build() []byte {
	tagCount := uint32(len(b.tags))
	tagTableOffset := b.indexOffset + indexHeaderSize
	tagTableSize := tagCount * tagEntrySize
	namesOffset := tagTableOffset + tagTableSize

	// Lay out names first so payload offsets are computed after we
	// know total name bytes.
	nameOffsets := make([]uint32, tagCount)
	var names []byte
	for i, t := range b.tags {
		nameOffsets[i] = namesOffset + uint32(len(names))
		if t.name != "" {
			names = append(names, []byte(t.name)...)
		}
		names = append(names, 0)
	}

	payloadsOffset := namesOffset + uint32(len(names))
	payloadOffsets := make([]uint32, tagCount)
	var payloads []byte
	for i, t := range b.tags {
		payloadOffsets[i] = payloadsOffset + uint32(len(payloads))
		payloads = append(payloads, t.payload...)
	}

	total := payloadsOffset + uint32(len(payloads))

	var blobBytes []byte
	for _, blob := range b.blobs {
		blobBytes = append(blobBytes, blob...)
	}
	bufSize := total
	if len(b.blobs) > 0 && blobRegionOffset+uint32(len(blobBytes)) > bufSize {
		bufSize = blobRegionOffset + uint32(len(blobBytes))
	}
	buf := make([]byte, bufSize)

	// header
	binary.LittleEndian.PutUint32(buf[0x0:], integrityHead)
	binary.LittleEndian.PutUint32(buf[0x4:], b.version)
	binary.LittleEndian.PutUint32(buf[0x8:], total)
	binary.LittleEndian.PutUint32(buf[0xC:], b.indexOffset)
	binary.LittleEndian.PutUint32(buf[0x10:], 0)
	binary.LittleEndian.PutUint32(buf[0x1C:], integrityFoot)

	// index header
	tagIndexPtr := b.mainPtr(tagTableOffset)
	binary.LittleEndian.PutUint32(buf[b.indexOffset:], tagIndexPtr)
	binary.LittleEndian.PutUint32(buf[b.indexOffset+4:], uint32(b.scenario))
	binary.LittleEndian.PutUint32(buf[b.indexOffset+8:], tagCount)

	// tag table
	for i, t := range b.tags {
		off := tagTableOffset + uint32(i)*tagEntrySize
		binary.LittleEndian.PutUint32(buf[off+offClassPrimary:], uint32(t.class))
		binary.LittleEndian.PutUint32(buf[off+offNamePointer:], b.mainPtr(nameOffsets[i]))
		binary.LittleEndian.PutUint32(buf[off+offPayloadOffset:], b.mainPtr(payloadOffsets[i]))
		if t.notInMap {
			binary.LittleEndian.PutUint32(buf[off+offNotInMap:], 1)
		}
	}

	copy(buf[namesOffset:], names)
	copy(buf[payloadsOffset:], payloads)
	copy(buf[blobRegionOffset:], blobBytes)
	return buf
}

// --- small payload-encoding helpers shared by tests ---

func encU32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func encTagID(id TagID) []byte { return encU32(uint32(id)) }

func encReflexive(count, mainPtr uint32) []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[0:], count)
	binary.LittleEndian.PutUint32(b[4:], mainPtr)
	return b
}

func encDependency(mainClass ClassCode, id TagID) []byte {
	b := make([]byte, dependencySize)
	binary.LittleEndian.PutUint32(b[0:], uint32(mainClass))
	binary.LittleEndian.PutUint32(b[0x10:], uint32(id))
	return b
}

func padTo(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out, b)
	return out
}
