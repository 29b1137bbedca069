package mapimage

import (
	"encoding/binary"
	"os"
)

// Constants from the map format.
const (
	metaMemoryOffset  = 0x40440000
	matchingThreshold = 0.7
	maxTagNameSize    = 0x20
	haloCEVersion     = 609

	integrityHead = 0x68616564 // "deah" little-endian
	integrityFoot = 0x666f6f74 // "toof" little-endian

	headerSize      = 0x24 // integrity_head, version, length, index_offset, meta_size, ..., integrity_foot
	indexHeaderSize = 0xC  // tag_index_pointer, scenario_tag_id, tag_count
	tagEntrySize    = 0x20
)

// header mirrors the fixed-size structure at offset 0 of the map image.
type header struct {
	integrityHead uint32
	version       uint32
	length        uint32
	indexOffset   uint32
	metaSize      uint32
	integrityFoot uint32
}

func parseHeader(buf []byte) (header, bool) {
	if len(buf) < headerSize {
		return header{}, false
	}
	h := header{
		integrityHead: binary.LittleEndian.Uint32(buf[0x0:]),
		version:       binary.LittleEndian.Uint32(buf[0x4:]),
		length:        binary.LittleEndian.Uint32(buf[0x8:]),
		indexOffset:   binary.LittleEndian.Uint32(buf[0xC:]),
		metaSize:      binary.LittleEndian.Uint32(buf[0x10:]),
		integrityFoot: binary.LittleEndian.Uint32(buf[0x1C:]),
	}
	return h, true
}

// Handle is the caller-facing result of Open/OpenPath. A Handle with a
// non-nil Err still carries the original buffer, per the source
// contract: validation never discards the caller's data.
type Handle struct {
	Buf []byte
	Err error

	hdr         header
	indexOffset uint32
	tagIndexPtr uint32
	scenarioID  TagID
	tagCount    uint32
}

// Open validates a map image already loaded into memory. It never
// mutates buf.
func Open(buf []byte) *Handle {
	h := &Handle{Buf: buf}

	hdr, ok := parseHeader(buf)
	if !ok || hdr.integrityHead != integrityHead || hdr.integrityFoot != integrityFoot {
		h.Err = ErrInvalidHeader
		return h
	}
	h.hdr = hdr

	if uint64(hdr.indexOffset) > uint64(len(buf)) {
		h.Err = ErrInvalidIndexPointer
		return h
	}
	h.indexOffset = hdr.indexOffset

	if uint64(hdr.indexOffset)+indexHeaderSize > uint64(len(buf)) {
		h.Err = ErrInvalidIndexPointer
		return h
	}
	h.tagIndexPtr = binary.LittleEndian.Uint32(buf[hdr.indexOffset:])
	h.scenarioID = TagID(binary.LittleEndian.Uint32(buf[hdr.indexOffset+4:]))
	h.tagCount = binary.LittleEndian.Uint32(buf[hdr.indexOffset+8:])

	return h
}

// OpenPath reads the whole file at path and validates it as a map image.
func OpenPath(path string) (*Handle, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInvalidPath
	}
	return Open(buf), nil
}

// Save writes h's buffer verbatim to path.
func Save(path string, h *Handle) error {
	return os.WriteFile(path, h.Buf, 0o644)
}

func (h *Handle) isCE() bool {
	return h.hdr.version == haloCEVersion
}

func (h *Handle) mainMagic() int64 {
	return int64(metaMemoryOffset) - int64(h.indexOffset)
}
