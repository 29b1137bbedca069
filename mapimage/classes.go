package mapimage

import "encoding/binary"

// ClassCode is a four-byte tag-class literal (e.g. "scnr", "bipd"),
// compared as an opaque 32-bit value and never parsed as text.
type ClassCode uint32

func class(ascii string) ClassCode {
	if len(ascii) != 4 {
		panic("mapimage: class code must be 4 bytes: " + ascii)
	}
	return ClassCode(binary.LittleEndian.Uint32([]byte(ascii)))
}

// Root and single-instance classes.
var (
	classScenario = class("scnr")
	classGlobals  = class("matg")
)

// Object-family concrete classes, indexed by the discriminant byte
// stored in an obje payload's type field.
var objectClassByType = [12]ClassCode{
	0x0: class("bipd"),
	0x1: class("vehi"),
	0x2: class("weap"),
	0x3: class("eqip"),
	0x4: class("garb"),
	0x5: class("proj"),
	0x6: class("scen"),
	0x7: class("mach"),
	0x8: class("ctrl"),
	0x9: class("lifi"),
	0xA: class("plac"),
	0xB: class("ssce"),
}

// Shader-family concrete classes, indexed by the discriminant byte
// stored at the start of a shader payload. Discriminants 0-2 are
// reclassified to the generic shdr class and not walked further.
var shaderClassByType = [12]ClassCode{
	0x0: classShaderGeneric,
	0x1: classShaderGeneric,
	0x2: classShaderGeneric,
	0x3: class("senv"),
	0x4: class("soso"),
	0x5: class("sotr"),
	0x6: class("schi"),
	0x7: class("scex"),
	0x8: class("swat"),
	0x9: class("sgla"),
	0xA: class("smet"),
	0xB: class("spla"),
}

var classShaderGeneric = class("shdr")

var (
	classLens        = class("lens")
	classPhysics     = class("phys")
	classEffect      = class("effe")
	classParticle    = class("part")
	classFootImpact  = class("foot")
	classCollision   = class("coll")
	classModel       = class("mod2")
	classAnimation   = class("antr")
	classDamage      = class("jpt!")
	classBitmap      = class("bitm")
	classSound       = class("snd ")
	classWeaponHUD   = class("wphi")
	classUnitHUD     = class("unhi")
	classGrenadeHUD  = class("grhi")
	classHUDDigits   = class("hud#")
	classHUDGlobals  = class("hudg")
	classFont        = class("font")
	classDecal       = class("deca")
	classSky         = class("sky ")
	classItemColl    = class("itmc")
	classBSP         = class("sbsp")
	classActorVar    = class("actv")
	classCameraTrack = class("trak")
	classColorTable  = class("colo")
	classStringList  = class("str#")
	classUnicodeStr  = class("ustr")
	classHUDMessage  = class("hmt ")
	classLocaliz     = class("loca")
)

// nonDeprotectable lists classes the engine never writes, even when a
// reference site carries them. They belong to earlier passes of the
// tool chain and their payloads are not modeled by any reader here.
var nonDeprotectable = map[ClassCode]bool{
	class("devc"): true,
	classGlobals:  true,
	class("dela"): true,
	class("soul"): true,
	class("tagc"): true,
	classUnicodeStr: true,
}

// autoGeneric lists classes the (out-of-scope) name-synthesis pass
// treats as exempt from fuzzy cross-map matching. The traversal engine
// treats them identically to every other class; this set exists only
// so rename.go can consult it.
var autoGeneric = map[ClassCode]bool{
	classBitmap:     true,
	classHUDGlobals: true,
	classSound:      true,
	classBSP:        true,
	classScenario:   true,
	classItemColl:   true,
	classFont:       true,
}

func isObjectFamily(c ClassCode) bool {
	for _, oc := range objectClassByType {
		if oc == c {
			return true
		}
	}
	return false
}
