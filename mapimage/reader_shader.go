package mapimage

// Concrete shader payloads diverge sharply by subclass: some carry a
// flat run of known-class bitmap slots, others carry lens-flare
// references or reflexives of their own (maps, stage-maps, and a
// recursive "layers" list that re-discriminates through the shader
// family the same way visitShader does for any other shader
// reference). shaderLayerBase is the relative offset where each
// subclass's own field list starts, right after the discriminant byte.
const shaderLayerBase = 0x04

// shaderLayerRecord: a single shader TagID, re-discriminated
// recursively through visitShader.
const shaderLayerRecordSize = 4

// shaderMapRecord: a single known-class bitm reference.
const shaderMapRecordSize = 4

func visitShaderLayers(p *pass, r Reflexive) {
	p.eachReflexive(r, shaderLayerRecordSize, func(rec payload) {
		if id, ok := rec.tagID(0); ok {
			p.visitShader(id)
		}
	})
}

func visitShaderMaps(p *pass, r Reflexive) {
	p.eachReflexive(r, shaderMapRecordSize, func(rec payload) {
		if id, ok := rec.tagID(0); ok {
			p.visitKnown(id, classBitmap)
		}
	})
}

func ruleShaderConcrete(p *pass, _ TagID, pl payload, c ClassCode) {
	switch c {
	case class("senv"):
		ruleShaderSenv(p, pl)
	case class("soso"):
		ruleShaderSoso(p, pl)
	case class("sotr"):
		ruleShaderSotr(p, pl)
	case class("schi"):
		ruleShaderSchi(p, pl)
	case class("scex"):
		ruleShaderScex(p, pl)
	case class("swat"):
		ruleShaderSwat(p, pl)
	case class("sgla"):
		ruleShaderSgla(p, pl)
	case class("smet"):
		ruleShaderSmet(p, pl)
	case class("spla"):
		ruleShaderSpla(p, pl)
	}
}

// senv (environment shader): seven bitmap references and one
// lens-flare reference.
const (
	senvBaseMap            = shaderLayerBase + 0x00
	senvBumpMap            = shaderLayerBase + 0x04
	senvIlluminationMap    = shaderLayerBase + 0x08
	senvLensFlare          = shaderLayerBase + 0x0C
	senvMicroDetailMap     = shaderLayerBase + 0x10
	senvPrimaryDetailMap   = shaderLayerBase + 0x14
	senvSecondaryDetailMap = shaderLayerBase + 0x18
	senvReflectionCubeMap  = shaderLayerBase + 0x1C
)

func ruleShaderSenv(p *pass, pl payload) {
	for _, off := range []uint32{senvBaseMap, senvBumpMap, senvIlluminationMap, senvMicroDetailMap, senvPrimaryDetailMap, senvSecondaryDetailMap, senvReflectionCubeMap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
	if id, ok := pl.tagID(senvLensFlare); ok {
		p.visitKnown(id, classLens)
	}
}

// soso (model shader): four bitmap references.
const (
	sosoBaseMap    = shaderLayerBase + 0x00
	sosoDetailMap  = shaderLayerBase + 0x04
	sosoMultiMap   = shaderLayerBase + 0x08
	sosoReflectMap = shaderLayerBase + 0x0C
)

func ruleShaderSoso(p *pass, pl payload) {
	for _, off := range []uint32{sosoBaseMap, sosoDetailMap, sosoMultiMap, sosoReflectMap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
}

// sotr (transparent shader): a recursive reflexive of shader layers, a
// reflexive of bitmap maps, and one lens-flare reference.
const (
	sotrLayers    = shaderLayerBase + 0x00
	sotrMaps      = shaderLayerBase + 0x0C
	sotrLensFlare = shaderLayerBase + 0x18
)

func ruleShaderSotr(p *pass, pl payload) {
	visitShaderLayers(p, pl.reflexive(sotrLayers))
	visitShaderMaps(p, pl.reflexive(sotrMaps))
	if id, ok := pl.tagID(sotrLensFlare); ok {
		p.visitKnown(id, classLens)
	}
}

// schi (transparent chicago shader): same shape as sotr.
const (
	schiLayers    = shaderLayerBase + 0x00
	schiMaps      = shaderLayerBase + 0x0C
	schiLensFlare = shaderLayerBase + 0x18
)

func ruleShaderSchi(p *pass, pl payload) {
	visitShaderLayers(p, pl.reflexive(schiLayers))
	visitShaderMaps(p, pl.reflexive(schiMaps))
	if id, ok := pl.tagID(schiLensFlare); ok {
		p.visitKnown(id, classLens)
	}
}

// scex (transparent chicago extended shader): a recursive reflexive of
// shader layers, one lens-flare reference, and two independently
// counted bitmap-map reflexives (stage4maps, stage2maps).
const (
	scexLayers     = shaderLayerBase + 0x00
	scexLensFlare  = shaderLayerBase + 0x0C
	scexStage4Maps = shaderLayerBase + 0x10
	scexStage2Maps = shaderLayerBase + 0x1C
)

func ruleShaderScex(p *pass, pl payload) {
	visitShaderLayers(p, pl.reflexive(scexLayers))
	if id, ok := pl.tagID(scexLensFlare); ok {
		p.visitKnown(id, classLens)
	}
	visitShaderMaps(p, pl.reflexive(scexStage4Maps))
	visitShaderMaps(p, pl.reflexive(scexStage2Maps))
}

// swat (water shader): three bitmap references.
const (
	swatBaseMap       = shaderLayerBase + 0x00
	swatReflectionMap = shaderLayerBase + 0x04
	swatRippleMap     = shaderLayerBase + 0x08
)

func ruleShaderSwat(p *pass, pl payload) {
	for _, off := range []uint32{swatBaseMap, swatReflectionMap, swatRippleMap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
}

// sgla (glass shader): seven bitmap references. No lens flare and no
// recursion: unlike sotr/schi/scex, glass layers never reference
// another shader.
const (
	sglaBgTint            = shaderLayerBase + 0x00
	sglaBumpMap           = shaderLayerBase + 0x04
	sglaDiffuseDetailMap  = shaderLayerBase + 0x08
	sglaDiffuseMap        = shaderLayerBase + 0x0C
	sglaReflectionMap     = shaderLayerBase + 0x10
	sglaSpecularDetailMap = shaderLayerBase + 0x14
	sglaSpecularMap       = shaderLayerBase + 0x18
)

func ruleShaderSgla(p *pass, pl payload) {
	for _, off := range []uint32{sglaBgTint, sglaBumpMap, sglaDiffuseDetailMap, sglaDiffuseMap, sglaReflectionMap, sglaSpecularDetailMap, sglaSpecularMap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
}

// smet (meter shader): one bitmap reference.
const smetMap = shaderLayerBase + 0x00

func ruleShaderSmet(p *pass, pl payload) {
	if id, ok := pl.tagID(smetMap); ok {
		p.visitKnown(id, classBitmap)
	}
}

// spla (plasma shader): two bitmap references.
const (
	splaPrimaryNoiseMap   = shaderLayerBase + 0x00
	splaSecondaryNoiseMap = shaderLayerBase + 0x04
)

func ruleShaderSpla(p *pass, pl payload) {
	for _, off := range []uint32{splaPrimaryNoiseMap, splaSecondaryNoiseMap} {
		if id, ok := pl.tagID(off); ok {
			p.visitKnown(id, classBitmap)
		}
	}
}
