// Package export renders decoded block changes as external artifacts a
// viewer can open, replacing the interactive rendering surface the decoder
// deliberately does not carry.
package export

import (
	"github.com/cespare/xxhash/v2"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/diamondpixel/Chunkis/cis"
)

// cube face corner offsets and flat normals, one quad per face.
var cubeFaces = [6]struct {
	normal  [3]float32
	corners [4][3]float32
}{
	{normal: [3]float32{1, 0, 0}, corners: [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{normal: [3]float32{-1, 0, 0}, corners: [4][3]float32{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}},
	{normal: [3]float32{0, 1, 0}, corners: [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{normal: [3]float32{0, -1, 0}, corners: [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{normal: [3]float32{0, 0, 1}, corners: [4][3]float32{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1}}},
	{normal: [3]float32{0, 0, -1}, corners: [4][3]float32{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

// BuildGLB assembles a cube-per-block mesh document from block changes.
// Cubes are colored deterministically from their state string, so one state
// renders identically across chunks and exports.
func BuildGLB(blocks []cis.BlockChange) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "cisctl CIS -> GLB"
	if len(blocks) == 0 {
		return doc
	}

	positions := make([][3]float32, 0, len(blocks)*24)
	normals := make([][3]float32, 0, len(blocks)*24)
	colors := make([][4]float32, 0, len(blocks)*24)
	indices := make([]uint32, 0, len(blocks)*36)

	for _, b := range blocks {
		rgba := stateColor(b.State)
		for _, face := range cubeFaces {
			base := uint32(len(positions))
			for _, c := range face.corners {
				positions = append(positions, [3]float32{
					float32(b.X) + c[0],
					float32(b.Y) + c[1],
					float32(b.Z) + c[2],
				})
				normals = append(normals, face.normal)
				colors = append(colors, rgba)
			}
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices: gltf.Index(uint32(indicesAccessor)),
	}

	material := &gltf.Material{
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		AlphaMode: gltf.AlphaOpaque,
	}
	doc.Materials = []*gltf.Material{material}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "BlockChanges", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))

	return doc
}

// SaveGLB writes blocks as a binary glTF file at path.
func SaveGLB(blocks []cis.BlockChange, path string) error {
	return gltf.SaveBinary(BuildGLB(blocks), path)
}

// stateColor derives a stable opaque color from a state string's hash.
func stateColor(state string) [4]float32 {
	h := xxhash.Sum64String(state)
	return [4]float32{
		float32(h&0xFF) / 255,
		float32(h>>8&0xFF) / 255,
		float32(h>>16&0xFF) / 255,
		1,
	}
}
