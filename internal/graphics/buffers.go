package graphics

import (
	"fmt"

	"texcube/internal/mesh"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshBuffers holds the GPU copies of a mesh. Core profile needs a VAO to
// record attribute state, the four buffers are the actual data.
type MeshBuffers struct {
	VAO        uint32
	Position   uint32
	TexCoord   uint32
	Normal     uint32
	Index      uint32
	IndexCount int32
}

// InitBuffers uploads g once with STATIC_DRAW.
func InitBuffers(g mesh.Geometry) (*MeshBuffers, error) {
	b := &MeshBuffers{IndexCount: mesh.IndexCount}

	gl.GenVertexArrays(1, &b.VAO)
	if b.VAO == 0 {
		return nil, fmt.Errorf("failed to allocate vertex array")
	}
	gl.BindVertexArray(b.VAO)

	var ids [4]uint32
	gl.GenBuffers(int32(len(ids)), &ids[0])
	for _, id := range ids {
		if id == 0 {
			gl.BindVertexArray(0)
			gl.DeleteBuffers(int32(len(ids)), &ids[0])
			gl.DeleteVertexArrays(1, &b.VAO)
			return nil, fmt.Errorf("failed to allocate mesh buffers")
		}
	}
	b.Position, b.TexCoord, b.Normal, b.Index = ids[0], ids[1], ids[2], ids[3]

	gl.BindBuffer(gl.ARRAY_BUFFER, b.Position)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Positions)*4, gl.Ptr(&g.Positions[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.TexCoord)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.TexCoords)*4, gl.Ptr(&g.TexCoords[0]), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.Normal)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Normals)*4, gl.Ptr(&g.Normals[0]), gl.STATIC_DRAW)

	// the element binding is VAO state
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.Index)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*2, gl.Ptr(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return b, nil
}

// Dispose releases the VAO and buffers
func (b *MeshBuffers) Dispose() {
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
		b.VAO = 0
	}
	ids := [4]uint32{b.Position, b.TexCoord, b.Normal, b.Index}
	gl.DeleteBuffers(int32(len(ids)), &ids[0])
	b.Position, b.TexCoord, b.Normal, b.Index = 0, 0, 0, 0
}
