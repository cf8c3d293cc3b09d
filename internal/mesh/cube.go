package mesh

import "fmt"

const (
	Faces          = 6
	VertsPerFace   = 4
	VertexCount    = Faces * VertsPerFace // 24
	TrianglesCount = Faces * 2
	IndexCount     = TrianglesCount * 3 // 36
)

// Geometry is the unit cube with per-face vertices so every face gets its own normal.
type Geometry struct {
	Positions [VertexCount * 3]float32
	TexCoords [VertexCount * 2]float32
	Normals   [VertexCount * 3]float32
	Indices   [IndexCount]uint16
}

// Face order: front, back, top, bottom, right, left.
var facePositions = [Faces][VertsPerFace][3]float32{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1}},
	{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
	{{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
}

var faceNormals = [Faces][3]float32{
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
	{1, 0, 0},
	{-1, 0, 0},
}

var faceUV = [VertsPerFace][2]float32{
	{0, 0},
	{1, 0},
	{1, 1},
	{0, 1},
}

// Cube builds a fresh copy of the cube geometry.
func Cube() Geometry {
	var g Geometry
	for f := 0; f < Faces; f++ {
		for v := 0; v < VertsPerFace; v++ {
			i := f*VertsPerFace + v
			copy(g.Positions[i*3:i*3+3], facePositions[f][v][:])
			copy(g.Normals[i*3:i*3+3], faceNormals[f][:])
			copy(g.TexCoords[i*2:i*2+2], faceUV[v][:])
		}

		// two triangles per face: (0,1,2) and (0,2,3)
		base := uint16(f * VertsPerFace)
		quad := [6]uint16{base, base + 1, base + 2, base, base + 2, base + 3}
		copy(g.Indices[f*6:f*6+6], quad[:])
	}
	return g
}

// Validate checks the index range and that each face has one outward normal.
func (g *Geometry) Validate() error {
	for i, idx := range g.Indices {
		if int(idx) >= VertexCount {
			return fmt.Errorf("index %d out of range: %d", i, idx)
		}
	}

	for f := 0; f < Faces; f++ {
		first := f * VertsPerFace * 3
		n := g.Normals[first : first+3]
		for v := 0; v < VertsPerFace; v++ {
			i := (f*VertsPerFace + v) * 3
			if g.Normals[i] != n[0] || g.Normals[i+1] != n[1] || g.Normals[i+2] != n[2] {
				return fmt.Errorf("face %d: normal of vertex %d differs from face normal", f, v)
			}
			// every vertex of an outward face satisfies n·p == 1 on the unit cube
			dot := n[0]*g.Positions[i] + n[1]*g.Positions[i+1] + n[2]*g.Positions[i+2]
			if dot != 1 {
				return fmt.Errorf("face %d: vertex %d not on the face plane (n·p = %v)", f, v, dot)
			}
		}
	}
	return nil
}
