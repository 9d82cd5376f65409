// Package stl reads and writes STL meshes. Boxes are exported as 12
// triangle meshes, and a box can be fitted around an imported model.
package stl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/boxedit/pkg/geometry"
)

// Triangle is one facet of a mesh
type Triangle struct {
	Normal     mgl64.Vec3
	V1, V2, V3 mgl64.Vec3
}

// Area returns the area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Len() / 2
}

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the axis aligned bounds of the model. ok is false for an
// empty model.
func (m *Model) Bounds() (lo, hi mgl64.Vec3, ok bool) {
	if len(m.Triangles) == 0 {
		return lo, hi, false
	}
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, t := range m.Triangles {
		for _, v := range [3]mgl64.Vec3{t.V1, t.V2, t.V3} {
			for i := 0; i < 3; i++ {
				lo[i] = math.Min(lo[i], v[i])
				hi[i] = math.Max(hi[i], v[i])
			}
		}
	}
	return lo, hi, true
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// FitBox returns the axis aligned box around the model. With snap set the
// bounds are widened to the integer grid.
func (m *Model) FitBox(snap bool) (mgl64.Mat4, bool) {
	lo, hi, ok := m.Bounds()
	if !ok {
		return mgl64.Mat4{}, false
	}
	if snap {
		for i := 0; i < 3; i++ {
			lo[i] = math.Floor(lo[i])
			hi[i] = math.Ceil(hi[i])
		}
	}
	return geometry.FromCenterSize(lo.Add(hi).Mul(0.5), hi.Sub(lo)), true
}

// BoxModel builds the closed mesh of a box, two triangles per face with
// outward normals and counter-clockwise winding
func BoxModel(name string, box mgl64.Mat4) *Model {
	m := NewModel(name)
	for f := geometry.Face(0); f < geometry.FaceCount; f++ {
		plane := geometry.FacePlane(box, f)
		c := plane.Col(3).Vec3()
		u := plane.Col(0).Vec3()
		v := plane.Col(1).Vec3()
		n := geometry.FaceNormal(box, f)

		a := c.Sub(u).Sub(v)
		b := c.Add(u).Sub(v)
		d := c.Add(u).Add(v)
		e := c.Sub(u).Add(v)

		if b.Sub(a).Cross(d.Sub(a)).Dot(n) < 0 {
			// Mirrored pose
			b, e = e, b
		}
		m.AddTriangle(Triangle{Normal: n, V1: a, V2: b, V3: d})
		m.AddTriangle(Triangle{Normal: n, V1: a, V2: d, V3: e})
	}
	return m
}
