package nodal

import "github.com/hajimehoshi/ebiten/v2"

// RenderGeometry submits geometry layers to dst in order. Each primitive
// becomes one DrawImage of WhitePixel with the primitive's affine as GeoM
// and its color applied premultiplied.
func RenderGeometry(dst *ebiten.Image, layers []Geometry) {
	var op ebiten.DrawImageOptions

	for _, layer := range layers {
		for i := range layer.Primitives {
			p := &layer.Primitives[i]

			op.GeoM = primitiveGeoM(p)
			op.ColorScale.Reset()
			a := float32(p.Color.A)
			op.ColorScale.Scale(float32(p.Color.R)*a, float32(p.Color.G)*a, float32(p.Color.B)*a, a)

			dst.DrawImage(WhitePixel, &op)
		}
	}
}

// primitiveGeoM converts a primitive's affine matrix to an ebiten.GeoM.
func primitiveGeoM(p *Primitive) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, p.Transform[0])
	m.SetElement(1, 0, p.Transform[1])
	m.SetElement(0, 1, p.Transform[2])
	m.SetElement(1, 1, p.Transform[3])
	m.SetElement(0, 2, p.Transform[4])
	m.SetElement(1, 2, p.Transform[5])
	return m
}
