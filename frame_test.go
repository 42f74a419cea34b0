package nodal

import "testing"

// mapUnit applies a primitive transform to a corner of the unit square.
func mapUnit(tr [6]float64, x, y float64) Vec2 {
	px, py := transformPoint(tr, x, y)
	return Vec2{px, py}
}

func TestFrameFillRect(t *testing.T) {
	f := NewFrame(Vec2{800, 600})
	f.FillRect(Rect{10, 20, 30, 40}, ColorWhite)

	geo := f.Geometry()
	if len(geo.Primitives) != 1 {
		t.Fatalf("got %d primitives, want 1", len(geo.Primitives))
	}
	p := geo.Primitives[0]
	if p.Color != ColorWhite {
		t.Errorf("color = %v", p.Color)
	}
	if got := mapUnit(p.Transform, 0, 0); !approxVec(got, Vec2{10, 20}, epsilon) {
		t.Errorf("top-left maps to %v", got)
	}
	if got := mapUnit(p.Transform, 1, 1); !approxVec(got, Vec2{40, 60}, epsilon) {
		t.Errorf("bottom-right maps to %v", got)
	}
}

func TestFrameTransformComposition(t *testing.T) {
	f := NewFrame(Vec2{800, 600})
	f.Translate(Vec2{100, 50})
	f.Scale(2)
	f.FillRect(Rect{10, 10, 20, 20}, ColorBlack)

	// Local coordinates are scaled first, then translated.
	p := f.Geometry().Primitives[0]
	if got := mapUnit(p.Transform, 0, 0); !approxVec(got, Vec2{120, 70}, epsilon) {
		t.Errorf("top-left maps to %v, want (120, 70)", got)
	}
	if got := mapUnit(p.Transform, 1, 1); !approxVec(got, Vec2{160, 110}, epsilon) {
		t.Errorf("bottom-right maps to %v, want (160, 110)", got)
	}
}

func TestFrameTransformAffectsOnlyLaterDraws(t *testing.T) {
	f := NewFrame(Vec2{800, 600})
	f.FillRect(Rect{0, 0, 1, 1}, ColorWhite)
	f.Translate(Vec2{500, 0})
	f.FillRect(Rect{0, 0, 1, 1}, ColorWhite)

	prims := f.Geometry().Primitives
	if got := mapUnit(prims[0].Transform, 0, 0); !approxVec(got, Vec2{0, 0}, epsilon) {
		t.Errorf("first quad moved to %v", got)
	}
	if got := mapUnit(prims[1].Transform, 0, 0); !approxVec(got, Vec2{500, 0}, epsilon) {
		t.Errorf("second quad at %v, want (500, 0)", got)
	}
}

func TestFrameStrokeRect(t *testing.T) {
	f := NewFrame(Vec2{800, 600})
	f.StrokeRect(Rect{0, 0, 100, 100}, ColorWhite, 4)

	prims := f.Geometry().Primitives
	if len(prims) != 4 {
		t.Fatalf("got %d primitives, want 4", len(prims))
	}

	// Edge quads centered on the rectangle's edges, corners covered once.
	want := []Rect{
		{-2, -2, 104, 4}, // top
		{-2, 98, 104, 4}, // bottom
		{-2, 2, 4, 96},   // left
		{98, 2, 4, 96},   // right
	}
	for i, w := range want {
		tl := mapUnit(prims[i].Transform, 0, 0)
		br := mapUnit(prims[i].Transform, 1, 1)
		if !approxVec(tl, Vec2{w.X, w.Y}, epsilon) || !approxVec(br, Vec2{w.X + w.Width, w.Y + w.Height}, epsilon) {
			t.Errorf("edge %d spans %v to %v, want %+v", i, tl, br, w)
		}
	}
}

func TestFrameLine(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		width    float64
		tl, br   Vec2 // unit-square corners (0,0) and (1,1) in surface space
	}{
		{"horizontal", Vec2{0, 0}, Vec2{100, 0}, 10, Vec2{0, -5}, Vec2{100, 5}},
		{"vertical", Vec2{0, 0}, Vec2{0, 50}, 10, Vec2{5, 0}, Vec2{-5, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(Vec2{800, 600})
			f.Line(tt.from, tt.to, ColorWhite, tt.width)

			prims := f.Geometry().Primitives
			if len(prims) != 1 {
				t.Fatalf("got %d primitives, want 1", len(prims))
			}
			if got := mapUnit(prims[0].Transform, 0, 0); !approxVec(got, tt.tl, epsilon) {
				t.Errorf("corner (0,0) maps to %v, want %v", got, tt.tl)
			}
			if got := mapUnit(prims[0].Transform, 1, 1); !approxVec(got, tt.br, epsilon) {
				t.Errorf("corner (1,1) maps to %v, want %v", got, tt.br)
			}
		})
	}
}

func TestFrameLineZeroLength(t *testing.T) {
	f := NewFrame(Vec2{800, 600})
	f.Line(Vec2{5, 5}, Vec2{5, 5}, ColorWhite, 10)
	if len(f.Geometry().Primitives) != 0 {
		t.Error("zero-length line emitted geometry")
	}
}
