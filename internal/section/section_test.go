package section

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRectangleProperties(t *testing.T) {
	props := Rectangle("r", 300, 500).CalculateProperties()

	if props.Area != 150000 {
		t.Errorf("area = %f, want 150000", props.Area)
	}
	if props.CentroidX != 150 || props.CentroidY != 250 {
		t.Errorf("centroid = (%f, %f), want (150, 250)", props.CentroidX, props.CentroidY)
	}
	wantIx := 300 * math.Pow(500, 3) / 12
	if math.Abs(props.Ix-wantIx)/wantIx > 1e-12 {
		t.Errorf("Ix = %f, want %f", props.Ix, wantIx)
	}
	wantIy := 500 * math.Pow(300, 3) / 12
	if math.Abs(props.Iy-wantIy)/wantIy > 1e-12 {
		t.Errorf("Iy = %f, want %f", props.Iy, wantIy)
	}
	top, bottom := props.SectionModulus()
	if math.Abs(top-bottom) > 1e-6 {
		t.Errorf("section moduli differ for symmetric section: %f vs %f", top, bottom)
	}
}

func TestClockwiseVertices(t *testing.T) {
	s := &Section{Vertices: []Point{{0, 0}, {0, 200}, {100, 200}, {100, 0}}}
	props := s.CalculateProperties()
	if props.Area != 20000 {
		t.Errorf("area = %f, want 20000", props.Area)
	}
	want := 100 * math.Pow(200, 3) / 12
	if math.Abs(props.Ix-want)/want > 1e-12 {
		t.Errorf("Ix = %f, want %f", props.Ix, want)
	}
}

func TestTeeSection(t *testing.T) {
	// 600 x 100 flange on a 200 x 400 web.
	s := &Section{Vertices: []Point{
		{200, 0}, {400, 0}, {400, 400}, {600, 400},
		{600, 500}, {0, 500}, {0, 400}, {200, 400},
	}}
	props := s.CalculateProperties()

	aw, af := 200.0*400, 600.0*100
	yw, yf := 200.0, 450.0
	area := aw + af
	cy := (aw*yw + af*yf) / area
	ix := 200*math.Pow(400, 3)/12 + aw*math.Pow(yw-cy, 2) +
		600*math.Pow(100, 3)/12 + af*math.Pow(yf-cy, 2)

	if math.Abs(props.Area-area) > 1e-6 {
		t.Errorf("area = %f, want %f", props.Area, area)
	}
	if math.Abs(props.CentroidY-cy) > 1e-9 {
		t.Errorf("centroid y = %f, want %f", props.CentroidY, cy)
	}
	if math.Abs(props.Ix-ix)/ix > 1e-9 {
		t.Errorf("Ix = %f, want %f", props.Ix, ix)
	}
}

func TestSIConversion(t *testing.T) {
	props := Rectangle("r", 1000, 1200).CalculateProperties()
	if math.Abs(props.AreaSI()-1.2) > 1e-12 {
		t.Errorf("AreaSI = %f, want 1.2", props.AreaSI())
	}
	if math.Abs(props.InertiaSI()-0.144) > 1e-12 {
		t.Errorf("InertiaSI = %f, want 0.144", props.InertiaSI())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Section
	}{
		{"too few vertices", Section{Vertices: []Point{{0, 0}, {1, 1}}}},
		{"collinear", Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}},
		{"repeated vertex", Section{Vertices: []Point{{0, 0}, {1, 0}, {1, 0}, {0, 1}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *ValidationError
			if err := tt.s.Validate(); !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
	if err := Rectangle("ok", 1, 1).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"box.json": `{"name": "box", "vertices": [{"x": 0, "y": 0}, {"x": 100, "y": 0}, {"x": 100, "y": 50}, {"x": 0, "y": 50}]}`,
		"box.yaml": "name: box\nvertices:\n  - {x: 0, y: 0}\n  - {x: 100, y: 0}\n  - {x: 100, y: 50}\n  - {x: 0, y: 50}\n",
		"box.toml": "name = \"box\"\n\n[[vertices]]\nx = 0.0\ny = 0.0\n\n[[vertices]]\nx = 100.0\ny = 0.0\n\n[[vertices]]\nx = 100.0\ny = 50.0\n\n[[vertices]]\nx = 0.0\ny = 50.0\n",
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Name != "box" || len(s.Vertices) != 4 {
			t.Errorf("%s: unexpected section %+v", name, s)
		}
		if got := s.CalculateProperties().Area; got != 5000 {
			t.Errorf("%s: area = %f, want 5000", name, got)
		}
	}

	bad := filepath.Join(dir, "box.txt")
	os.WriteFile(bad, []byte("x"), 0o644)
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
