package engine

import (
	"slices"
	"testing"
)

func TestMaskFromRows(t *testing.T) {
	m := MaskFromRows(
		"#..",
		".##",
	)
	if m.W != 3 || m.H != 2 {
		t.Fatalf("Expected 3x2 mask, got %dx%d", m.W, m.H)
	}
	if !m.At(0, 0) || m.At(1, 0) || !m.At(1, 1) || !m.At(2, 1) {
		t.Errorf("Unexpected cells: %v", m.Rows())
	}
	if m.At(-1, 0) || m.At(3, 0) || m.At(0, 2) {
		t.Error("At outside the box should be false")
	}
	if m.Count() != 3 {
		t.Errorf("Expected 3 set cells, got %d", m.Count())
	}
}

func TestMaskTransforms(t *testing.T) {
	m := MaskFromRows(
		"##.",
		"#..",
	)

	tests := []struct {
		name string
		got  Mask
		want []string
	}{
		{"transpose", m.Transpose(), []string{"##", "#.", ".."}},
		{"reverse rows", m.ReverseRows(), []string{".##", "..#"}},
		{"reverse columns", m.ReverseColumns(), []string{"#..", "##."}},
		{"rotate cw", m.RotateCW(), []string{"##", ".#", ".."}},
		{"rotate ccw", m.RotateCCW(), []string{"..", "#.", "##"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.Rows(); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaskFourTurnsIsIdentity(t *testing.T) {
	for _, id := range AllShapes() {
		m := LookupShape(id).Mask
		cw, ccw := m, m
		for i := 0; i < 4; i++ {
			cw = cw.RotateCW()
			ccw = ccw.RotateCCW()
		}
		if cw != m {
			t.Errorf("%v: four clockwise turns changed mask: %v", id, cw.Rows())
		}
		if ccw != m {
			t.Errorf("%v: four counter-clockwise turns changed mask: %v", id, ccw.Rows())
		}
	}
}

func TestMaskEachOrder(t *testing.T) {
	m := MaskFromRows(
		".#",
		"#.",
	)
	var got [][2]int
	m.Each(func(col, row int) {
		got = append(got, [2]int{col, row})
	})
	want := [][2]int{{1, 0}, {0, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Each visited %v, want %v", got, want)
	}
}

func TestMaskFromRowsTooLarge(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for a 5x4 mask")
		}
	}()
	MaskFromRows(".....", ".....", ".....", ".....")
}
