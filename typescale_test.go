package tokens

import "testing"

func TestGenerateTypeScale(t *testing.T) {
	steps := GenerateTypeScale(16, MajorThird)
	want := []struct {
		name string
		px   float64
	}{
		{"xs", 10.24},
		{"sm", 12.8},
		{"base", 16},
		{"lg", 20},
		{"xl", 25},
		{"2xl", 31.25},
		{"3xl", 39.06},
		{"4xl", 48.83},
		{"5xl", 61.04},
	}
	if len(steps) != len(want) {
		t.Fatalf("len = %d, want %d", len(steps), len(want))
	}
	for i, w := range want {
		if steps[i].Name != w.name || !floatNear(steps[i].Px, w.px, 1e-9) {
			t.Errorf("step %d = %+v, want %s %vpx", i, steps[i], w.name, w.px)
		}
	}
	if steps[2].Rem != 1 {
		t.Errorf("base rem = %v, want 1", steps[2].Rem)
	}
}

func TestGenerateTypeScaleDefaults(t *testing.T) {
	got := GenerateTypeScale(-1, 0)
	want := GenerateTypeScale(DefaultTypeBase, MajorThird)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
