package color

import (
	"math/rand"
	"testing"
)

func newTestResolver() *Resolver {
	return NewResolver(rand.New(rand.NewSource(1)))
}

func TestScaled(t *testing.T) {
	c := RGB{R: 254, G: 128, B: 2}

	got := c.Scaled(50)
	want := RGB{R: 127, G: 64, B: 1}
	if got != want {
		t.Errorf("Scaled(50) = %v, want %v", got, want)
	}

	if c.Scaled(100) != c {
		t.Errorf("Scaled(100) should be identity, got %v", c.Scaled(100))
	}
	if c.Scaled(0) != (RGB{}) {
		t.Errorf("Scaled(0) should be black, got %v", c.Scaled(0))
	}
}

func TestDimmed(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 51}
	got := c.Dimmed(2)
	want := RGB{R: 100, G: 50, B: 25}
	if got != want {
		t.Errorf("Dimmed(2) = %v, want %v", got, want)
	}
}

func TestClampGroup(t *testing.T) {
	if got := ClampGroup(Group(-5)); got != GroupCustom {
		t.Errorf("ClampGroup(-5) = %v, want GroupCustom", got)
	}
	if got := ClampGroup(Group(99)); got != GroupAll {
		t.Errorf("ClampGroup(99) = %v, want GroupAll", got)
	}
	if got := ClampGroup(GroupFire); got != GroupFire {
		t.Errorf("ClampGroup(GroupFire) = %v, want GroupFire", got)
	}
}

func TestParseGroup_Roundtrip(t *testing.T) {
	for g := GroupCustom; g <= GroupAll; g++ {
		got, ok := ParseGroup(g.String())
		if !ok || got != g {
			t.Errorf("ParseGroup(%q) = %v, %v", g.String(), got, ok)
		}
	}
	if _, ok := ParseGroup("lava"); ok {
		t.Error("ParseGroup accepted an unknown name")
	}
}

func TestResolve_PresetCopies(t *testing.T) {
	r := newTestResolver()

	p := r.Resolve(GroupRGB)
	if p.Count != 3 {
		t.Fatalf("rgb palette count = %d, want 3", p.Count)
	}
	want := []RGB{{R: 255}, {G: 255}, {B: 255}}
	for i, c := range want {
		if p.At(i) != c {
			t.Errorf("rgb palette[%d] = %v, want %v", i, p.At(i), c)
		}
	}
}

func TestResolve_EveryPresetNonEmpty(t *testing.T) {
	r := newTestResolver()
	for g := GroupWater; g <= GroupSevenColor; g++ {
		p := r.Resolve(g)
		if p.Count == 0 {
			t.Errorf("group %v resolved to an empty palette", g)
		}
		if p.Count > PaletteSize {
			t.Errorf("group %v count %d exceeds capacity", g, p.Count)
		}
	}
}

func TestResolve_CustomSnapshot(t *testing.T) {
	r := newTestResolver()

	p := r.Resolve(GroupCustom)
	if p.Count != 2 {
		t.Fatalf("factory custom count = %d, want 2", p.Count)
	}
	if p.At(0) != (RGB{G: 255}) {
		t.Errorf("factory custom[0] = %v, want green", p.At(0))
	}

	// Edits after the snapshot must not leak into it
	r.SetCustomColor(0, RGB{R: 9})
	if p.At(0) != (RGB{G: 255}) {
		t.Error("palette snapshot changed after a later custom edit")
	}

	// A fresh resolve sees the edit
	if r.Resolve(GroupCustom).At(0) != (RGB{R: 9}) {
		t.Error("fresh resolve missed the custom edit")
	}
}

func TestResolve_AllIsRandomized(t *testing.T) {
	r := newTestResolver()

	p1 := r.Resolve(GroupAll)
	p2 := r.Resolve(GroupAll)

	if p1.Count != PaletteSize || p2.Count != PaletteSize {
		t.Fatalf("all palette counts = %d, %d, want %d", p1.Count, p2.Count, PaletteSize)
	}
	if p1.Colors == p2.Colors {
		t.Error("consecutive all resolves returned identical colors")
	}
}

func TestResolve_ClampsUnknownGroup(t *testing.T) {
	r := newTestResolver()
	p := r.Resolve(Group(99))
	if p.Count != PaletteSize {
		t.Errorf("out-of-range group should clamp to all, got count %d", p.Count)
	}
}

func TestSetCustomColor_Bounds(t *testing.T) {
	r := newTestResolver()
	if r.SetCustomColor(-1, RGB{}) {
		t.Error("negative index accepted")
	}
	if r.SetCustomColor(PaletteSize, RGB{}) {
		t.Error("index at capacity accepted")
	}
	if !r.SetCustomColor(PaletteSize-1, RGB{R: 1}) {
		t.Error("last slot rejected")
	}
}

func TestSetCustomCount_Bounds(t *testing.T) {
	r := newTestResolver()
	if r.SetCustomCount(0) {
		t.Error("zero count accepted")
	}
	if r.SetCustomCount(PaletteSize + 1) {
		t.Error("over-capacity count accepted")
	}
	if !r.SetCustomCount(PaletteSize) {
		t.Error("full-capacity count rejected")
	}
	if r.CustomCount() != PaletteSize {
		t.Errorf("count = %d, want %d", r.CustomCount(), PaletteSize)
	}
}

func TestPaletteAt_OutOfRangeIsBlack(t *testing.T) {
	p := Palette{Count: 2}
	if p.At(-1) != (RGB{}) || p.At(PaletteSize) != (RGB{}) {
		t.Error("out-of-range At should return black")
	}
}
