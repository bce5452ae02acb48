package universe

import (
	"errors"
	"testing"
)

func gen(cells ...Cell) Generation {
	return Generation(cells)
}

func equalGenerations(a, b Generation) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInitialize(t *testing.T) {
	for _, size := range []int{1, 2, 5, 50, 333} {
		g, err := Initialize(size)
		if err != nil {
			t.Fatalf("size %d: unexpected error %v", size, err)
		}
		if len(g) != size {
			t.Fatalf("size %d: got length %d", size, len(g))
		}
		if g[size-1] != Live {
			t.Fatalf("size %d: last cell is dead", size)
		}
		if g.LiveCells() != 1 {
			t.Fatalf("size %d: got %d live cells, expected 1", size, g.LiveCells())
		}
	}
}

func TestInitializeInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -50} {
		if _, err := Initialize(size); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: got %v, expected ErrInvalidSize", size, err)
		}
	}
}

func TestRuleTable(t *testing.T) {
	cases := []struct {
		l, c, r Cell
		want    Cell
	}{
		{1, 1, 1, 0},
		{1, 1, 0, 1},
		{1, 0, 1, 1},
		{1, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		if got := Rule110(tc.l, tc.c, tc.r); got != tc.want {
			t.Errorf("%d%d%d -> %d, expected %d", tc.l, tc.c, tc.r, got, tc.want)
		}
		//the same triplet placed in the middle of a generation
		g := gen(0, tc.l, tc.c, tc.r, 0)
		if got := Step(g)[2]; got != tc.want {
			t.Errorf("step at interior %d%d%d -> %d, expected %d", tc.l, tc.c, tc.r, got, tc.want)
		}
	}
}

func TestRuleTableIsRule110(t *testing.T) {
	var code uint8
	for p, v := range RuleTable {
		code |= uint8(v) << uint(p)
	}
	if code != 110 {
		t.Fatalf("rule table encodes rule %d", code)
	}
}

func TestStep(t *testing.T) {
	cases := []struct {
		name string
		in   Generation
		want Generation
	}{
		{"size 5 seed", gen(0, 0, 0, 0, 1), gen(0, 0, 0, 1, 1)},
		{"size 5 second step", gen(0, 0, 0, 1, 1), gen(0, 0, 1, 1, 1)},
		{"single cell", gen(1), gen(1)},
		{"single dead cell", gen(0), gen(0)},
		{"all live", gen(1, 1, 1, 1), gen(1, 0, 0, 1)},
		{"empty", gen(), gen()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in.Clone()
			got := Step(tc.in)
			if !equalGenerations(got, tc.want) {
				t.Fatalf("got %v, expected %v", got, tc.want)
			}
			if !equalGenerations(tc.in, in) {
				t.Fatalf("input modified: %v, was %v", tc.in, in)
			}
		})
	}
}

func TestStepDeterministic(t *testing.T) {
	g, _ := Initialize(64)
	for i := 0; i < 40; i++ {
		a, b := Step(g), Step(g)
		if !equalGenerations(a, b) {
			t.Fatalf("step %d: %v != %v", i, a, b)
		}
		g = a
	}
}

func TestStepLocality(t *testing.T) {
	base, _ := Initialize(30)
	for i := 0; i < 20; i++ {
		base = Step(base)
	}
	want := Step(base)
	//flipping cell j may only change cells j-1, j and j+1 of the next generation
	for j := range base {
		flipped := base.Clone()
		flipped[j] ^= Live
		got := Step(flipped)
		for i := range got {
			if i >= j-1 && i <= j+1 {
				continue
			}
			if got[i] != want[i] {
				t.Fatalf("flipping cell %d changed cell %d", j, i)
			}
		}
	}
}

func TestStepIntoMatchesStep(t *testing.T) {
	cur, _ := Initialize(50)
	buf := make(Generation, len(cur))
	ref := cur.Clone()
	for i := 0; i < 50; i++ {
		StepInto(buf, cur)
		ref = Step(ref)
		if !equalGenerations(buf, ref) {
			t.Fatalf("generation %d differs: %v != %v", i+1, buf, ref)
		}
		cur, buf = buf, cur
	}
}
