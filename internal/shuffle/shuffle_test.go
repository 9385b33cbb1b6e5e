package shuffle

import (
	"reflect"
	"testing"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestShuffle_DeterministicForEqualSeeds(t *testing.T) {
	in := intRange(20)
	a := Shuffle(in, New(42))
	b := Shuffle(in, New(42))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different orders:\n%v\n%v", a, b)
	}
}

func TestShuffle_DifferentSeedsDiffer(t *testing.T) {
	in := intRange(20)
	a := Shuffle(in, New(42))
	b := Shuffle(in, New(43))
	if reflect.DeepEqual(a, b) {
		t.Error("seeds 42 and 43 produced identical orders for 20 elements")
	}
}

func TestShuffle_InputUntouched(t *testing.T) {
	in := intRange(10)
	orig := intRange(10)
	Shuffle(in, New(7))
	if !reflect.DeepEqual(in, orig) {
		t.Errorf("input mutated: %v", in)
	}
}

func TestShuffle_PreservesElements(t *testing.T) {
	in := intRange(50)
	out := Shuffle(in, New(99))
	seen := make(map[int]bool)
	for _, v := range out {
		seen[v] = true
	}
	if len(seen) != 50 {
		t.Errorf("output has %d distinct elements, want 50", len(seen))
	}
}

func TestSample_Clamps(t *testing.T) {
	in := intRange(5)
	if got := Sample(in, 10, New(1)); len(got) != 5 {
		t.Errorf("Sample(n=10) returned %d elements, want 5", len(got))
	}
	if got := Sample(in, 3, New(1)); len(got) != 3 {
		t.Errorf("Sample(n=3) returned %d elements, want 3", len(got))
	}
	if got := Sample(in, 0, New(1)); len(got) != 5 {
		t.Errorf("Sample(n=0) returned %d elements, want 5", len(got))
	}
}

func TestPermApplyRemap(t *testing.T) {
	choices := []string{"alpha", "beta", "gamma", "delta"}
	perm := Perm(len(choices), New(1234))

	permuted := Apply(choices, perm)

	// Whatever landed at the remapped index must be the original text.
	for oldIdx, text := range choices {
		newIdx := Remap(oldIdx, perm)
		if newIdx < 0 {
			t.Fatalf("Remap(%d) = -1", oldIdx)
		}
		if permuted[newIdx] != text {
			t.Errorf("permuted[%d] = %q, want %q", newIdx, permuted[newIdx], text)
		}
	}
}

func TestRemap_OutOfRange(t *testing.T) {
	if got := Remap(9, []int{0, 1, 2}); got != -1 {
		t.Errorf("Remap(9) = %d, want -1", got)
	}
}

func TestNewRandom_SeedsDiffer(t *testing.T) {
	a := NewRandom().Int63()
	b := NewRandom().Int63()
	if a == b {
		t.Error("two unseeded generators produced the same first value")
	}
}

func TestFloat64_Range(t *testing.T) {
	rng := New(5)
	for i := 0; i < 1000; i++ {
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", f)
		}
	}
}
