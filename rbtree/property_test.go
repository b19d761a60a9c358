package rbtree

import (
	"math/bits"
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./rbtree -run TestTreeRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./rbtree -run '^$' -fuzz FuzzTreeRandomizedProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./rbtree -run 'FuzzTreeRandomizedProperty/<id>'

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model map[int]bool) {
	t.Helper()

	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}

	want := make([]int, 0, len(model))
	for k := range model {
		want = append(want, k)
	}
	slices.Sort(want)
	got := collectInts(tree)
	if len(got) != len(want) {
		t.Fatalf("model length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("model mismatch at %d: got=%d want=%d", i, got[i], want[i])
		}
	}

	if tree.Len() != len(want) {
		t.Fatalf("Len mismatch: got=%d want=%d", tree.Len(), len(want))
	}
	if limit := 2 * bits.Len(uint(len(want)+1)); tree.Depth() > limit {
		t.Fatalf("depth %d exceeds red-black bound %d for %d elements",
			tree.Depth(), limit, len(want))
	}
}

func runRandomTreeSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree := newIntTree(t)
	model := make(map[int]bool, 64)

	for i := 0; i < steps; i++ {
		switch r.Intn(6) {
		case 0:
			k := r.Intn(64)
			tree = tree.Insert(k)
			model[k] = true
		case 1:
			k := r.Intn(64)
			tree = tree.Erase(CutAt(tree.Comparator(), k))
			delete(model, k)
		case 2:
			k := r.Intn(64)
			tree = tree.Alter(CutAt(tree.Comparator(), k), func(old int, exists bool) (int, bool) {
				if exists != model[k] {
					t.Fatalf("alter presence mismatch for %d: got=%v want=%v", k, exists, model[k])
				}
				if exists && old != k {
					t.Fatalf("alter found wrong element: got=%d want=%d", old, k)
				}
				return k, true
			})
			model[k] = true
		case 3:
			k := r.Intn(64)
			tree = tree.Alter(CutAt(tree.Comparator(), k), func(int, bool) (int, bool) {
				return 0, false
			})
			delete(model, k)
		case 4:
			k := r.Intn(64)
			v, ok := tree.Find(CutAt(tree.Comparator(), k))
			if ok != model[k] {
				t.Fatalf("find presence mismatch for %d: got=%v want=%v", k, ok, model[k])
			}
			if ok && v != k {
				t.Fatalf("find returned wrong element: got=%d want=%d", v, k)
			}
		case 5:
			k := r.Intn(70)
			want, wantOK := 0, false
			for m := range model {
				if m >= k && (!wantOK || m < want) {
					want, wantOK = m, true
				}
			}
			v, ok := tree.LowerBound(CutAt(tree.Comparator(), k))
			if ok != wantOK {
				t.Fatalf("lower bound presence mismatch for %d: got=%v want=%v", k, ok, wantOK)
			}
			if ok && v != want {
				t.Fatalf("lower bound mismatch for %d: got=%d want=%d", k, v, want)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomTreeSequence(t, seed, 80)
		})
	}
}

func FuzzTreeRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomTreeSequence(t, seed, int(steps%120)+1)
	})
}
