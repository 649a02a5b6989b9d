package rbtree

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	crdb "github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newIntTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree, err := New[int, string](NaturalOrder[int]())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func mustCheck[K, V any](t *testing.T, tree *Tree[K, V]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

func collectKeys[V any](tree *Tree[int, V]) []int {
	var keys []int
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[int, int](Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNaturalOrderIdentity(t *testing.T) {
	if a, b := NaturalOrder[int]().Order, NaturalOrder[int]().Order; a != b {
		t.Fatalf("natural orders of same key type differ: %q != %q", a, b)
	}
	if NaturalOrder[int]().Compatible(NaturalOrder[int]()) == false {
		t.Fatalf("expected natural int orders to be compatible")
	}
	if NaturalOrder[int]().Order == NaturalOrder[string]().Order {
		t.Fatalf("expected natural orders of int and string to differ")
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	mustCheck(t, tree)
	if tree.Len() != 0 || !tree.IsEmpty() || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if _, _, ok := tree.Min(); ok {
		t.Fatalf("Min of empty tree reported a key")
	}
}

func TestPutGetDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	tree := newIntTree(t)
	for i, s := range []string{"a", "b", "c"} {
		inserted, err := tree.Put(i+1, s)
		if err != nil || !inserted {
			t.Fatalf("Put(%d) = %v, %v; want true, nil", i+1, inserted, err)
		}
		mustCheck(t, tree)
	}
	if v, ok := tree.Get(2); !ok || v != "b" {
		t.Fatalf("Get(2) = %q, %v; want \"b\", true", v, ok)
	}
	if k, v, _ := tree.Min(); k != 1 || v != "a" {
		t.Fatalf("Min() = %d, %q", k, v)
	}
	if k, v, _ := tree.Max(); k != 3 || v != "c" {
		t.Fatalf("Max() = %d, %q", k, v)
	}
	if !tree.Delete(2) {
		t.Fatalf("Delete(2) reported absent key")
	}
	mustCheck(t, tree)
	if tree.Contains(2) || tree.Len() != 2 {
		t.Fatalf("after Delete(2): contains=%v len=%d", tree.Contains(2), tree.Len())
	}
	if got := collectKeys(tree); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("keys = %v, want [1 3]", got)
	}
}

func TestPutOverwritesInPlace(t *testing.T) {
	tree := newIntTree(t)
	tree.Put(7, "x")
	height := tree.Height()
	inserted, err := tree.Put(7, "y")
	if err != nil || inserted {
		t.Fatalf("Put on present key = %v, %v; want false, nil", inserted, err)
	}
	if v, _ := tree.Get(7); v != "y" || tree.Len() != 1 || tree.Height() != height {
		t.Fatalf("overwrite changed structure or missed value: %q len=%d", v, tree.Len())
	}
}

func TestSlotKeepsPresentValue(t *testing.T) {
	tree := newIntTree(t)
	slot, inserted, err := tree.Slot(1, "", false)
	if err != nil || !inserted || *slot != "" {
		t.Fatalf("Slot on absent key = %q, %v, %v", *slot, inserted, err)
	}
	*slot = "set through slot"
	slot, inserted, _ = tree.Slot(1, "ignored", false)
	if inserted || *slot != "set through slot" {
		t.Fatalf("Slot on present key = %q, %v", *slot, inserted)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	tree := newIntTree(t)
	tree.Put(1, "a")
	if tree.Delete(2) {
		t.Fatalf("Delete of absent key reported success")
	}
	if tree.Len() != 1 {
		t.Fatalf("Delete of absent key changed size to %d", tree.Len())
	}
	mustCheck(t, tree)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	tree := newIntTree(t)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		tree.Put(rng.IntN(500), "")
	}
	for k := range 500 {
		had := tree.Contains(k)
		size := tree.Len()
		tree.Put(k, "v")
		tree.Delete(k)
		mustCheck(t, tree)
		if tree.Contains(k) {
			t.Fatalf("key %d still present after round trip", k)
		}
		want := size
		if had {
			want--
		}
		if tree.Len() != want {
			t.Fatalf("size after round trip of %d = %d, want %d", k, tree.Len(), want)
		}
	}
}

func TestStressRandomKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	n := 10000
	if testing.Short() {
		n = 1000
	}
	rng := rand.New(rand.NewPCG(42, 1024))
	keys := rng.Perm(n * 4)[:n]
	tree, err := New[int, int](NaturalOrder[int]())
	if err != nil {
		t.Fatal(err)
	}
	for i, k := range keys {
		tree.Put(k, i)
		if err := tree.Check(); err != nil {
			t.Fatalf("after inserting %d keys: %v", i+1, err)
		}
	}
	if tree.Len() != n {
		t.Fatalf("size = %d, want %d", tree.Len(), n)
	}
	got := collectKeys(tree)
	if !slices.IsSorted(got) || len(got) != n {
		t.Fatalf("in-order traversal is not sorted or incomplete (%d keys)", len(got))
	}
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	for i, k := range keys {
		if !tree.Delete(k) {
			t.Fatalf("Delete(%d) reported absent key", k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after removing %d keys: %v", i+1, err)
		}
		if tree.Len() != n-i-1 {
			t.Fatalf("size = %d after %d removals", tree.Len(), i+1)
		}
	}
	if !tree.IsEmpty() {
		t.Fatalf("tree not empty after removing all keys")
	}
}

func TestHeightIsLogarithmic(t *testing.T) {
	tree := newIntTree(t)
	for i := range 1 << 12 { // ascending insertion is the worst case for plain BSTs
		tree.Put(i, "")
	}
	if h := tree.Height(); h > 2*13 {
		t.Fatalf("height %d exceeds 2*log2(n+1)", h)
	}
}

func TestClearReleasesAllNodes(t *testing.T) {
	budget := NewBudget(100)
	cfg := NaturalOrder[int]()
	cfg.Allocator = budget
	tree, err := New[int, string](cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 50 {
		tree.Put(i, "")
	}
	if budget.InUse() != 50 {
		t.Fatalf("budget in use = %d, want 50", budget.InUse())
	}
	tree.Clear()
	mustCheck(t, tree)
	if budget.InUse() != 0 || tree.Len() != 0 {
		t.Fatalf("after Clear: budget in use = %d, len = %d", budget.InUse(), tree.Len())
	}
}

func TestBudgetRefusalLeavesTreeUnchanged(t *testing.T) {
	cfg := NaturalOrder[int]()
	cfg.Allocator = NewBudget(3)
	tree, _ := New[int, string](cfg)
	for i := range 3 {
		if _, err := tree.Put(i, "ok"); err != nil {
			t.Fatalf("Put(%d) failed: %v", i, err)
		}
	}
	before := collectKeys(tree)
	_, err := tree.Put(10, "refused")
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	mustCheck(t, tree)
	if tree.Contains(10) || !slices.Equal(before, collectKeys(tree)) {
		t.Fatalf("refused insertion changed the tree")
	}
	if _, err := tree.Put(1, "overwrite needs no node"); err != nil {
		t.Fatalf("overwrite refused: %v", err)
	}
	tree.Delete(0)
	if _, err := tree.Put(10, "fits again"); err != nil {
		t.Fatalf("Put after Delete refused: %v", err)
	}
	mustCheck(t, tree)
}

func TestFreedSlotsAreReused(t *testing.T) {
	tree := newIntTree(t)
	for i := range 10 {
		tree.Put(i, "")
	}
	arena := len(tree.nodes)
	for i := range 5 {
		tree.Delete(i)
	}
	for i := 100; i < 105; i++ {
		tree.Put(i, "")
	}
	if len(tree.nodes) != arena {
		t.Fatalf("arena grew from %d to %d although slots were free", arena, len(tree.nodes))
	}
	mustCheck(t, tree)
}

func TestCloneIsDeep(t *testing.T) {
	tree := newIntTree(t)
	for i := range 20 {
		tree.Put(i, "orig")
	}
	clone, err := tree.Clone()
	if err != nil {
		t.Fatal(err)
	}
	clone.Put(5, "changed")
	clone.Delete(6)
	mustCheck(t, clone)
	if v, _ := tree.Get(5); v != "orig" || !tree.Contains(6) {
		t.Fatalf("mutating the clone changed the original")
	}
}

func TestCloneRespectsBudget(t *testing.T) {
	budget := NewBudget(15)
	cfg := NaturalOrder[int]()
	cfg.Allocator = budget
	tree, _ := New[int, int](cfg)
	for i := range 10 {
		tree.Put(i, i)
	}
	if _, err := tree.Clone(); !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected clone to exceed budget, got %v", err)
	}
	if budget.InUse() != 10 {
		t.Fatalf("failed clone leaked %d nodes", budget.InUse()-10)
	}
}

func TestMoveEmptiesSource(t *testing.T) {
	tree := newIntTree(t)
	tree.Put(1, "a")
	tree.Put(2, "b")
	moved := tree.Move()
	mustCheck(t, tree)
	mustCheck(t, moved)
	if !tree.IsEmpty() || moved.Len() != 2 {
		t.Fatalf("Move: source len=%d, target len=%d", tree.Len(), moved.Len())
	}
	tree.Put(3, "c")
	if moved.Contains(3) {
		t.Fatalf("source and moved tree share nodes")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := newIntTree(t)
	for i := range 8 {
		tree.Put(i, "")
	}
	tree.nodes[tree.root].color = red
	err := tree.Check()
	if !errors.Is(err, ErrCorruptTree) || !crdb.IsAssertionFailure(err) {
		t.Fatalf("expected corrupt-tree assertion failure, got %v", err)
	}
	if msg := err.Error(); msg != "root is red: rbtree: corrupt tree" {
		t.Fatalf("unexpected corruption message %q", msg)
	}
	tree.nodes[tree.root].color = black
	mustCheck(t, tree)
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrCorruptTree) {
		t.Fatalf("expected size mismatch to be detected, got %v", err)
	}
}

func TestCustomComparator(t *testing.T) {
	tree, err := New[string, int](Config[string]{
		Less:  func(a, b string) bool { return len(a) < len(b) || (len(a) == len(b) && a < b) },
		Order: "shortlex",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"ccc", "a", "bb", "aa", "b"} {
		tree.Put(s, len(s))
	}
	mustCheck(t, tree)
	var got []string
	tree.ForEach(func(k string, _ int) { got = append(got, k) })
	if want := []string{"a", "b", "aa", "bb", "ccc"}; !slices.Equal(got, want) {
		t.Fatalf("shortlex order = %v, want %v", got, want)
	}
}

func TestConfigDefaultsAllocator(t *testing.T) {
	tree := newIntTree(t)
	if _, ok := tree.Config().Allocator.(unbounded); !ok {
		t.Fatalf("expected unbounded allocator for unset Allocator, got %T", tree.Config().Allocator)
	}
	budget := NewBudget(1)
	cfg := NaturalOrder[int]()
	cfg.Allocator = budget
	limited, err := New[int, string](cfg)
	if err != nil {
		t.Fatal(err)
	}
	if limited.Config().Allocator != Allocator(budget) {
		t.Fatalf("configured allocator has been replaced")
	}
}

func TestAppenderBuildsValidTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	tree := newIntTree(t)
	tree.Put(-1, "")
	app := tree.Appender()
	for i := range 1000 {
		if err := app.Append(i, ""); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	mustCheck(t, tree)
	if tree.Len() != 1001 {
		t.Fatalf("expected 1001 keys, have %d", tree.Len())
	}
	if k, _, _ := tree.Max(); k != 999 {
		t.Fatalf("expected max 999, got %d", k)
	}
	if h := tree.Height(); h > 2*11 {
		t.Fatalf("height %d exceeds red-black bound", h)
	}
	tree.Put(1000, "") // appender is done; regular operations still work
	mustCheck(t, tree)
}

func TestAppenderRefusedAllocation(t *testing.T) {
	cfg := NaturalOrder[int]()
	cfg.Allocator = NewBudget(2)
	tree, err := New[int, string](cfg)
	if err != nil {
		t.Fatal(err)
	}
	app := tree.Appender()
	app.Append(1, "")
	app.Append(2, "")
	if err := app.Append(3, ""); !errors.Is(err, ErrAllocation) {
		t.Fatalf("expected ErrAllocation, got %v", err)
	}
	mustCheck(t, tree)
	if got := collectKeys(tree); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("refused append changed the tree: %v", got)
	}
}

func TestAppenderRejectsUnorderedKeys(t *testing.T) {
	tree := newIntTree(t)
	app := tree.Appender()
	app.Append(5, "")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for descending append")
		}
	}()
	app.Append(5, "")
}
