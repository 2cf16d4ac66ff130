package list

import (
	"testing"

	"github.com/ansel1/merry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListEmpty(t *testing.T) {
	l := List[int]{}
	if !l.IsEmpty() {
		t.Error("expected zero-value list to be empty, isn't")
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list to have length 0, has %d", l.Len())
	}
	if !Equal(l, Empty[int]()) {
		t.Error("expected zero-value list to equal Empty(), doesn't")
	}
}

func TestListHeadTailOfEmpty(t *testing.T) {
	l := Empty[string]()
	if _, err := l.Head(); !merry.Is(err, ErrEmptyCollection) {
		t.Errorf("expected Head of empty list to fail with ErrEmptyCollection, is %v", err)
	}
	if _, err := l.Tail(); !merry.Is(err, ErrEmptyCollection) {
		t.Errorf("expected Tail of empty list to fail with ErrEmptyCollection, is %v", err)
	}
}

func TestListConsScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.list")
	defer teardown()
	//
	l := Cons("hello", Cons("world", Empty[string]()))
	h, err := l.Head()
	if err != nil || h != "hello" {
		t.Errorf("expected head to be 'hello', is %q (err %v)", h, err)
	}
	tl, err := l.Tail()
	if err != nil {
		t.Fatalf("expected tail of 2-element list to succeed, failed with %v", err)
	}
	if !Equal(tl, Singleton("world")) {
		t.Errorf("expected tail to be ('world'), is %s", tl)
	}
	if !Equal(l.Reverse(), New("world", "hello")) {
		t.Errorf("expected reverse to be ('world' 'hello'), is %s", l.Reverse())
	}
	if l.Len() != 2 {
		t.Errorf("expected length 2, is %d", l.Len())
	}
}

func TestListConsDoesNotTouchInput(t *testing.T) {
	l := New(2, 3)
	m := Cons(1, l)
	if !Equal(l, New(2, 3)) {
		t.Errorf("expected l to still be (2 3) after Cons, is %s", l)
	}
	if !Equal(m, New(1, 2, 3)) {
		t.Errorf("expected m to be (1 2 3), is %s", m)
	}
	if tl, _ := m.Tail(); tl.head != l.head {
		t.Error("expected m to share its tail cells with l, doesn't")
	}
}

func TestListFold(t *testing.T) {
	l := New("a", "b", "c")
	s := Fold(l, "", func(acc string, x string) string {
		return acc + x
	})
	if s != "abc" {
		t.Errorf("expected left fold to visit in list order, got %q", s)
	}
	r := FoldRight(l, "", func(x string, acc string) string {
		return acc + x
	})
	if r != "cba" {
		t.Errorf("expected right fold to visit right-to-left, got %q", r)
	}
}

func TestListMap(t *testing.T) {
	l := New(1, 2, 3)
	m := Map(l, func(n int) int {
		return n * n
	})
	if !Equal(m, New(1, 4, 9)) {
		t.Errorf("expected (1 4 9), is %s", m)
	}
	s := Map(l, func(n int) string {
		return string(rune('a' + n - 1))
	})
	if !Equal(s, New("a", "b", "c")) {
		t.Errorf("expected (a b c), is %s", s)
	}
}

func TestListPredicates(t *testing.T) {
	l := New(1, 2, 3, 4)
	if !Contains(l, 3) {
		t.Error("expected list to contain 3, doesn't")
	}
	if Contains(l, 7) {
		t.Error("expected list not to contain 7, does")
	}
	if !l.ForAll(func(n int) bool { return n > 0 }) {
		t.Error("expected all elements to be positive, aren't")
	}
	if !l.Exists(func(n int) bool { return n%2 == 0 }) {
		t.Error("expected an even element, found none")
	}
	if Empty[int]().Exists(func(int) bool { return true }) {
		t.Error("expected Exists on empty list to be false, isn't")
	}
	if !Empty[int]().ForAll(func(int) bool { return false }) {
		t.Error("expected ForAll on empty list to be vacuously true, isn't")
	}
}

func TestListShortCircuit(t *testing.T) {
	l := New(1, 2, 3, 4)
	visited := 0
	l.Exists(func(n int) bool {
		visited++
		return n == 2
	})
	if visited != 2 {
		t.Errorf("expected Exists to stop after 2 elements, visited %d", visited)
	}
	visited = 0
	l.ForAll(func(n int) bool {
		visited++
		return n < 3
	})
	if visited != 3 {
		t.Errorf("expected ForAll to stop after 3 elements, visited %d", visited)
	}
}

func TestListAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered.list")
	defer teardown()
	//
	l1 := New(1, 2)
	l2 := New(3, 4)
	l := Append(l1, l2)
	if !Equal(l, New(1, 2, 3, 4)) {
		t.Errorf("expected (1 2 3 4), is %s", l)
	}
	if !Equal(l1, New(1, 2)) || !Equal(l2, New(3, 4)) {
		t.Error("expected Append to leave both inputs unchanged, didn't")
	}
	if !Equal(Append(Empty[int](), l2), l2) {
		t.Error("expected Append(ε, l2) to be l2, isn't")
	}
	if !Equal(Append(l1, Empty[int]()), l1) {
		t.Error("expected Append(l1, ε) to equal l1, doesn't")
	}
}

func TestListAppendSharesSuffix(t *testing.T) {
	l1 := New(1, 2)
	l2 := New(3, 4)
	l := Append(l1, l2)
	c := l.head
	for i := 0; i < 2; i++ { // skip the rebuilt cells of l1
		c = c.cdr
	}
	if c != l2.head {
		t.Error("expected appended list to share the cells of l2, doesn't")
	}
}

func TestListForEachOrder(t *testing.T) {
	var got []int
	New(5, 6, 7).ForEach(func(n int) {
		got = append(got, n)
	})
	if len(got) != 3 || got[0] != 5 || got[1] != 6 || got[2] != 7 {
		t.Errorf("expected ForEach to visit 5 6 7 in order, visited %v", got)
	}
}

func TestListFirst(t *testing.T) {
	if first := New(9, 8).First(); first.OrElse(0) != 9 {
		t.Errorf("expected First to be Some(9), is %v", first)
	}
	if first := Empty[int]().First(); !first.IsNone() {
		t.Errorf("expected First of empty list to be none, is %v", first)
	}
}

func TestListString(t *testing.T) {
	if s := New(1, 2, 3).String(); s != "(1 2 3)" {
		t.Errorf("expected '(1 2 3)', is %q", s)
	}
	if s := Empty[int]().String(); s != "()" {
		t.Errorf("expected '()', is %q", s)
	}
}
