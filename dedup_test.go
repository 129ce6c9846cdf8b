package dedup

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDedup(t *testing.T) {
	got := Dedup([]int{1, 1, 2, 2, 3, 3, 4, 4, 4, 4, 5, 5, 8, 8, 6, 6, 7, 7})
	require.Equal(t, []int{1, 2, 3, 4, 5, 8, 6, 7}, got)
}

func TestDedupAllSame(t *testing.T) {
	require.Equal(t, []int{5}, Dedup([]int{5, 5, 5, 5}))
}

func TestDedupEmpty(t *testing.T) {
	require.Equal(t, []int{}, Dedup([]int{}))
	require.Nil(t, Dedup[[]int](nil))
}

func TestDedupKeepsOrder(t *testing.T) {
	got := Dedup([]string{"b", "a", "b", "c", "a"})
	require.Equal(t, []string{"b", "a", "c"}, got)
}

func TestDedupIdempotent(t *testing.T) {
	once := Dedup([]int{1, 1, 2, 2, 3, 3, 4, 4, 4, 4, 5, 5, 8, 8, 6, 6, 7, 7})
	require.Equal(t, once, Dedup(once))
}

func TestDedupNoDuplicates(t *testing.T) {
	in := []int{4, 2, 7, 1}
	require.Equal(t, in, Dedup(in))
}

func TestDedupDoesNotMutateInput(t *testing.T) {
	in := []int{3, 1, 3, 2}
	got := Dedup(in)
	require.Equal(t, []int{3, 1, 3, 2}, in)
	require.Equal(t, []int{3, 1, 2}, got)
}

func TestDedupResultIsDetached(t *testing.T) {
	in := []int{1, 2}
	got := Dedup(in)
	require.Equal(t, in, got)
	got[0] = 99
	require.Equal(t, 1, in[0])

	in = []int{7}
	got = Dedup(in)
	got[0] = 99
	require.Equal(t, 7, in[0])
}

type tags []string

func TestDedupNamedSliceType(t *testing.T) {
	got := Dedup(tags{"x", "y", "x"})
	require.IsType(t, tags{}, got)
	require.Equal(t, tags{"x", "y"}, got)
}

type row struct {
	key string
	val int
}

func TestDedupBy(t *testing.T) {
	rows := []row{{"a", 1}, {"b", 2}, {"a", 3}, {"c", 4}, {"b", 5}}
	got := DedupBy(rows, func(r row) string { return r.key })
	require.Equal(t, []row{{"a", 1}, {"b", 2}, {"c", 4}}, got)
}

func TestDedupByProjection(t *testing.T) {
	got := DedupBy([]string{"Go", "go", "GO", "rust"}, strings.ToLower)
	require.Equal(t, []string{"Go", "rust"}, got)
}

func TestDedupFunc(t *testing.T) {
	got := DedupFunc([][]int{{1, 2}, {1, 2}, {3}}, func(a, b []int) bool { return slices.Equal(a, b) })
	require.Equal(t, [][]int{{1, 2}, {3}}, got)
}

func TestDedupFuncMatchesDedup(t *testing.T) {
	in := []int{1, 1, 2, 2, 3, 3, 4, 4, 4, 4, 5, 5, 8, 8, 6, 6, 7, 7}
	got := DedupFunc(in, func(a, b int) bool { return a == b })
	require.Equal(t, Dedup(in), got)
}

func TestDedupInPlace(t *testing.T) {
	in := []int{5, 5, 5, 5}
	got := DedupInPlace(in)
	require.Equal(t, []int{5}, got)
	require.Same(t, &in[0], &got[0])
}

func benchInput(n int) []int {
	r := rand.New(rand.NewPCG(1, 2))
	s := make([]int, n)
	for i := range s {
		s[i] = int(r.IntN(n / 4))
	}
	return s
}

var benchSink []int

func BenchmarkDedup(b *testing.B) {
	in := benchInput(8192)
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		benchSink = Dedup(in)
	}
}

func BenchmarkDedupFunc(b *testing.B) {
	in := benchInput(512)
	eq := func(a, c int) bool { return a == c }
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		benchSink = DedupFunc(in, eq)
	}
}
