package dedup

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeq(t *testing.T) {
	in := []int{1, 1, 2, 2, 3, 3, 4, 4, 4, 4, 5, 5, 8, 8, 6, 6, 7, 7}
	got := slices.Collect(Seq(slices.Values(in)))
	require.Equal(t, []int{1, 2, 3, 4, 5, 8, 6, 7}, got)
}

func TestSeqReusable(t *testing.T) {
	uniq := Seq(slices.Values([]string{"a", "a", "b"}))
	require.Equal(t, []string{"a", "b"}, slices.Collect(uniq))
	require.Equal(t, []string{"a", "b"}, slices.Collect(uniq))
}

func TestSeqEarlyStop(t *testing.T) {
	var got []int
	for v := range Seq(slices.Values([]int{1, 1, 2, 3})) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, got)
}

func TestSeqBy(t *testing.T) {
	type ev struct {
		id   int
		name string
	}
	evs := []ev{{1, "a"}, {2, "b"}, {1, "c"}}
	got := slices.Collect(SeqBy(slices.Values(evs), func(e ev) int { return e.id }))
	require.Equal(t, []ev{{1, "a"}, {2, "b"}}, got)
}
