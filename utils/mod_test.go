package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]int{0, 3, 5}, 5))
	require.Equal(t, -1, FindIndex([]int{0, 3, 5}, 4))
	require.Equal(t, -1, FindIndex([]string{}, "a"))
}

func TestJoinInts(t *testing.T) {
	require.Equal(t, "5 2 1", JoinInts([]int{5, 2, 1}, " "))
	require.Equal(t, "", JoinInts(nil, ","))
}
