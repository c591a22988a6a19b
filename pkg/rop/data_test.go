package rop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataResult_PayloadOnBothPaths(t *testing.T) {
	t.Parallel()

	ok := NewDataResult([]byte("full"))
	require.True(t, ok.IsSuccess())
	require.Equal(t, []byte("full"), ok.Value())

	partial := FailedData([]byte("par"), "read interrupted")
	require.False(t, partial.IsSuccess())
	require.Equal(t, "read interrupted", partial.ErrorMessage())
	require.Equal(t, []byte("par"), partial.Value())
}

func TestDataResult_Conversions(t *testing.T) {
	t.Parallel()

	failed := FailedData(7, "late")
	require.Equal(t, "late", failed.Void().ErrorMessage())
	require.Equal(t, "late", failed.ToResult().ErrorMessage())
	require.Equal(t, "late and other", failed.And(FailedVoid("other")).ErrorMessage())

	require.Equal(t, 7, NewDataResult(7).ToResult().Value())
	require.Equal(t, "late", As[string](failed).ErrorMessage())
}

func TestJoinMessages(t *testing.T) {
	t.Parallel()

	require.Empty(t, JoinMessages(Ok(), Success(1)))
	require.Equal(t, "a and c", JoinMessages(FailedVoid("a"), Ok(), Failed[int]("c")))
}
