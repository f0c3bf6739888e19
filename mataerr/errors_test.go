package mataerr_test

import (
	"errors"
	"testing"

	"github.com/matalib/mata/mataerr"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesErrorsIs(t *testing.T) {
	err := mataerr.Wrap(mataerr.ErrBadInput, "nfa: bad sink state")
	require.True(t, errors.Is(err, mataerr.ErrBadInput))
	require.Contains(t, err.Error(), "bad sink state")
}

func TestWrapfPreservesErrorsIs(t *testing.T) {
	err := mataerr.Wrapf(mataerr.ErrAbsentTransition, "delta.Remove(%d,%d,%d)", 0, 'a', 1)
	require.True(t, errors.Is(err, mataerr.ErrAbsentTransition))
	require.Contains(t, err.Error(), "delta.Remove")
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		mataerr.ErrAbsentTransition,
		mataerr.ErrBadInput,
		mataerr.ErrUnknownParameter,
		mataerr.ErrSerialization,
		mataerr.ErrInternalInvariant,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b))
		}
	}
}
