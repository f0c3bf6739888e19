package paramset_test

import (
	"errors"
	"testing"

	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/paramset"
	"github.com/stretchr/testify/require"
)

func TestRequireMissingKeyErrors(t *testing.T) {
	s := paramset.Set{}
	_, err := s.Require("algorithm")
	require.True(t, errors.Is(err, mataerr.ErrUnknownParameter))
}

func TestRequirePresentKey(t *testing.T) {
	s := paramset.Set{"algorithm": "classical"}
	v, err := s.Require("algorithm")
	require.NoError(t, err)
	require.Equal(t, "classical", v)
}

func TestOneOfDefaultsWhenAbsent(t *testing.T) {
	s := paramset.Set{}
	v, err := s.OneOf("direction", "forward", "forward", "backward")
	require.NoError(t, err)
	require.Equal(t, "forward", v)
}

func TestOneOfRejectsUnlistedValue(t *testing.T) {
	s := paramset.Set{"direction": "sideways"}
	_, err := s.OneOf("direction", "forward", "forward", "backward")
	require.True(t, errors.Is(err, mataerr.ErrUnknownParameter))
}

func TestBoolParsesAndDefaults(t *testing.T) {
	s := paramset.Set{"minimize": "true"}
	v, err := s.Bool("minimize", false)
	require.NoError(t, err)
	require.True(t, v)

	v, err = s.Bool("absent", true)
	require.NoError(t, err)
	require.True(t, v)

	_, err = paramset.Set{"minimize": "yes"}.Bool("minimize", false)
	require.Error(t, err)
}

func TestValidateKeysRejectsUnknown(t *testing.T) {
	s := paramset.Set{"algorithm": "classical", "bogus": "x"}
	err := s.ValidateKeys("algorithm", "minimize")
	require.True(t, errors.Is(err, mataerr.ErrUnknownParameter))
}

func TestValidateKeysAcceptsAllowedSubset(t *testing.T) {
	s := paramset.Set{"algorithm": "classical"}
	require.NoError(t, s.ValidateKeys("algorithm", "minimize"))
}
