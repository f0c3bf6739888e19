// Package paramset decodes the string-keyed algorithm-selection parameter
// maps external callers pass for operations with more than one strategy.
// Unknown keys are errors.
package paramset

import "github.com/matalib/mata/mataerr"

// Set is a decoded parameter map: string keys to string values, exactly
// as it would arrive from a host's config/CLI layer.
type Set map[string]string

// Require looks up key, reporting mataerr.ErrUnknownParameter if absent.
func (s Set) Require(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", mataerr.Wrapf(mataerr.ErrUnknownParameter, "paramset: missing key %q", key)
	}

	return v, nil
}

// OneOf validates that s[key] (or def, if key is absent) is one of
// allowed, returning mataerr.ErrUnknownParameter otherwise.
func (s Set) OneOf(key, def string, allowed ...string) (string, error) {
	v, ok := s[key]
	if !ok {
		v = def
	}
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}

	return "", mataerr.Wrapf(mataerr.ErrUnknownParameter, "paramset: %q is not a valid value for %q", v, key)
}

// Bool parses s[key] ("true"/"false"), defaulting to def if absent.
func (s Set) Bool(key string, def bool) (bool, error) {
	v, ok := s[key]
	if !ok {
		return def, nil
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, mataerr.Wrapf(mataerr.ErrUnknownParameter, "paramset: %q is not a bool for %q", v, key)
	}
}

// ValidateKeys rejects any key in s not present in allowed.
func (s Set) ValidateKeys(allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		ok[a] = true
	}
	for k := range s {
		if !ok[k] {
			return mataerr.Wrapf(mataerr.ErrUnknownParameter, "paramset: unknown key %q", k)
		}
	}

	return nil
}
