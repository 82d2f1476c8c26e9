package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBadKey = errors.New("bad key")

type readerConfig struct {
	key      int
	checksum bool
	calls    []string
}

func withKey(k int) Option[*readerConfig] {
	return New(func(c *readerConfig) error {
		if k < 0 || k > 0xFF {
			return errBadKey
		}
		c.key = k
		c.calls = append(c.calls, "key")

		return nil
	})
}

func withChecksum(v bool) Option[*readerConfig] {
	return NoError(func(c *readerConfig) {
		c.checksum = v
		c.calls = append(c.calls, "checksum")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withChecksum(true), withKey(0x4D), withChecksum(false))
		require.NoError(t, err)
		require.Equal(t, 0x4D, cfg.key)
		require.False(t, cfg.checksum, "later options win")
		require.Equal(t, []string{"checksum", "key", "checksum"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &readerConfig{}
		err := Apply(cfg, withKey(0x10), withKey(300), withChecksum(true))
		require.ErrorIs(t, err, errBadKey)
		require.Equal(t, 0x10, cfg.key)
		require.False(t, cfg.checksum)
		require.Equal(t, []string{"key"}, cfg.calls)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &readerConfig{key: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.key)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := &readerConfig{}
		require.NoError(t, Apply(cfg, nil, withChecksum(true), nil))
		require.True(t, cfg.checksum)
	})
}

func TestGenericTargets(t *testing.T) {
	type counter struct{ n int }

	inc := NoError(func(c *counter) { c.n++ })
	c := &counter{}
	require.NoError(t, Apply[*counter](c, inc, inc, inc))
	require.Equal(t, 3, c.n)

	values := map[string]int{}
	set := New(func(m map[string]int) error {
		m["walls"] = 32
		return nil
	})
	require.NoError(t, Apply[map[string]int](values, set))
	require.Equal(t, 32, values["walls"])
}
