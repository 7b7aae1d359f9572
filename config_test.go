package parsearch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Size: 10, Omit: 7, Workers: 3, Target: 5}
	require.NoError(t, valid.Validate())

	cases := map[string]struct {
		cfg   Config
		field string
	}{
		"negative size":   {Config{Size: -1, Omit: 1, Workers: 1, Target: 1}, "array size"},
		"omit low":        {Config{Size: 10, Omit: -1, Workers: 1, Target: 1}, "number to omit"},
		"omit high":       {Config{Size: 10, Omit: 1000, Workers: 1, Target: 1}, "number to omit"},
		"target low":      {Config{Size: 10, Omit: 1, Workers: 1, Target: -1}, "number to search for"},
		"target high":     {Config{Size: 10, Omit: 1, Workers: 1, Target: 1000}, "number to search for"},
		"zero workers":    {Config{Size: 0, Omit: 1, Workers: 0, Target: 1}, "number of threads"},
		"workers > size":  {Config{Size: 2, Omit: 1, Workers: 3, Target: 1}, "number of threads"},
		"negative worker": {Config{Size: 2, Omit: 1, Workers: -3, Target: 1}, "number of threads"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var ce *ConfigError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, c.field, ce.Field)
		})
	}
}

func TestConfigBoundsInclusive(t *testing.T) {
	assert.NoError(t, Config{Size: 1, Omit: 0, Workers: 1, Target: 999}.Validate())
	assert.NoError(t, Config{Size: 1, Omit: 999, Workers: 1, Target: 0}.Validate())
}

func TestParseArgs(t *testing.T) {
	cfg, err := ParseArgs([]string{"100", "7", "4", "42"})
	require.NoError(t, err)
	assert.Equal(t, Config{Size: 100, Omit: 7, Workers: 4, Target: 42}, cfg)

	cfg, err = ParseArgs([]string{"+10", "0", "10", "0"})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Size)
}

func TestParseArgsRejects(t *testing.T) {
	bad := [][]string{
		{},
		{"1", "2", "3"},
		{"1", "2", "3", "4", "5"},
		{"abc", "1", "1", "1"},
		{"10", "", "1", "1"},
		{"12abc", "1", "1", "1"},
		{" 12", "1", "1", "1"},
		{"12 ", "1", "1", "1"},
		{"2147483648", "1", "1", "1"},
		{"10", "1", "1", "0x1"},
		{"10", "1000", "1", "1"},
		{"10", "1", "11", "1"},
	}
	for _, args := range bad {
		_, err := ParseArgs(args)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "ParseArgs(%q) err = %v", args, err)
	}
}
