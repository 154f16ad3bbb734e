package name

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []string{
		"myplugin",
		"my-plugin",
		"my_plugin",
		"plugin2",
		"My-Plugin_v2",
		"a",
		"Z",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			n, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, n.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{"empty", "", Empty},
		{"starts with number", "2plugin", InvalidInitialChar},
		{"starts with hyphen", "-plugin", InvalidInitialChar},
		{"starts with underscore", "_plugin", InvalidInitialChar},
		{"contains space", "my plugin", InvalidChar},
		{"contains special char", "my@plugin", InvalidChar},
		{"contains dot", "my.plugin", InvalidChar},
		{"non-ascii initial", "üplugin", InvalidInitialChar},
		{"non-ascii later", "plügin", InvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)

			var nameErr *Error
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, tt.kind, nameErr.Kind)
			assert.NotEmpty(t, nameErr.Error())
		})
	}
}

func TestParse_PreservesCaseAndHyphens(t *testing.T) {
	n, err := Parse("Foo_Bar-baz")
	require.NoError(t, err)
	assert.Equal(t, "Foo_Bar-baz", n.String())
}
