package config

import (
	"context"
	"testing"

	"cuelang.org/go/cue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resource/errors"
)

func TestEncode(t *testing.T) {
	ctx := context.Background()
	loader := newMemoryLoader(t, nil)

	concrete, err := loader.LoadBytes(ctx, []byte(`name: "api", port: 80`), "c.cue")
	require.NoError(t, err)
	open, err := loader.LoadBytes(ctx, []byte(`name: string`), "o.cue")
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		data, err := EncodeYAML(ctx, concrete)
		require.NoError(t, err)
		assert.Equal(t, "name: api\nport: 80\n", string(data))
	})

	t.Run("json", func(t *testing.T) {
		data, err := EncodeJSON(ctx, concrete)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "api", "port": 80}`, string(data))
	})

	t.Run("incomplete value", func(t *testing.T) {
		_, err := EncodeYAML(ctx, open.LookupPath(cue.ParsePath("name")))
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigEncodeFailed, err.Code())
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := EncodeJSON(cctx, concrete)
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigEncodeFailed, err.Code())
	})
}

func TestDecode(t *testing.T) {
	ctx := context.Background()
	loader := newMemoryLoader(t, nil)

	val, err := loader.LoadBytes(ctx, []byte(`host: "db", port: 5432`), "d.cue")
	require.NoError(t, err)

	var db database
	require.NoError(t, Decode(ctx, val, &db))
	assert.Equal(t, database{Host: "db", Port: 5432}, db)

	tests := []struct {
		name   string
		target interface{}
	}{
		{name: "nil", target: nil},
		{name: "not a pointer", target: database{}},
		{name: "nil pointer", target: (*database)(nil)},
		{name: "pointer to non-struct", target: new(string)},
		{name: "type mismatch", target: &struct {
			Host int `json:"host"`
		}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Decode(ctx, val, tt.target)
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigDecodeFailed, err.Code())
		})
	}
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	loader := newMemoryLoader(t, nil)

	schema, err := loader.LoadBytes(ctx, []byte(`port: int & >0 & <65536`), "schema.cue")
	require.NoError(t, err)
	good, err := loader.LoadBytes(ctx, []byte(`port: 8080`), "good.cue")
	require.NoError(t, err)
	bad, err := loader.LoadBytes(ctx, []byte(`port: 70000`), "bad.cue")
	require.NoError(t, err)

	assert.NoError(t, Validate(ctx, schema, good))

	err = Validate(ctx, schema, bad)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigValidationFailed, errors.GetCode(err))

	var perr errors.PlatformError
	require.True(t, errors.As(err, &perr))
	issues, ok := perr.Context()["issues"].([]ValidationIssue)
	require.True(t, ok)
	require.NotEmpty(t, issues)
	assert.Equal(t, []string{"port"}, issues[0].Path)
}
