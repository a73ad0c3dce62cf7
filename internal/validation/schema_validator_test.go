package validation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_SecuritiesSeed(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name: "valid catalog",
			data: `{"version":"1.0","securities":[{"code":"A","name":"Alpha","price":10},{"code":"B","name":"Beta","price":0}]}`,
		},
		{
			name: "empty catalog",
			data: `{"version":"1.0","securities":[]}`,
		},
		{
			name:     "missing price",
			data:     `{"version":"1.0","securities":[{"code":"A","name":"Alpha"}]}`,
			errorMsg: "required",
		},
		{
			name:     "negative price",
			data:     `{"version":"1.0","securities":[{"code":"A","name":"Alpha","price":-1}]}`,
			errorMsg: "/securities/0/price",
		},
		{
			name:     "fractional price",
			data:     `{"version":"1.0","securities":[{"code":"A","name":"Alpha","price":1.5}]}`,
			errorMsg: "/securities/0/price",
		},
		{
			name:     "empty code",
			data:     `{"version":"1.0","securities":[{"code":"","name":"Alpha","price":1}]}`,
			errorMsg: "/securities/0/code",
		},
		{
			name:     "unknown field",
			data:     `{"version":"1.0","securities":[{"code":"A","name":"Alpha","price":1,"sector":"tech"}]}`,
			errorMsg: "additionalProperties",
		},
		{
			name:     "wrong version",
			data:     `{"version":"2.0","securities":[]}`,
			errorMsg: "/version",
		},
		{
			name:     "invalid JSON",
			data:     `{"version":`,
			errorMsg: "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), SecuritiesSeedSchema)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidateBytes_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), "schemas/missing.schema.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestValidateBytes_ConcurrentCompile(t *testing.T) {
	v := NewSchemaValidator()
	data := []byte(`{"version":"1.0","securities":[{"code":"A","name":"Alpha","price":10}]}`)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- v.ValidateBytes(data, SecuritiesSeedSchema)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
