package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"labshop/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env       string
		wantErr   bool
		wantDebug bool
		json      bool
	}{
		{env: config.EnvLocal, wantDebug: true},
		{env: config.EnvDev, wantDebug: true, json: true},
		{env: config.EnvProd, json: true},
		{env: "staging", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := setupLogger(tt.env, &buf)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			log.Debug("debug line")
			assert.Equal(t, tt.wantDebug, buf.Len() > 0)

			buf.Reset()
			log.Info("info line", "op", "test")
			require.NotZero(t, buf.Len())

			if tt.json {
				var rec map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
				assert.Equal(t, "info line", rec["msg"])
				assert.Equal(t, "test", rec["op"])
			}
		})
	}
}
