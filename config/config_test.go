package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require.Equal(t, Config{
		Color: true,
		Log:   Log{Level: "warn", Format: "console"},
	}, Default())
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr string
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Default(),
		},
		{
			name:    "partial override",
			content: "format: table\nlog:\n  level: debug\n",
			want: Config{
				Format: "table",
				Color:  true,
				Log:    Log{Level: "debug", Format: "console"},
			},
		},
		{
			name:    "full",
			content: "data: ./catalog\nformat: csv\ncolor: false\nlog:\n  level: info\n  format: json\n",
			want: Config{
				Data:   "./catalog",
				Format: "csv",
				Color:  false,
				Log:    Log{Level: "info", Format: "json"},
			},
		},
		{
			name:    "unknown key",
			content: "colour: true\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "bad log format",
			content: "log:\n  format: xml\n",
			wantErr: "log format must be console or json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "seqcat.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := Load(path)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_NoPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")
}
