package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		want     string
	}{
		{
			name: "explicit config file",
			envSetup: map[string]string{
				EnvUniqrConfig:    "/custom/uniqr.toml",
				EnvUniqrConfigDir: "/ignored",
			},
			want: "/custom/uniqr.toml",
		},
		{
			name: "custom config dir",
			envSetup: map[string]string{
				EnvUniqrConfig:    "",
				EnvUniqrConfigDir: "/custom/config",
			},
			want: filepath.Join("/custom/config", ConfigFileName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, ConfigFile())
		})
	}
}

func TestConfigDirDefaultsToXDG(t *testing.T) {
	t.Setenv(EnvUniqrConfigDir, "")

	dir := ConfigDir()
	assert.Equal(t, AppDirName, filepath.Base(dir))
	assert.True(t, filepath.IsAbs(dir), "config dir should be absolute: %s", dir)
}

func TestLogFile(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateHome, "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "uniqr", "uniqr.log"), LogFile())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvStateHome, "")
		got := LogFile()
		assert.Equal(t, LogFileName, filepath.Base(got))
		assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(got)))
	})
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", homeDir},
		{"~/notes.txt", filepath.Join(homeDir, "notes.txt")},
		{"~other/notes.txt", "~other/notes.txt"},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}
