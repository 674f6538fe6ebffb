package autostart_test

import (
	"os"
	"testing"

	"easy-ftp/core/autostart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestLaunchAgent_EnableDisable(t *testing.T) {
	reg := autostart.NewLaunchAgent(t.TempDir(), testEntry())

	enabled, err := reg.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, reg.Enable())
	require.NoError(t, reg.Enable())

	enabled, err = reg.IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	var decoded map[string]any
	data, err := os.ReadFile(reg.Path())
	require.NoError(t, err)
	_, err = plist.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, "com.easyftp.server", decoded["Label"])
	assert.Equal(t, true, decoded["RunAtLoad"])
	assert.Equal(t, []any{"/opt/Easy FTP/easy-ftp", "start", "--autostart"}, decoded["ProgramArguments"])

	require.NoError(t, reg.Disable())
	require.NoError(t, reg.Disable())

	enabled, err = reg.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestLaunchAgent_DisabledKey(t *testing.T) {
	reg := autostart.NewLaunchAgent(t.TempDir(), testEntry())
	data, err := plist.MarshalIndent(map[string]any{
		"Label":            "com.easyftp.server",
		"ProgramArguments": []string{"easy-ftp"},
		"RunAtLoad":        true,
		"Disabled":         true,
	}, plist.XMLFormat, "\t")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(reg.Path(), data, 0o644))

	enabled, err := reg.IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestLaunchAgent_CorruptFile(t *testing.T) {
	reg := autostart.NewLaunchAgent(t.TempDir(), testEntry())
	require.NoError(t, os.WriteFile(reg.Path(), []byte("<plist><dict><key>"), 0o644))

	_, err := reg.IsEnabled()
	assert.Error(t, err)
}
