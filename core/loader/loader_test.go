package loader_test

import (
	"errors"
	"testing"

	"easy-ftp/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "on", enabled: true}
	off := &stubFeature{name: "off"}

	mgr := loader.NewManager(zap.NewNop())
	mgr.Register(on)
	mgr.Register(off)

	require.NoError(t, mgr.LoadAll(fiber.New()))
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, mgr.Features(), 2)
}

func TestManager_LoadAllStopsOnError(t *testing.T) {
	broken := &stubFeature{name: "broken", enabled: true, err: errors.New("boom")}
	after := &stubFeature{name: "after", enabled: true}

	mgr := loader.NewManager(nil)
	mgr.Register(broken)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.False(t, after.loaded)
}
