package gpio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relayworks/actuator-agent/internal/domains/actuator/gpio"
)

func newTestRoot(t *testing.T, pin string) string {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "gpio"+pin), 0o755))

	return root
}

func readPinFile(t *testing.T, root, pin, name string) string {
	body, err := os.ReadFile(filepath.Join(root, "gpio"+pin, name))
	require.NoError(t, err)

	return string(body)
}

func Test_Init(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, "5")
	service := gpio.NewServiceWithRoot(5, root)

	require.NoError(t, service.Init())

	exportBody, err := os.ReadFile(filepath.Join(root, "export"))
	require.NoError(t, err)
	require.Equal(t, "5", string(exportBody))
	require.Equal(t, "out", readPinFile(t, root, "5", "direction"))
}

func Test_Drive(t *testing.T) {
	t.Parallel()

	root := newTestRoot(t, "5")
	service := gpio.NewServiceWithRoot(5, root)
	require.NoError(t, service.Init())

	require.NoError(t, service.Drive(true))
	require.Equal(t, "1", readPinFile(t, root, "5", "value"))

	require.NoError(t, service.Drive(false))
	require.Equal(t, "0", readPinFile(t, root, "5", "value"))
}

func Test_Drive_MissingPin(t *testing.T) {
	t.Parallel()

	// pin 6 was never exported under this root
	service := gpio.NewServiceWithRoot(6, t.TempDir())

	require.Error(t, service.Drive(true))
}
