package gpio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/samber/lo"

	"github.com/relayworks/actuator-agent/internal/constants"
)

const (
	defaultSysfsRoot = "/sys/class/gpio"
)

// Service drives a single output pin through the sysfs GPIO interface.
type Service struct {
	pin  int
	root string
}

func NewService(pin int) *Service {
	return NewServiceWithRoot(pin, defaultSysfsRoot)
}

func NewServiceWithRoot(pin int, root string) *Service {
	return &Service{
		pin:  pin,
		root: root,
	}
}

// Init exports the pin and configures it as an output. An already exported pin
// reports EBUSY, which is fine.
func (s *Service) Init() error {
	exportPath := filepath.Join(s.root, "export")
	if err := os.WriteFile(exportPath, []byte(strconv.Itoa(s.pin)), constants.LogFilePerm); err != nil && !errors.Is(err, syscall.EBUSY) {
		return fmt.Errorf("Init: %w", err)
	}

	directionPath := filepath.Join(s.pinDir(), "direction")
	if err := os.WriteFile(directionPath, []byte("out"), constants.LogFilePerm); err != nil {
		return fmt.Errorf("Init: %w", err)
	}

	return nil
}

func (s *Service) Drive(on bool) error {
	value := lo.Ternary(on, "1", "0")
	if err := os.WriteFile(filepath.Join(s.pinDir(), "value"), []byte(value), constants.LogFilePerm); err != nil {
		return fmt.Errorf("Drive: %w", err)
	}

	return nil
}

func (s *Service) pinDir() string {
	return filepath.Join(s.root, fmt.Sprintf("gpio%d", s.pin))
}
