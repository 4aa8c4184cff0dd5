package transport

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/relayworks/actuator-agent/internal/entities"
	"github.com/relayworks/actuator-agent/internal/errs"
)

const (
	nmcliExecutable = "nmcli"
)

// Service drives the system wireless stack through NetworkManager. One call is
// one association attempt; retry policy lives in the link service.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Associate(ctx context.Context, creds entities.WirelessCredentials) error {
	cmd := exec.CommandContext(ctx, nmcliExecutable,
		"device", "wifi", "connect", creds.SSID,
		"password", creds.PSK,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("Associate: %s: %w", strings.TrimSpace(string(output)), errs.ErrAssociationFailed)
	}

	return nil
}
