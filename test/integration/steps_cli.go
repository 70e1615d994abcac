package integration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// iRunCmsctl runs the cmsctl binary against the test database. Command
// failures are kept for the following steps.
func (s *StepsContext) iRunCmsctl(ctx context.Context, args string) error {
	if s.tc.BinaryPath == "" {
		return fmt.Errorf("CMSCTL_BINARY is required")
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, s.tc.BinaryPath, strings.Fields(args)...)
	cmd.Env = append(os.Environ(),
		"DATABASE_URL="+s.tc.DatabaseURL,
		"CMS_CONFIG_PATH="+os.TempDir(),
	)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	s.err = cmd.Run()
	s.output = stdout.String()
	return nil
}

func (s *StepsContext) theOutputShouldContain(text string) error {
	if !strings.Contains(s.output, text) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", text, s.output)
	}
	return nil
}
