//go:build integration
// +build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

func restartServerContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	cmd := exec.CommandContext(ctx, "docker", "compose", "restart", "server")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart server failed: %v\n%s", err, string(out))
	}
}
