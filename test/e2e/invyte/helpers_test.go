//go:build e2e

package invyte_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and helpers shared by the invyte end-to-end tests.
 */

const (
	testImageName = "invyte-test:latest"

	jwtSecret = "e2e-secret-that-is-at-least-32-bytes-long"

	hostPhone  = "9990001111"
	guestPhone = "9990002222"
	otherPhone = "9990003333"
)

// TestMain builds the Docker image once for the whole package.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building invyte Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up invyte Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/invyte/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

type service struct {
	baseURL   string
	container testcontainers.Container
}

// setupInvyteContainer starts the service and returns a handle to it.
func setupInvyteContainer(t *testing.T) (*service, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"INVYTE_JWT_SECRET":      jwtSecret,
			"INVYTE_DATABASE_FILE":   "/data/invyte.db",
			"INVYTE_INVITE_BASE_URL": "https://invyte.test/i/",
			"NOTIFY_DRIVER":          "log",
			"DISPATCH_INTERVAL":      "1s",
			"ENV":                    "test",
			"LOG_LEVEL":              "info",
			"LOG_FORMAT":             "json",
			// Tests hammer the API; lift the per-user limits.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	svc := &service{
		baseURL:   fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
		container: container,
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return svc, cleanup
}

// mintToken runs the token command inside the container, creating the user
// on first use.
func (s *service) mintToken(t *testing.T, phone, name string) string {
	t.Helper()

	cmd := []string{"/usr/local/bin/invyte", "token", "--phone", phone}
	if name != "" {
		cmd = append(cmd, "--name", name)
	}

	code, out, err := s.container.Exec(t.Context(), cmd, tcexec.Multiplexed())
	require.NoError(t, err)
	output, err := io.ReadAll(out)
	require.NoError(t, err)
	require.Equal(t, 0, code, "token command failed: %s", output)

	// The last non-empty line is the token; log lines precede it.
	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	token := strings.TrimSpace(lines[len(lines)-1])
	require.NotEmpty(t, token)
	return token
}

// client returns an SDK client for the user with phone.
func (s *service) client(t *testing.T, phone, name string) *invytesdk.Client {
	t.Helper()
	return invytesdk.NewClient(s.baseURL, s.mintToken(t, phone, name))
}

func assertHealthy(t *testing.T, health *invytesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
	require.NotEmpty(t, health.Uptime)
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *invytesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func ptr[T any](v T) *T { return &v }
