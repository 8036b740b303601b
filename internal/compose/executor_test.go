package compose

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	dir  string
	name string
	args []string
}

func newTestExecutor(t *testing.T, command string, run runFunc) *executor {
	t.Helper()

	e, err := NewExecutor(command, time.Second, logger.Nop())
	require.NoError(t, err)

	ex := e.(*executor)
	ex.run = run
	return ex
}

func TestNewExecutor_EmptyCommand(t *testing.T) {
	for _, cmd := range []string{"", "   "} {
		_, err := NewExecutor(cmd, 0, logger.Nop())
		assert.ErrorIs(t, err, ErrEmptyCommand)
	}
}

func TestExecutor_UpAndDown(t *testing.T) {
	var calls []recordedRun
	ex := newTestExecutor(t, "docker compose", func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		calls = append(calls, recordedRun{dir: dir, name: name, args: args})
		return nil, nil
	})

	require.NoError(t, ex.Up(context.Background(), "/data/users/alice"))
	require.NoError(t, ex.Down(context.Background(), "/data/users/alice"))

	assert.Equal(t, []recordedRun{
		{dir: "/data/users/alice", name: "docker", args: []string{"compose", "-p", "sync-hub-alice", "-f", "docker-compose.yaml", "up", "-d"}},
		{dir: "/data/users/alice", name: "docker", args: []string{"compose", "-p", "sync-hub-alice", "-f", "docker-compose.yaml", "down"}},
	}, calls)
}

func TestExecutor_SingleWordCommand(t *testing.T) {
	var got recordedRun
	ex := newTestExecutor(t, "podman-compose", func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		got = recordedRun{dir: dir, name: name, args: args}
		return nil, nil
	})

	require.NoError(t, ex.Up(context.Background(), "/tmp/x"))
	assert.Equal(t, recordedRun{dir: "/tmp/x", name: "podman-compose", args: []string{"-p", "sync-hub-x", "-f", "docker-compose.yaml", "up", "-d"}}, got)
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		dir     string
		want    string
		wantErr bool
	}{
		{dir: "/data/users/alice", want: "sync-hub-alice"},
		{dir: "/data/users/bob_2-x", want: "sync-hub-bob_2-x"},
		{dir: "/data/users/7", want: "sync-hub-7"},
		{dir: "/data/users/Alice", wantErr: true},
		{dir: "/data/users/a.b", wantErr: true},
		{dir: "/data/users/-x", wantErr: true},
		{dir: "/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := ProjectName(tt.dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutor_DistinctDirsNeverShareProject(t *testing.T) {
	projects := make(map[string]string)
	ex := newTestExecutor(t, "docker compose", func(_ context.Context, dir, _ string, args ...string) ([]byte, error) {
		projects[dir] = args[2]
		return nil, nil
	})

	for _, dir := range []string{"/data/users/alice", "/data/users/alice_", "/data/users/alice-"} {
		require.NoError(t, ex.Up(context.Background(), dir))
	}
	for _, dir := range []string{"/data/users/Alice", "/data/users/ali.ce"} {
		assert.ErrorIs(t, ex.Up(context.Background(), dir), ErrInvalidProject)
	}

	assert.Len(t, projects, 3)
	seen := make(map[string]bool)
	for _, p := range projects {
		assert.False(t, seen[p], "project %s reused", p)
		seen[p] = true
	}
}

func TestExecutor_FailureIncludesOutput(t *testing.T) {
	ex := newTestExecutor(t, "docker compose", func(context.Context, string, string, ...string) ([]byte, error) {
		return []byte("no such service\n"), errors.New("exit status 1")
	})

	err := ex.Up(context.Background(), "/tmp/x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandFailed)
	assert.Contains(t, err.Error(), "no such service")
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestExecutor_TimeoutApplied(t *testing.T) {
	ex := newTestExecutor(t, "docker compose", func(ctx context.Context, _, _ string, _ ...string) ([]byte, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
		return nil, nil
	})

	require.NoError(t, ex.Down(context.Background(), "/tmp/x"))
}

func TestRunInDir_RealProcess(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	out, err := runInDir(context.Background(), dir, "pwd")
	require.NoError(t, err)
	assert.Equal(t, dir, strings.TrimSpace(string(out)))
}

func TestNopExecutor(t *testing.T) {
	ex := NewNopExecutor(logger.Nop())

	assert.NoError(t, ex.Up(context.Background(), "/nowhere"))
	assert.NoError(t, ex.Down(context.Background(), "/nowhere"))
}
