package git_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gverrors "gitvend.dev/gitvend/internal/errors"
	"gitvend.dev/gitvend/internal/git"
)

// recordingRunner captures runner invocations for assertion. Results and
// errors can be stubbed per argument vector.
type recordingRunner struct {
	calls   [][]string
	dirs    []string
	results map[string]*git.Result
	errs    map[string]error
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{
		results: map[string]*git.Result{},
		errs:    map[string]error{},
	}
}

func (r *recordingRunner) Run(_ context.Context, dir string, args ...string) (*git.Result, error) {
	r.calls = append(r.calls, args)
	r.dirs = append(r.dirs, dir)
	key := strings.Join(args, " ")
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	if result, ok := r.results[key]; ok {
		return result, nil
	}
	return &git.Result{}, nil
}

func (r *recordingRunner) stubStdout(stdout string, args ...string) {
	r.results[strings.Join(args, " ")] = &git.Result{Stdout: stdout}
}

func (r *recordingRunner) stubError(err error, args ...string) {
	r.errs[strings.Join(args, " ")] = err
}

func TestClone(t *testing.T) {
	t.Run("creates directory and runs git", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "org", "repo")
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))
		require.Equal(t, dir, repo.Dir())

		err := repo.Clone(context.Background(), "https://example.com/repo.git", git.CloneOptions{})
		require.NoError(t, err)

		require.DirExists(t, dir)
		require.Equal(t, [][]string{
			{"git", "clone", "https://example.com/repo.git", dir},
		}, runner.calls)
		require.Equal(t, []string{""}, runner.dirs)
	})

	t.Run("submodule flags precede url and path", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "repo")
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.Clone(context.Background(), "git@host:org/r.git", git.CloneOptions{Submodules: true})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "clone", "--recurse-submodules", "--remote-submodules", "git@host:org/r.git", dir},
		}, runner.calls)
	})

	t.Run("fails before running anything when directory exists", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.Clone(context.Background(), "https://example.com/repo.git", git.CloneOptions{})
		require.ErrorIs(t, err, gverrors.ErrRepoExists)

		var existsErr *gverrors.RepoExistsError
		require.ErrorAs(t, err, &existsErr)
		require.Equal(t, "https://example.com/repo.git", existsErr.URL)
		require.Equal(t, dir, existsErr.Path)
		require.Contains(t, err.Error(), "https://example.com/repo.git")
		require.Contains(t, err.Error(), dir)

		require.Empty(t, runner.calls)
	})

	t.Run("propagates runner failure", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "repo")
		runner := newRecordingRunner()
		cmdErr := gverrors.NewCommandError([]string{"git", "clone"}, "", "fatal: repository not found", nil)
		runner.stubError(cmdErr, "git", "clone", "https://example.com/repo.git", dir)
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.Clone(context.Background(), "https://example.com/repo.git", git.CloneOptions{})
		require.ErrorIs(t, err, cmdErr)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("fetches then fast-forwards", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.Update(context.Background())
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "-C", dir, "fetch", "--all", "--prune", "--tags"},
			{"git", "-C", dir, "merge", "--ff-only"},
		}, runner.calls)
		require.Equal(t, []string{"", ""}, runner.dirs)
	})

	t.Run("stops after a failed fetch", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		cmdErr := gverrors.NewCommandError([]string{"git", "fetch"}, "", "network down", nil)
		runner.stubError(cmdErr, "git", "-C", dir, "fetch", "--all", "--prune", "--tags")
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.Update(context.Background())
		require.ErrorIs(t, err, cmdErr)
		require.Len(t, runner.calls, 1)
	})
}

func TestSwitchAndUpdate(t *testing.T) {
	t.Run("branch fetches, switches, fast-forwards", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.SwitchAndUpdate(context.Background(), "feature-branch", git.SwitchOptions{})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "-C", dir, "fetch", "--all", "--prune", "--tags"},
			{"git", "-C", dir, "switch", "feature-branch"},
			{"git", "-C", dir, "merge", "--ff-only"},
		}, runner.calls)
	})

	t.Run("unknown tag fetches before detaching", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.SwitchAndUpdate(context.Background(), "v1.0", git.SwitchOptions{Tag: true})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "-C", dir, "tag", "--list", "v1.0"},
			{"git", "-C", dir, "fetch", "--all", "--prune", "--tags"},
			{"git", "-C", dir, "switch", "--detach", "v1.0"},
		}, runner.calls)
	})

	t.Run("known tag skips the fetch", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		runner.stubStdout("v1.0\n", "git", "-C", dir, "tag", "--list", "v1.0")
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.SwitchAndUpdate(context.Background(), "v1.0", git.SwitchOptions{Tag: true})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "-C", dir, "tag", "--list", "v1.0"},
			{"git", "-C", dir, "switch", "--detach", "v1.0"},
		}, runner.calls)
	})

	t.Run("failed tag lookup still fetches", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		cmdErr := gverrors.NewCommandError([]string{"git", "tag"}, "", "boom", nil)
		runner.stubError(cmdErr, "git", "-C", dir, "tag", "--list", "v1.0")
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.SwitchAndUpdate(context.Background(), "v1.0", git.SwitchOptions{Tag: true})
		require.NoError(t, err)

		require.Equal(t, [][]string{
			{"git", "-C", dir, "tag", "--list", "v1.0"},
			{"git", "-C", dir, "fetch", "--all", "--prune", "--tags"},
			{"git", "-C", dir, "switch", "--detach", "v1.0"},
		}, runner.calls)
	})

	t.Run("no merge follows a tag checkout", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		repo := git.NewRepository(dir, git.WithRunner(runner))

		err := repo.SwitchAndUpdate(context.Background(), "v1.0", git.SwitchOptions{Tag: true})
		require.NoError(t, err)

		for _, call := range runner.calls {
			require.NotContains(t, call, "merge")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("passes argv through scoped to the repo dir", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		runner.stubStdout("ok\n", "make", "-j8", "all")
		repo := git.NewRepository(dir, git.WithRunner(runner))

		result, err := repo.Run(context.Background(), "make", "-j8", "all")
		require.NoError(t, err)

		require.Equal(t, [][]string{{"make", "-j8", "all"}}, runner.calls)
		require.Equal(t, []string{dir}, runner.dirs)
		require.Equal(t, "ok\n", result.Stdout)
	})

	t.Run("propagates runner failure", func(t *testing.T) {
		dir := t.TempDir()
		runner := newRecordingRunner()
		cmdErr := gverrors.NewCommandError([]string{"make"}, "", "no rule", nil)
		runner.stubError(cmdErr, "make")
		repo := git.NewRepository(dir, git.WithRunner(runner))

		_, err := repo.Run(context.Background(), "make")
		require.ErrorIs(t, err, cmdErr)
	})
}
