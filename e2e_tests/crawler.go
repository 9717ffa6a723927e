package e2e_tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	"github.com/kr/text"
	"github.com/stretchr/testify/require"
)

var crawlerCmdPath string

func init() {
	cmd := exec.Command("go", "build", "../cmd/test-crawler")
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic(err)
	}
	var err error
	crawlerCmdPath, err = filepath.Abs("./test-crawler")
	if err != nil {
		panic(err)
	}
}

type CrawlerOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Cmd runs exe with the given environment and arguments, capturing the exit
// code and both output streams for assertions.
func Cmd(t *testing.T, env []string, exe string, args ...string) CrawlerOutput {
	t.Helper()
	cmd := exec.Command(exe, args...)
	cmd.Env = env
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	var exitError *exec.ExitError
	if err != nil && !errors.As(err, &exitError) {
		t.Fatal(err)
	}

	output := CrawlerOutput{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	t.Logf("Running test-crawler\n"+
		"args: %v\n"+
		"exit code: %v\n"+
		"stdout:\n"+
		"%s"+
		"stderr:\n"+
		"%s",
		args,
		cmd.ProcessState.ExitCode(),
		text.Indent(stdout.String(), "  "),
		text.Indent(stderr.String(), "  "),
	)
	return output
}

// Crawler runs the built binary in a scrubbed environment: the config file
// search paths point into an empty temp home, and no access token is present
// unless extraEnv provides one.
func Crawler(t *testing.T, extraEnv []string, args ...string) CrawlerOutput {
	t.Helper()
	home := t.TempDir()
	env := []string{
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + filepath.Join(home, ".config"),
		"PATH=" + os.Getenv("PATH"),
	}
	env = append(env, extraEnv...)
	args = append([]string{"--debug"}, args...)
	return Cmd(t, env, crawlerCmdPath, args...)
}

func RequireCrawler(t *testing.T, extraEnv []string, args ...string) CrawlerOutput {
	t.Helper()
	output := Crawler(t, extraEnv, args...)
	require.Equal(
		t,
		0,
		output.ExitCode,
		"test-crawler %s: exited with %v",
		args,
		output.ExitCode,
	)
	return output
}
