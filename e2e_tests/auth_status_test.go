package e2e_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthHelp(t *testing.T) {
	out := RequireCrawler(t, nil, "auth", "--help")
	assert.Contains(t, out.Stdout, "Inspect the GitHub credential configured for crawls")
	assert.Contains(t, out.Stdout, "status")
}

func TestAuthStatusWithoutToken(t *testing.T) {
	out := Crawler(t, nil, "auth", "status")
	assert.Equal(t, 1, out.ExitCode)
	assert.Contains(t, out.Stdout, "token: none")
}

func TestAuthStatusWithToken(t *testing.T) {
	out := RequireCrawler(t, []string{"GITHUB_TOKEN=ghp_e2etoken"}, "auth", "status")
	assert.Contains(t, out.Stdout, "token: present")
	assert.NotContains(t, out.Stdout+out.Stderr, "ghp_e2etoken")
}

func TestAuthStatusEmptyTokenCountsAsAbsent(t *testing.T) {
	out := Crawler(t, []string{"GITHUB_TOKEN="}, "auth", "status")
	assert.Equal(t, 1, out.ExitCode)
	assert.Contains(t, out.Stdout, "token: none")
}
