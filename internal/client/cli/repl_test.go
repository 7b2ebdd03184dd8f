package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn   bool
	loginCalls int
	listCalls  int
	docsCalls  int
}

func (s *stubExec) isLoggedIn() bool                { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error { s.loginCalls++; return nil }
func (s *stubExec) List(ctx context.Context) error  { s.listCalls++; return nil }
func (s *stubExec) Docs(ctx context.Context) error  { s.docsCalls++; return nil }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runWith(t *testing.T, s *stubExec, input string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), s, func() string { return "" }, scanner)
	return *lines
}

func TestREPL_Dispatch(t *testing.T) {
	s := &stubExec{}
	runWith(t, s, "login\nlist\nl\ndocs\nexit\n")

	assert.Equal(t, 1, s.loginCalls)
	assert.Equal(t, 2, s.listCalls)
	assert.Equal(t, 1, s.docsCalls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	s := &stubExec{}
	runWith(t, s, "login\n")
	assert.Equal(t, 1, s.loginCalls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runWith(t, &stubExec{}, "help\nquit\n")
	assert.Contains(t, strings.Join(out, ""), "login, exit")

	out = runWith(t, &stubExec{loggedIn: true}, "help\nquit\n")
	assert.Contains(t, strings.Join(out, ""), "docs")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := runWith(t, &stubExec{}, "frobnicate\nexit\n")
	assert.Contains(t, strings.Join(out, ""), "Unknown command: frobnicate")
}

func TestREPL_BlankLinesIgnored(t *testing.T) {
	s := &stubExec{}
	runWith(t, s, "\n   \nexit\n")
	assert.Zero(t, s.loginCalls)
}
