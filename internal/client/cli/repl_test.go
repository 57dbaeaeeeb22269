package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeExec records which commands the REPL dispatched.
type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Ticket(ctx context.Context) error         { return f.record("ticket") }
func (f *fakeExec) Status(ctx context.Context) error         { return f.record("status") }
func (f *fakeExec) Products(ctx context.Context) error       { return f.record("products") }
func (f *fakeExec) Cart(ctx context.Context) error           { return f.record("cart") }
func (f *fakeExec) AddToCart(ctx context.Context) error      { return f.record("add") }
func (f *fakeExec) RemoveFromCart(ctx context.Context) error { return f.record("remove") }

func runScript(t *testing.T, a *fakeExec, script string) []string {
	t.Helper()

	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string {
		if a.isLoggedIn() {
			return "a@b.c"
		}
		return ""
	}, scanner)
	return lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	a := &fakeExec{}
	runScript(t, a, "login\nticket\nt\nstatus\nproducts\ncart\nadd\nremove\nlogout\nexit\n")

	assert.Equal(t, []string{
		"login", "ticket", "ticket", "status", "products",
		"cart", "add", "remove", "logout",
	}, a.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	a := &fakeExec{}
	lines := runScript(t, a, "help\nlogin\nhelp\nexit\n")

	var helps []string
	for _, l := range lines {
		if strings.Contains(l, "Available commands") {
			helps = append(helps, l)
		}
	}
	assert.Len(t, helps, 2)
	assert.Contains(t, helps[0], "register, login, products, exit")
	assert.Contains(t, helps[1], "(t)icket, status, products, cart, add, remove, logout, exit")
}

func TestRunREPL_UnknownCommandAndBlankLines(t *testing.T) {
	a := &fakeExec{}
	lines := runScript(t, a, "\n   \nfoobar\nquit\n")

	assert.Empty(t, a.calls)

	joined := strings.Join(lines, "")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	a := &fakeExec{}
	runScript(t, a, "status\n")

	// no exit command; the loop must stop once the input runs out
	assert.Equal(t, []string{"status"}, a.calls)
}
