package gate

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/thanzeeha/portfolio4/pkg/auth"
	"github.com/thanzeeha/portfolio4/pkg/cli"
)

// Guard blocks the panel until the operator supplies the admin secret. The
// secret is read without echo and checked through the same verifier the HTTP
// login uses.
type Guard struct {
	candidate *string
	verifier  auth.CredentialVerifier
}

func MakeGuard(verifier auth.CredentialVerifier) Guard {
	return Guard{verifier: verifier}
}

func (g *Guard) CaptureInput() error {
	cli.Warning("Admin password: ")

	input, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()

	if err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}

	if len(input) == 0 {
		return fmt.Errorf("password cannot be empty")
	}

	if len(input) > 1024 {
		return fmt.Errorf("password is too long")
	}

	candidate := string(input)
	g.candidate = &candidate

	return nil
}

func (g *Guard) Rejects() bool {
	if g.candidate == nil {
		return true
	}

	return !g.verifier.Verify(*g.candidate)
}
