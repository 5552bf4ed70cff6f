package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/alaaldainabdo/scalable-login-system/internal/client/client"
	"github.com/alaaldainabdo/scalable-login-system/internal/client/services"
	"github.com/alaaldainabdo/scalable-login-system/internal/common"
)

const promptAttempts = 3

// getRequiredText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getRequiredText = GetRequiredText
var getPassword = GetPassword

// Register prompts for a name, an email and a password and creates the
// account. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getRequiredText(a.reader, "Enter name", os.Stdout, promptAttempts)
	if err != nil {
		return err
	}

	email, err := getRequiredText(a.reader, "Enter email", os.Stdout, promptAttempts)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	created, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", describeError(err))
		return err
	}

	log.Printf("User created: %s", created)
	return nil
}

// Login prompts for credentials and stores the returned token. On failure
// the current session is left untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getRequiredText(a.reader, "Enter email", os.Stdout, promptAttempts)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		log.Printf("Login unsuccessful: %s", describeError(err))
		return err
	}

	a.setEmail(email)
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// WhoAmI prints the identity behind the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.authService.WhoAmI(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			a.setEmail("")
		}
		log.Printf("whoami: %s", describeError(err))
		return err
	}

	a.setEmail(s.Email)
	printlnFn("email:", s.Email)
	printlnFn("id:   ", s.ID)
	return nil
}

// Logout drops the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.setEmail("")
	log.Printf("Logged out")
	return nil
}

// describeError turns client errors into something a user can act on.
func describeError(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	case errors.Is(err, services.ErrNotLoggedIn):
		return err.Error()
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return err.Error()
	}
}
