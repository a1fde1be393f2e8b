package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/garden/internal/client/client"
	"github.com/dmitrijs2005/garden/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errLoginRequired = errors.New("login required")

// Register prompts the user for a name and password and attempts to create
// a new account via the AuthService.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login prompts the user for credentials and authenticates against the
// server. On success the session is saved locally, the mode switches to
// online and cached pages are dropped so like state is fetched for the new
// viewer.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}

	a.signedIn(userName)
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

// Logout wipes the saved session and forgets the viewer.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.signedIn("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// resume restores the session of a previous run, if any.
func (a *App) resume(ctx context.Context) {
	name, err := a.authService.Resume(ctx)
	switch {
	case err == nil:
		a.signedIn(name)
		a.setMode(ModeOnline)
		fmt.Fprintf(a.out, "Welcome back, %s\n", name)
	case errors.Is(err, client.ErrLocalDataNotAvailable):
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		a.logger.Warn(ctx, "session not resumed, server unavailable")
	default:
		a.logger.Warn(ctx, "session not resumed", "error", err)
	}
}

func (a *App) signedIn(name string) {
	a.userName = name
	if a.store != nil {
		a.store.Clear()
	}
	a.loaded = false
}
