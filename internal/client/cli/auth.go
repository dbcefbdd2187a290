package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecgdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const minPasswordLength = 8

// Register prompts for account details, validates them locally and creates
// the account. A successful registration does NOT sign the user in; they
// are told to log in afterwards, so the password is entered twice anyway
// and typos are caught before the account exists.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(os.Stdout, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := validateNewPassword(password, confirmation); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	user, err := a.session.Register(ctx, email, string(password), fullName)
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Account created for %s. Please log in.", user.Email))
	return nil
}

// validateNewPassword enforces the account password rules before any
// network call is made.
func validateNewPassword(password, confirmation []byte) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}
	if !bytes.Equal(password, confirmation) {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

// Login prompts for credentials and authenticates via the session store.
// While a sign-in attempt is already running, a second one is refused.
func (a *App) Login(ctx context.Context) error {
	if a.session.Busy() {
		printlnFn("A sign-in attempt is already in progress")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as", email)
	return nil
}

// Logout tears down the session. Local sign-out always succeeds even when
// the server cannot be reached.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	printlnFn("Logged out")
}

// WhoAmI prints the cached identity of the current session.
func (a *App) WhoAmI() {
	u := a.session.Identity()
	if u == nil {
		printlnFn("Not logged in")
		return
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %d)", displayName(u), u.Email, u.ID))
}
