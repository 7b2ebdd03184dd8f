package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for the username (phone number) and password and asks
// the controller to authenticate. Failure messages arrive verbatim
// from the backend and are shown as-is; on success the fresh list is
// rendered immediately.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username (phone number)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.controller.Login(ctx, username, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Logged in as: %s\n", username)
	renderAnnouncements(a.out, a.controller.Announcements())
	return nil
}

// List renders the stored announcement list.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	renderAnnouncements(a.out, a.controller.Announcements())
	return nil
}

// Docs probes the documents of the first stored announcement that has
// any and renders the outcome. Probe errors never disturb the list.
func (a *App) Docs(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if err := a.controller.ProbeDocuments(ctx); err != nil {
		fmt.Fprintf(a.out, "Document probe failed: %s\n", err.Error())
		return err
	}

	renderProbeResult(a.out, a.controller.ProbeResult())
	return nil
}
