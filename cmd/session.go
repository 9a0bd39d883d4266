package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/greendaybank/greenday-cli/internal/ports"
)

var errNoUser = errors.New("no user selected: pass --user or log in via the dashboard")

// resolveIdentity picks the acting user: the --user flag when given,
// otherwise the last user remembered in the profile file.
func resolveIdentity(cmd *cobra.Command, a *app, user string) (domain.Identity, error) {
	if user != "" {
		return domain.Identity(user), nil
	}

	profile, err := a.profiles.Load(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}
	if profile.LastUser.IsZero() {
		return "", errNoUser
	}

	return profile.LastUser, nil
}

// beginSession logs the identity in and remembers it for the next invocation.
func beginSession(cmd *cobra.Command, a *app, user string) (domain.Identity, error) {
	identity, err := resolveIdentity(cmd, a, user)
	if err != nil {
		return "", err
	}

	if err := a.service.Login(cmd.Context(), identity); err != nil {
		return "", fmt.Errorf("log in as %s: %w", identity, err)
	}

	if err := a.profiles.Save(cmd.Context(), ports.Profile{LastUser: identity, UpdatedAt: a.now()}); err != nil {
		return "", fmt.Errorf("save profile: %w", err)
	}

	return identity, nil
}
