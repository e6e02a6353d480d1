package commands

import (
	"context"
	"fmt"

	"StockYard/internal/cli/session"
	"StockYard/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Clear the stored auth token" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// Logout cannot fail: both in-memory and persisted token go away.
	sess := session.New(session.FileStore{Path: cfg.TokenFile})
	sess.Logout()
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
