package commands

import (
	"context"
	"fmt"

	"StockYard/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show session and server settings" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sess, _, _ := newStack(cfg)
	fmt.Fprintf(Out, "Server:    %s\n", cfg.ServerURL)
	fmt.Fprintf(Out, "Token file: %s\n", cfg.TokenFile)
	if sess.Authenticated() {
		fmt.Fprintln(Out, "Session:   logged in")
	} else {
		fmt.Fprintln(Out, "Session:   not logged in")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
