package commands

import (
	"bufio"
	"fmt"
	"strings"

	"StockYard/internal/cli/api"
	"StockYard/internal/cli/service"
	"StockYard/internal/cli/session"
	"StockYard/internal/config"
)

// newStack wires the per-invocation client stack: file-backed session,
// authenticated gateway and the inventory state.
func newStack(cfg *config.Config) (*session.Session, *api.Client, *service.Inventory) {
	sess := session.New(session.FileStore{Path: cfg.TokenFile})
	gw := api.New(cfg.ServerURL, sess)
	return sess, gw, service.NewInventory(gw)
}

// promptConfirmer asks a yes/no question on the CLI's reader/writer.
type promptConfirmer struct{}

func (promptConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// yesConfirmer answers every question with yes (--yes flag).
type yesConfirmer struct{}

func (yesConfirmer) Confirm(string) (bool, error) { return true, nil }
