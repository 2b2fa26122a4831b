package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wichananm65/pet-shop-checkout/internal/addressapi"
	"github.com/wichananm65/pet-shop-checkout/internal/addressform"
	"github.com/wichananm65/pet-shop-checkout/internal/config"
	"github.com/wichananm65/pet-shop-checkout/internal/logger"
	"github.com/wichananm65/pet-shop-checkout/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "checkout: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.Email == "" || cfg.Password == "" {
		return errors.New("CHECKOUT_EMAIL and CHECKOUT_PASSWORD must be set")
	}

	// the terminal belongs to the program, so logs go to a file
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	log := logger.New(f, cfg.Env, cfg.LogLevel)

	client := addressapi.New(cfg.APIURL, cfg.Timeout)
	in, err := client.SignIn(cfg.Email, cfg.Password)
	if err != nil {
		return err
	}
	session := addressform.NewSession(in.Token)

	list, err := client.ListAddresses(session.Token())
	if err != nil {
		return err
	}
	log.Info().Int("user_id", in.User.ID).Int("addresses", len(list)).Msg("signed in")

	m := tui.New(tui.Options{
		API:         client,
		Session:     session,
		Addresses:   list,
		Log:         log,
		SubmitGuard: cfg.SubmitGuard,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
