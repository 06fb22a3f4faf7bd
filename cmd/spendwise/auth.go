package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/cli"
	"github.com/spendwise/spendwise/internal/common"
	"github.com/spendwise/spendwise/internal/storage"
)

// errQuit unwinds the menu loops when the user chooses to exit.
var errQuit = errors.New("quit")

func runInteractive(cmd *cobra.Command, _ []string) error {
	files, err := storage.New(dataDir())
	if err != nil {
		return err
	}

	prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	creds := auth.NewStore(files)

	err = authMenu(cmd.Context(), prompter, creds, files)
	if errors.Is(err, errQuit) || errors.Is(err, cli.ErrInputCancelled) {
		fmt.Fprintln(prompter.Writer(), cli.FormatInfo("Goodbye."))
		return nil
	}
	return err
}

// authMenu loops until the user exits: login into a session, or register.
func authMenu(ctx context.Context, p *cli.Prompter, creds *auth.Store, files *storage.FileStore) error {
	w := p.Writer()
	for {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderBox("Spendwise Budget Tracker",
			"1. Login\n2. Register\n3. Exit"))

		choice, err := p.Choice(ctx, "Choice", []string{"1", "2", "3"})
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := login(ctx, p, creds, files); err != nil {
				return err
			}
		case "2":
			if err := register(ctx, p, creds); err != nil {
				return err
			}
		case "3":
			return errQuit
		}
	}
}

func login(ctx context.Context, p *cli.Prompter, creds *auth.Store, files *storage.FileStore) error {
	w := p.Writer()

	username, err := p.Line(ctx, "Username")
	if err != nil {
		return err
	}
	password, err := p.Password(ctx, "Password")
	if err != nil {
		return err
	}

	ok, err := creds.Verify(username, password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, cli.FormatError(common.ErrBadCredentials.Error()))
		return nil
	}

	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("Welcome back, %s!", username)))
	return sessionMenu(ctx, p, creds, files, username)
}

func register(ctx context.Context, p *cli.Prompter, creds *auth.Store) error {
	w := p.Writer()

	username, err := p.Line(ctx, "Choose username")
	if err != nil {
		return err
	}
	if !auth.ValidUsername(username) {
		fmt.Fprintln(w, cli.FormatError("Usernames may only contain letters, digits, underscore, and hyphen."))
		return nil
	}

	taken, err := creds.Exists(username)
	if err != nil {
		return err
	}
	if taken {
		fmt.Fprintln(w, cli.FormatError(common.ErrUserExists.Error()))
		return nil
	}

	password, err := p.Password(ctx, "Choose password")
	if err != nil {
		return err
	}

	if err := creds.Register(username, password); err != nil {
		fmt.Fprintln(w, cli.FormatError(common.Message(err)))
		return nil
	}

	fmt.Fprintln(w, cli.FormatSuccess("Registered. You can log in now."))
	return nil
}
