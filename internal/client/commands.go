package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// stdinArg selects standard input as the document source of push.
const stdinArg = "-"

var errPasswordRequired = errors.New("password is required: use --password or LEDGER_PASSWORD")

func (a *App) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is alive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.ledgerClient()
			if err != nil {
				return err
			}
			if err = c.Ping(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "pong")
			return nil
		},
	}
}

func (a *App) pullCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the stored ledger document",
		Long: `Download the stored ledger document and print it to standard output,
or write it to the file given with --output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.password == "" {
				return errPasswordRequired
			}

			c, err := a.ledgerClient()
			if err != nil {
				return err
			}
			doc, err := c.Pull(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(doc))
				return err
			}

			if err = os.WriteFile(output, doc, 0o600); err != nil {
				return fmt.Errorf("error writing %s: %w", output, err)
			}
			a.logger.Info().Str("file", output).Int("bytes", len(doc)).Msg("ledger saved")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file instead of stdout")

	return cmd
}

func (a *App) pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <file|->",
		Short: "Replace the stored ledger document",
		Long: `Read a JSON object from the given file, or from standard input when the
argument is "-", and make it the new stored ledger document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.password == "" {
				return errPasswordRequired
			}

			doc, err := readDocument(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			// the server decides on the ledger shape; only reject what it
			// would never accept
			if err = validators.NewLedgerValidator(false).Validate(cmd.Context(), doc); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			c, err := a.ledgerClient()
			if err != nil {
				return err
			}
			if err = c.Push(cmd.Context(), doc); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			a.buildInfo.Print(cmd.OutOrStdout())
		},
	}
}

func readDocument(stdin io.Reader, source string) (models.LedgerDocument, error) {
	var (
		data []byte
		err  error
	)
	if source == stdinArg {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}

	return models.LedgerDocument(bytes.TrimSpace(data)), nil
}
