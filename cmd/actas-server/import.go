package main

import (
	"fmt"
	"os"

	"github.com/mikepea/actas/pkg/actas/importacion"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importUsersCmd = &cobra.Command{
	Use:   "import-users <file.csv>",
	Short: "Create users from a CSV file",
	Long: `Create one user per CSV row. The header names the columns:

  username,email,first_name,last_name,password

Rows whose username already exists are skipped. A blank password gives an
account that can only log in through Keycloak.`,
	Args: cobra.ExactArgs(1),
	RunE: runImportUsers,
}

func runImportUsers(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.log.Sync()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	result, err := importacion.ImportUsers(e.db, f)
	for _, msg := range result.Errors {
		e.log.Warn("row skipped", zap.String("reason", msg))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d usuarios creados, %d omitidos\n", result.Created, result.Skipped)
	if err != nil {
		return fmt.Errorf("import stopped: %w", err)
	}
	return nil
}
