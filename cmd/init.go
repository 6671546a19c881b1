package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/avosch/rollbook/internal/constants"
	"github.com/avosch/rollbook/internal/store"
)

var initBare bool

func NewInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Create a fresh empty book file",
		Long: `Init creates a new book file with the standard schema and, unless --bare
is given, the five standard top-level category accounts.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runInit,
	}

	initCmd.Flags().BoolVar(&initBare, "bare", false, "Create only the root account, no category accounts")

	return initCmd
}

// Standard top-level chart, mirrored from the usual book layout. These are
// placeholders: postable accounts get created beneath them.
var defaultTopAccounts = []struct {
	Name string
	Type string
}{
	{"Assets", constants.TypeAsset},
	{"Liabilities", constants.TypeLiability},
	{"Income", constants.TypeIncome},
	{"Expenses", constants.TypeExpense},
	{"Equity", constants.TypeEquity},
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("book file %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking book file %s: %w", path, err)
	}

	book, err := store.Open(path, store.OpenNormal)
	if err != nil {
		return err
	}
	defer book.Close()

	if !initBare {
		root, err := book.RootAccount()
		if err != nil {
			return err
		}
		for _, acc := range defaultTopAccounts {
			_, err := book.CreateAccount(store.AccountParams{
				Name:        acc.Name,
				Type:        acc.Type,
				ParentID:    root.ID,
				Placeholder: true,
			})
			if err != nil {
				return err
			}
		}
	}

	if err := book.Save(); err != nil {
		return err
	}

	pterm.Success.Printf("Created empty book %s\n", path)
	return nil
}
