package rollover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pterm/pterm"

	"github.com/avosch/rollbook/internal/store"
)

// ErrTargetExists is returned when the new year's book file is already
// present. The target is never overwritten.
var ErrTargetExists = errors.New("target book file already exists")

// PrepareNewYearFile creates the new year's book by copying the previous
// year's file and deleting every transaction from the copy. The returned book
// keeps the original account hierarchy but holds no transactions.
func PrepareNewYearFile(previousFile, newFile string) (*store.Book, error) {
	if _, err := os.Stat(newFile); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetExists, newFile)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking target file %s: %w", newFile, err)
	}

	pterm.Debug.Println("Copying book file.")
	if err := copyFile(previousFile, newFile); err != nil {
		return nil, err
	}

	pterm.Debug.Println("Opening new year's book file.")
	book, err := store.Open(newFile, store.OpenNormal)
	if err != nil {
		return nil, err
	}

	if err := purgeTransactions(book); err != nil {
		book.Close()
		return nil, err
	}

	return book, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening previous book file: %w", err)
	}
	defer in.Close()

	// O_EXCL backs up the Stat check against a race on the target path.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating new book file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying book file: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("syncing new book file: %w", err)
	}
	return out.Close()
}

// purgeTransactions walks every account's splits and destroys the owning
// transactions. A split with no resolvable parent transaction is a data
// anomaly in the source file: it is logged and skipped, never fatal.
func purgeTransactions(book *store.Book) error {
	pterm.Debug.Println("Deleting all transactions.")

	root, err := book.RootAccount()
	if err != nil {
		return err
	}
	accounts, err := book.Descendants(root.ID)
	if err != nil {
		return err
	}

	purged := make(map[int64]bool)

	for _, account := range accounts {
		splits, err := book.SplitsByAccount(account.ID)
		if err != nil {
			return err
		}

		for _, split := range splits {
			if split.TransactionID == nil {
				warnOrphanSplit(book, account)
				continue
			}

			txID := *split.TransactionID
			if purged[txID] {
				continue
			}

			if _, err := book.TransactionByID(txID); err != nil {
				if errors.Is(err, store.ErrRecordNotFound) {
					// Dangling reference, same anomaly as a missing parent.
					warnOrphanSplit(book, account)
					continue
				}
				return err
			}

			if err := book.DeleteTransaction(txID); err != nil {
				return err
			}
			purged[txID] = true
		}
	}

	return nil
}

func warnOrphanSplit(book *store.Book, account *store.Account) {
	name, err := book.FullName(account)
	if err != nil {
		name = account.Name
	}
	pterm.Warning.Printfln("Split without parent transaction found in account %s.", name)
}
