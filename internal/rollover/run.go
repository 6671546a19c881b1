package rollover

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/avosch/rollbook/internal/store"
)

// Run performs a full year rollover: prepare the new book from the previous
// file, read balances from the previous book, synthesize opening
// transactions, save. Both sessions are released on every exit path. A
// failure partway leaves the new file as-is on disk; nothing is rolled back.
func Run(previousFile, newFile string, openingDate time.Time, params Params) ([]OpeningEntry, error) {
	pterm.Info.Printfln("Creating new year's book %s from previous year's book %s.", newFile, previousFile)
	bookNew, err := PrepareNewYearFile(previousFile, newFile)
	if err != nil {
		return nil, err
	}
	defer bookNew.Close()

	pterm.Info.Println("Reading balances from previous year's book.")
	bookPrev, err := store.Open(previousFile, store.OpenReadOnly)
	if err != nil {
		return nil, err
	}
	defer bookPrev.Close()

	balances, err := ExtractBalances(bookPrev)
	if err != nil {
		return nil, err
	}

	entries, err := SynthesizeOpening(bookNew, balances, openingDate, params)
	if err != nil {
		return nil, err
	}

	pterm.Info.Println("Saving new year's book.")
	if err := bookNew.Save(); err != nil {
		return nil, err
	}

	return entries, nil
}
