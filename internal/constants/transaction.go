package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	// Source label recorded for manually entered price quotes.
	PriceSourceUser = "user:price-editor"
)
