package domain

// Instrument represents a tradable security with a current quoted price.
// The price is written only by the catalog's SetPrice; the trade engine
// treats it as a read-time snapshot.
type Instrument struct {
	InstrumentID string
	Ticker       string
	Name         string
	Sector       string
	Price        int64 // cents, always positive
}
