package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/efreitasn/papertrade/internal/domain"
	"github.com/efreitasn/papertrade/internal/store"
)

// seedInstrument is one row of the JSON seed file.
type seedInstrument struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Price  float64 `json:"price"`
}

// defaultSeed is used when no seed file is configured.
var defaultSeed = []seedInstrument{
	{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Tech", Price: 150.00},
	{Ticker: "TSLA", Name: "Tesla Inc.", Sector: "Auto", Price: 700.00},
	{Ticker: "GOOGL", Name: "Google", Sector: "Tech", Price: 2500.00},
}

// seedCatalog populates the instrument catalog, either from the JSON
// file at path or from the built-in default listing when path is empty.
func seedCatalog(instruments *store.InstrumentStore, path string) error {
	seed := defaultSeed
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading seed file: %w", err)
		}
		seed = nil
		if err := json.Unmarshal(data, &seed); err != nil {
			return fmt.Errorf("parsing seed file: %w", err)
		}
	}

	for _, row := range seed {
		price, err := domain.DollarsToCents(row.Price)
		if err != nil {
			return fmt.Errorf("instrument %s: %w", row.Ticker, err)
		}
		ins := &domain.Instrument{
			InstrumentID: uuid.New().String(),
			Ticker:       row.Ticker,
			Name:         row.Name,
			Sector:       row.Sector,
			Price:        price,
		}
		if err := instruments.Add(ins); err != nil {
			return fmt.Errorf("instrument %s: %w", row.Ticker, err)
		}
	}
	return nil
}
