package mock

import "github.com/DavidFarrell/govscrape"

var _ govscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of govscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
