package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML deck parameters file
type DeckParameters struct {
	Title       string `yaml:"Title"`       // Generator line of the deck header comment
	ElementType string `yaml:"ElementType"` // Solver element type of the connectivity block
}

// NewDeckParameters returns the defaults, matching the 6 node triangular
// shell element output. A parsed file overrides only the fields it names.
func NewDeckParameters() *DeckParameters {
	return &DeckParameters{
		Title:       "Generated by mesh2inp.",
		ElementType: "S6",
	}
}

func (dp *DeckParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, dp)
}

func (dp *DeckParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", dp.Title)
	fmt.Printf("[%s]\t\t\t= Element Type\n", dp.ElementType)
}
