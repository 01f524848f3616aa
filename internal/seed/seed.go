// Package seed holds the first-run dataset for every persisted slot.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/nikkjke/finance-tracker/internal/models"
)

//go:embed seed.yaml
var defaultYAML []byte

// Dataset is the initial content of the store plus the demo credential table.
type Dataset struct {
	Users []models.User `yaml:"users"`
	// Credentials maps email to the plain-text demo password.
	Credentials map[string]string `yaml:"credentials"`
	Expenses    []models.Expense  `yaml:"expenses"`
	Budgets     []models.Budget   `yaml:"budgets"`
}

// Default decodes the embedded dataset.
func Default() (Dataset, error) {
	return Parse(defaultYAML)
}

// Parse decodes a dataset from YAML.
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode seed: %w", err)
	}
	return ds, nil
}
