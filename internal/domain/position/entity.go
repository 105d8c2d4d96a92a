package position

import "github.com/shopspring/decimal"

// Position is a job position (jabatan). Nama is the natural key: there is
// no surrogate id, so updates and deletes address rows by the current
// name. Tunjangan is the monthly allowance, numeric(10,2) on the backend.
type Position struct {
	Nama      string          `json:"nama"`
	Tunjangan decimal.Decimal `json:"tunjangan"`
}

type NewPosition struct {
	Nama      string          `json:"nama"`
	Tunjangan decimal.Decimal `json:"tunjangan"`
}
