package employee

// Employee is the canonical employee shape. IsActive defaults to true on
// insert and has no toggle operation; it travels on reads only.
type Employee struct {
	ID         int64  `json:"id"`
	NIK        string `json:"nik"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary int64  `json:"base_salary"`
	IsActive   bool   `json:"is_active"`
}

// NewEmployee is the construction-time view; the store assigns the id.
type NewEmployee struct {
	NIK        string `json:"nik"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	BaseSalary int64  `json:"base_salary"`
}
