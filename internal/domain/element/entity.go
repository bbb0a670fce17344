package element

// Element is one row of the static periodic-table dataset. The dataset is
// loaded once at startup and never mutated.
type Element struct {
	Symbol                string  `json:"symbol"`
	Name                  string  `json:"name"`
	AtomicNumber          int     `json:"atomic_number"`
	AtomicWeight          float64 `json:"atomic_weight"`
	Group                 int     `json:"group"`
	Period                int     `json:"period"`
	State                 string  `json:"state"`
	ElectronConfiguration string  `json:"electron_configuration"`
	Density               float64 `json:"density"`
}
