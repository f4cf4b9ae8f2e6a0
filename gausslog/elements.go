package gausslog

import "strconv"

// symbols is indexed by atomic number; entry 0 is unused.
var symbols = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
}

var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		if z > 0 {
			m[s] = z
		}
	}
	return m
}()

// SymbolForNumber returns the element symbol for an atomic number,
// falling back to the number itself for elements beyond the table.
func SymbolForNumber(z int) string {
	if z > 0 && z < len(symbols) {
		return symbols[z]
	}
	return strconv.Itoa(z)
}

// NumberForSymbol returns the atomic number for an element symbol, or 0
// when the symbol is unknown.
func NumberForSymbol(symbol string) int {
	return numbers[symbol]
}
