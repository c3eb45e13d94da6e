package entity

// Sedes físicas del negocio. Cada item y cada asiento del ledger queda
// etiquetado con la sede a la que pertenece.
const (
	LocationSedeCentro = "sede-centro"
	LocationSedeNorte  = "sede-norte"
	LocationSedeSur    = "sede-sur"
)

// Locations lista de sedes válidas.
var Locations = []string{LocationSedeCentro, LocationSedeNorte, LocationSedeSur}

// ValidLocation indica si la sede existe.
func ValidLocation(location string) bool {
	for _, l := range Locations {
		if l == location {
			return true
		}
	}
	return false
}
