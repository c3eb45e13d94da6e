package entity

import "github.com/shopspring/decimal"

// Bodegas de stock (buckets). Cada una agrupa items de un mismo estado de
// almacenamiento dentro de una sede.
const (
	BucketCongelados    = "congelados"
	BucketDescongelando = "descongelando"
	BucketSecos         = "secos"
	BucketDesechables   = "desechables"
)

// BucketConfig es la política estática de una bodega: categorías permitidas,
// unidad y umbral mínimo por defecto, etiqueta corta para los códigos QR y
// bodega destino permitida para traslados. No es estado mutable.
type BucketConfig struct {
	Name             string
	Tag              string // etiqueta de 2 letras usada en los códigos de etiqueta
	Categories       []string
	DefaultUnit      string
	DefaultThreshold decimal.Decimal
	TransferTo       string // bodega destino permitida; vacío = sin traslados
	HasStatus        bool   // los items llevan estado (en-proceso / listo)
}

// Estados de un item en bodegas con estado (descongelando).
const (
	StatusEnProceso = "en-proceso"
	StatusListo     = "listo"
)

var bucketTable = map[string]BucketConfig{
	BucketCongelados: {
		Name:             BucketCongelados,
		Tag:              "CG",
		Categories:       []string{"carnes", "pollo", "pescado", "preparados"},
		DefaultUnit:      "kg",
		DefaultThreshold: decimal.NewFromInt(10),
		TransferTo:       BucketDescongelando,
	},
	BucketDescongelando: {
		Name:             BucketDescongelando,
		Tag:              "DC",
		Categories:       []string{"carnes", "pollo", "pescado", "preparados"},
		DefaultUnit:      "kg",
		DefaultThreshold: decimal.Zero,
		TransferTo:       BucketCongelados, // retorno al origen
		HasStatus:        true,
	},
	BucketSecos: {
		Name:             BucketSecos,
		Tag:              "SC",
		Categories:       []string{"granos", "enlatados", "condimentos", "bebidas"},
		DefaultUnit:      "kg",
		DefaultThreshold: decimal.NewFromInt(5),
	},
	BucketDesechables: {
		Name:             BucketDesechables,
		Tag:              "DP",
		Categories:       []string{"empaques", "servilletas", "cubiertos", "vasos"},
		DefaultUnit:      "unidades",
		DefaultThreshold: decimal.NewFromInt(10),
	},
}

// BucketByName devuelve la configuración de una bodega, o false si no existe.
func BucketByName(name string) (BucketConfig, bool) {
	cfg, ok := bucketTable[name]
	return cfg, ok
}

// BucketByTag devuelve la configuración de la bodega con esa etiqueta QR.
func BucketByTag(tag string) (BucketConfig, bool) {
	for _, cfg := range bucketTable {
		if cfg.Tag == tag {
			return cfg, true
		}
	}
	return BucketConfig{}, false
}

// Buckets lista los nombres de bodega en orden estable.
func Buckets() []string {
	return []string{BucketCongelados, BucketDescongelando, BucketSecos, BucketDesechables}
}

// ValidCategory indica si la categoría pertenece al enum de la bodega.
func (c BucketConfig) ValidCategory(category string) bool {
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}
