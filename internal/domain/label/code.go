// Package label implementa el esquema de códigos para etiquetas QR:
//
//	{tagBodega}-{refItem}-{timestamp}-{índice}
//
// Este formato es un contrato público: el escáner lo parsea separando por
// guiones, con mínimo 4 partes y el tag como primera parte.
package label

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// itemRefLen caracteres hex del ID tomados como referencia corta del item.
const itemRefLen = 8

// Code es un código de etiqueta ya parseado.
type Code struct {
	BucketTag string
	ItemRef   string
	Timestamp time.Time
	Index     int
}

// ItemRef deriva la referencia corta del item a partir de su ID: los últimos
// 8 caracteres del UUID sin guiones, para que el código completo siga siendo
// parseable por split("-").
func ItemRef(itemID string) string {
	ref := strings.ReplaceAll(itemID, "-", "")
	if len(ref) > itemRefLen {
		ref = ref[len(ref)-itemRefLen:]
	}
	return ref
}

// Generate produce count códigos únicos para un item de la bodega dada,
// todos con el mismo timestamp y sufijos 0..count-1.
func Generate(cfg entity.BucketConfig, itemID string, count int, now time.Time) ([]string, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidInput
	}
	ref := ItemRef(itemID)
	if ref == "" {
		return nil, domain.ErrInvalidInput
	}
	ts := now.Unix()
	codes := make([]string, 0, count)
	for i := 0; i < count; i++ {
		codes = append(codes, fmt.Sprintf("%s-%s-%d-%d", cfg.Tag, ref, ts, i))
	}
	return codes, nil
}

// Parse valida y descompone un código de etiqueta. Reglas del contrato:
// mínimo 4 partes separadas por guion, primera parte un tag de bodega
// conocido, últimas dos partes numéricas (timestamp unix e índice). Las
// partes intermedias forman la referencia del item (puede contener guiones
// en códigos de sistemas anteriores).
func Parse(code string) (Code, error) {
	parts := strings.Split(code, "-")
	if len(parts) < 4 {
		return Code{}, domain.ErrInvalidInput
	}
	if _, ok := entity.BucketByTag(parts[0]); !ok {
		return Code{}, domain.ErrInvalidInput
	}
	ts, err := strconv.ParseInt(parts[len(parts)-2], 10, 64)
	if err != nil {
		return Code{}, domain.ErrInvalidInput
	}
	idx, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || idx < 0 {
		return Code{}, domain.ErrInvalidInput
	}
	return Code{
		BucketTag: parts[0],
		ItemRef:   strings.Join(parts[1:len(parts)-2], "-"),
		Timestamp: time.Unix(ts, 0),
		Index:     idx,
	}, nil
}
