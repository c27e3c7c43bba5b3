package specification

import "gorm.io/gorm"

// ByEstado filters tickets by their state ("pendiente", "atendido", ...).
type ByEstado struct {
	Estado string
}

func (s ByEstado) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("estado = ?", s.Estado)
}

// ByCodigoPrefix selects one ticket family: "Res-" reservations, "QJ-" complaints.
type ByCodigoPrefix struct {
	Prefix string
}

func (s ByCodigoPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("codigo_ticket LIKE ?", s.Prefix+"%")
}

// NewestFirst orders by creation time, most recent first.
type NewestFirst struct{}

func (NewestFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("fecha_creacion DESC")
}

// Disponible keeps only rooms currently offered.
type Disponible struct{}

func (Disponible) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("disponible = ?", true)
}
