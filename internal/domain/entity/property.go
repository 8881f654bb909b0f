package entity

import "time"

// Tipos de propiedad gestionados por el portal.
const (
	PropertyFlat = "flat"
	PropertyPG   = "pg"
)

// Property es un inmueble (flat o PG) administrado por un propietario.
type Property struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Type      string    `json:"type"` // flat | pg
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Units     int       `json:"units,omitempty"`    // camas/habitaciones para PG
	Occupied  int       `json:"occupied,omitempty"` // unidades ocupadas
	CreatedAt time.Time `json:"createdAt"`
}
