package entity

import "time"

// Estados de una queja en el API remoto.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintRejected   = "rejected"
)

// Complaint es una queja/reclamo tal como la entrega el API remoto.
// El gateway no calcula nada sobre ella: solo la arma y la muestra.
type Complaint struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PropertyID  string    `json:"propertyId,omitempty"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
