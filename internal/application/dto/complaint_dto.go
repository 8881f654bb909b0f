package dto

// CreateComplaintRequest entrada para registrar una queja.
type CreateComplaintRequest struct {
	PropertyID  string `json:"propertyId" validate:"omitempty"`
	Category    string `json:"category" validate:"required"`
	Subject     string `json:"subject" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10"`
}
