package usecase

import (
	"context"

	"github.com/nivasahq/nivasa-portal/internal/application/dto"
	"github.com/nivasahq/nivasa-portal/internal/domain"
	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// ComplaintAPI operaciones de quejas del API remoto.
type ComplaintAPI interface {
	ListComplaints(ctx context.Context, token string, limit, offset int) ([]entity.Complaint, error)
	CreateComplaint(ctx context.Context, token string, in map[string]string) (*entity.Complaint, error)
	GetComplaint(ctx context.Context, token, id string) (*entity.Complaint, error)
}

// ComplaintUseCase arma y reenvía operaciones de quejas. El alcance por
// rol (propias, asignadas, todas) lo resuelve el API remoto con el token.
type ComplaintUseCase struct {
	api ComplaintAPI
}

// NewComplaintUseCase construye el caso de uso de quejas.
func NewComplaintUseCase(api ComplaintAPI) *ComplaintUseCase {
	return &ComplaintUseCase{api: api}
}

// List devuelve las quejas visibles para el usuario del token.
func (uc *ComplaintUseCase) List(ctx context.Context, token string, page dto.PageRequest) ([]entity.Complaint, error) {
	page.DefaultPage()
	return uc.api.ListComplaints(ctx, token, page.Limit, page.Offset)
}

// Create valida el formulario y registra la queja en el API remoto.
func (uc *ComplaintUseCase) Create(ctx context.Context, token string, in dto.CreateComplaintRequest) (*entity.Complaint, error) {
	if in.Category == "" || len(in.Subject) < 3 || len(in.Description) < 10 {
		return nil, domain.ErrInvalidInput
	}
	payload := map[string]string{
		"category":    in.Category,
		"subject":     in.Subject,
		"description": in.Description,
	}
	if in.PropertyID != "" {
		payload["propertyId"] = in.PropertyID
	}
	return uc.api.CreateComplaint(ctx, token, payload)
}

// Get devuelve una queja por id.
func (uc *ComplaintUseCase) Get(ctx context.Context, token, id string) (*entity.Complaint, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.api.GetComplaint(ctx, token, id)
}
