package usecase

import (
	"context"

	"github.com/nivasahq/nivasa-portal/internal/domain/entity"
)

// PropertyAPI operaciones de propiedades del API remoto.
type PropertyAPI interface {
	ListProperties(ctx context.Context, token string) ([]entity.Property, error)
}

// PropertyUseCase listado de propiedades del propietario autenticado.
type PropertyUseCase struct {
	api PropertyAPI
}

// NewPropertyUseCase construye el caso de uso de propiedades.
func NewPropertyUseCase(api PropertyAPI) *PropertyUseCase {
	return &PropertyUseCase{api: api}
}

// List devuelve las propiedades del usuario del token, opcionalmente
// filtradas por tipo (flat | pg; vacío = todas).
func (uc *PropertyUseCase) List(ctx context.Context, token, propertyType string) ([]entity.Property, error) {
	all, err := uc.api.ListProperties(ctx, token)
	if err != nil {
		return nil, err
	}
	if propertyType == "" {
		return all, nil
	}
	out := make([]entity.Property, 0, len(all))
	for _, p := range all {
		if p.Type == propertyType {
			out = append(out, p)
		}
	}
	return out, nil
}
