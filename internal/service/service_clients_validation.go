package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

// ClientsValidationService checks input before it reaches the wrapped
// ClientsService.
type ClientsValidationService struct {
	inner     ClientsService
	validator validators.Validator
}

func NewClientsValidationService(validator validators.Validator) ClientsServiceWrapper {
	return &ClientsValidationService{validator: validator}
}

func (v *ClientsValidationService) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	if err := requireIDs(ownerID); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, ownerID)
}

func (v *ClientsValidationService) Get(ctx context.Context, ownerID, clientID string) (models.Client, error) {
	if err := requireIDs(ownerID, clientID); err != nil {
		return models.Client{}, err
	}
	return v.inner.Get(ctx, ownerID, clientID)
}

func (v *ClientsValidationService) GetByEmail(ctx context.Context, ownerID, email string) (models.Client, error) {
	if err := requireIDs(ownerID, email); err != nil {
		return models.Client{}, err
	}
	return v.inner.GetByEmail(ctx, ownerID, email)
}

func (v *ClientsValidationService) Create(ctx context.Context, ownerID string, data models.ClientData) (models.Client, error) {
	if err := requireIDs(ownerID); err != nil {
		return models.Client{}, err
	}
	data = trimData(data)
	if err := v.validate(ctx, data); err != nil {
		return models.Client{}, err
	}
	return v.inner.Create(ctx, ownerID, data)
}

func (v *ClientsValidationService) Replace(ctx context.Context, ownerID, clientID string, data models.ClientData) (models.Client, error) {
	if err := requireIDs(ownerID, clientID); err != nil {
		return models.Client{}, err
	}
	data = trimData(data)
	if err := v.validate(ctx, data); err != nil {
		return models.Client{}, err
	}
	return v.inner.Replace(ctx, ownerID, clientID, data)
}

func (v *ClientsValidationService) Patch(ctx context.Context, ownerID, clientID string, patch models.ClientPatch) (models.Client, error) {
	if err := requireIDs(ownerID, clientID); err != nil {
		return models.Client{}, err
	}
	if patch.IsEmpty() {
		return models.Client{}, ErrNoFieldsToUpdate
	}
	patch = trimPatch(patch)
	if err := v.validate(ctx, patch); err != nil {
		return models.Client{}, err
	}
	return v.inner.Patch(ctx, ownerID, clientID, patch)
}

func (v *ClientsValidationService) Delete(ctx context.Context, ownerID, clientID string) (models.MessageResponse, error) {
	if err := requireIDs(ownerID, clientID); err != nil {
		return models.MessageResponse{}, err
	}
	return v.inner.Delete(ctx, ownerID, clientID)
}

func (v *ClientsValidationService) Wrap(wrapped ClientsService) ClientsService {
	v.inner = wrapped
	return v
}

func (v *ClientsValidationService) validate(ctx context.Context, obj any) error {
	if err := v.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func requireIDs(ids ...string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return ErrInvalidDataProvided
		}
	}
	return nil
}
