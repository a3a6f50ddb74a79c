package service

import (
	"context"

	"github.com/MKhiriev/client-keeper/internal/adapter"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

type clientRecordService struct {
	adapter   adapter.ServerAdapter
	session   *session.Session
	validator validators.Validator
}

func NewClientRecordService(serverAdapter adapter.ServerAdapter, s *session.Session, validator validators.Validator) ClientRecordService {
	return &clientRecordService{adapter: serverAdapter, session: s, validator: validator}
}

func (r *clientRecordService) List(ctx context.Context) ([]models.Client, error) {
	clients, err := r.adapter.ListClients(ctx, r.session)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return clients, nil
}

func (r *clientRecordService) Get(ctx context.Context, id string) (models.Client, error) {
	client, err := r.adapter.GetClient(ctx, r.session, id)
	if err != nil {
		return models.Client{}, mapAdapterError(err)
	}
	return client, nil
}

func (r *clientRecordService) GetByEmail(ctx context.Context, email string) (models.Client, error) {
	client, err := r.adapter.GetClientByEmail(ctx, r.session, email)
	if err != nil {
		return models.Client{}, mapAdapterError(err)
	}
	return client, nil
}

func (r *clientRecordService) Create(ctx context.Context, form validators.ClientForm) (models.Client, error) {
	data, err := r.formData(ctx, form)
	if err != nil {
		return models.Client{}, err
	}

	client, err := r.adapter.CreateClient(ctx, r.session, data)
	if err != nil {
		return models.Client{}, mapAdapterError(err)
	}
	return client, nil
}

func (r *clientRecordService) Replace(ctx context.Context, id string, form validators.ClientForm) (models.Client, error) {
	data, err := r.formData(ctx, form)
	if err != nil {
		return models.Client{}, err
	}

	client, err := r.adapter.ReplaceClient(ctx, r.session, id, data)
	if err != nil {
		return models.Client{}, mapAdapterError(err)
	}
	return client, nil
}

func (r *clientRecordService) Patch(ctx context.Context, id string, patch models.ClientPatch) (models.Client, error) {
	client, err := r.adapter.PatchClient(ctx, r.session, id, patch)
	if err != nil {
		return models.Client{}, mapAdapterError(err)
	}
	return client, nil
}

func (r *clientRecordService) Delete(ctx context.Context, id string) (models.MessageResponse, error) {
	msg, err := r.adapter.DeleteClient(ctx, r.session, id)
	if err != nil {
		return models.MessageResponse{}, mapAdapterError(err)
	}
	return msg, nil
}

func (r *clientRecordService) formData(ctx context.Context, form validators.ClientForm) (models.ClientData, error) {
	if err := r.validator.Validate(ctx, form); err != nil {
		return models.ClientData{}, err
	}
	return form.ToClientData()
}
