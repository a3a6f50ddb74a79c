package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/store"
	"github.com/MKhiriev/client-keeper/internal/utils"
	"github.com/MKhiriev/client-keeper/models"
)

// clientsService stores client records of the authenticated owner. Input is
// expected to be validated by a wrapper (see NewClientsValidationService).
type clientsService struct {
	clientRepository store.ClientRepository
	ids              *utils.UUIDGenerator
	now              func() time.Time

	logger *logger.Logger
}

func NewClientsService(clientRepository store.ClientRepository, logger *logger.Logger) ClientsService {
	return &clientsService{
		clientRepository: clientRepository,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

func (c *clientsService) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	return c.clientRepository.ListClients(ctx, ownerID)
}

func (c *clientsService) Get(ctx context.Context, ownerID, clientID string) (models.Client, error) {
	return c.clientRepository.GetClient(ctx, ownerID, clientID)
}

func (c *clientsService) GetByEmail(ctx context.Context, ownerID, email string) (models.Client, error) {
	return c.clientRepository.GetClientByEmail(ctx, ownerID, strings.TrimSpace(email))
}

// Create assigns the identifier and both timestamps.
func (c *clientsService) Create(ctx context.Context, ownerID string, data models.ClientData) (models.Client, error) {
	now := c.now().UTC()

	client := fromData(data)
	client.ID = c.ids.Generate()
	client.OwnerID = ownerID
	client.CreatedAt = now
	client.UpdatedAt = now

	created, err := c.clientRepository.CreateClient(ctx, client)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("client creation failed")
		return models.Client{}, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}

// Replace overwrites every writable field. The creation time is kept.
func (c *clientsService) Replace(ctx context.Context, ownerID, clientID string, data models.ClientData) (models.Client, error) {
	client := fromData(data)
	client.ID = clientID
	client.OwnerID = ownerID
	client.UpdatedAt = c.now().UTC()

	replaced, err := c.clientRepository.ReplaceClient(ctx, client)
	if err != nil {
		return models.Client{}, fmt.Errorf("replace client: %w", err)
	}
	return replaced, nil
}

func (c *clientsService) Patch(ctx context.Context, ownerID, clientID string, patch models.ClientPatch) (models.Client, error) {
	patched, err := c.clientRepository.PatchClient(ctx, ownerID, clientID, trimPatch(patch), c.now().UTC())
	if err != nil {
		return models.Client{}, fmt.Errorf("patch client: %w", err)
	}
	return patched, nil
}

func (c *clientsService) Delete(ctx context.Context, ownerID, clientID string) (models.MessageResponse, error) {
	if err := c.clientRepository.DeleteClient(ctx, ownerID, clientID); err != nil {
		return models.MessageResponse{}, fmt.Errorf("delete client: %w", err)
	}
	return models.MessageResponse{Message: app.MsgClientDeleted}, nil
}

func fromData(data models.ClientData) models.Client {
	data = trimData(data)
	return models.Client{
		Name:                    data.Name,
		Email:                   data.Email,
		Phone:                   data.Phone,
		Company:                 data.Company,
		SubscriptionRenewalDate: data.SubscriptionRenewalDate,
		SubscriptionAmount:      data.SubscriptionAmount,
		Notes:                   data.Notes,
	}
}

func trimData(d models.ClientData) models.ClientData {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Company = strings.TrimSpace(d.Company)
	d.Notes = strings.TrimSpace(d.Notes)
	d.SubscriptionRenewalDate = d.SubscriptionRenewalDate.UTC()
	return d
}

func trimPatch(p models.ClientPatch) models.ClientPatch {
	for _, s := range []**string{&p.Name, &p.Email, &p.Phone, &p.Company, &p.Notes} {
		if *s != nil {
			v := strings.TrimSpace(**s)
			*s = &v
		}
	}
	if p.SubscriptionRenewalDate != nil {
		d := p.SubscriptionRenewalDate.UTC()
		p.SubscriptionRenewalDate = &d
	}
	return p
}
