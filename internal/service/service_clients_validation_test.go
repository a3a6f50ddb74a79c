package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/client-keeper/internal/mock"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationService(t *testing.T) (ClientsService, *mock.MockClientsService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockClientsService(ctrl)

	return NewClientsValidationService(validators.NewValidator()).Wrap(inner), inner
}

func TestClientsValidationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *models.ClientData)
		wantField string
	}{
		{name: "short name", mutate: func(d *models.ClientData) { d.Name = "B" }, wantField: "name"},
		{name: "blank name", mutate: func(d *models.ClientData) { d.Name = "    " }, wantField: "name"},
		{name: "bad email", mutate: func(d *models.ClientData) { d.Email = "bob@" }, wantField: "email"},
		{name: "short phone", mutate: func(d *models.ClientData) { d.Phone = "555" }, wantField: "phone"},
		{name: "no company", mutate: func(d *models.ClientData) { d.Company = "" }, wantField: "company"},
		{name: "negative amount", mutate: func(d *models.ClientData) { d.SubscriptionAmount = -1 }, wantField: "subscriptionAmount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestValidationService(t)
			data := sampleData()
			tt.mutate(&data)

			_, err := svc.Create(context.Background(), "u1", data)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
			var fe validators.FieldErrors
			require.True(t, errors.As(err, &fe))
			assert.Contains(t, fe, tt.wantField)
		})
	}
}

func TestClientsValidationService_Create_PassesTrimmedData(t *testing.T) {
	svc, inner := newTestValidationService(t)
	data := sampleData()
	data.Email = " bob@example.com "

	inner.EXPECT().Create(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, d models.ClientData) (models.Client, error) {
			assert.Equal(t, "bob@example.com", d.Email)
			return models.Client{ID: "c1"}, nil
		})

	created, err := svc.Create(context.Background(), "u1", data)
	require.NoError(t, err)
	assert.Equal(t, "c1", created.ID)
}

func TestClientsValidationService_Patch(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		svc, _ := newTestValidationService(t)
		_, err := svc.Patch(context.Background(), "u1", "c1", models.ClientPatch{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc, _ := newTestValidationService(t)
		bad := "nope"
		_, err := svc.Patch(context.Background(), "u1", "c1", models.ClientPatch{Email: &bad})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("amount only", func(t *testing.T) {
		svc, inner := newTestValidationService(t)
		amount := 10.0
		inner.EXPECT().Patch(gomock.Any(), "u1", "c1", models.ClientPatch{SubscriptionAmount: &amount}).
			Return(models.Client{ID: "c1", SubscriptionAmount: amount}, nil)

		patched, err := svc.Patch(context.Background(), "u1", "c1", models.ClientPatch{SubscriptionAmount: &amount})
		require.NoError(t, err)
		assert.Equal(t, 10.0, patched.SubscriptionAmount)
	})
}

func TestClientsValidationService_RequiresIDs(t *testing.T) {
	svc, _ := newTestValidationService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Get(ctx, "u1", " ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.GetByEmail(ctx, "u1", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Replace(ctx, "u1", "", sampleData())
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	_, err = svc.Delete(ctx, "", "c1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientsValidationService_Delegates(t *testing.T) {
	svc, inner := newTestValidationService(t)
	ctx := context.Background()

	inner.EXPECT().List(ctx, "u1").Return([]models.Client{}, nil)
	inner.EXPECT().Delete(ctx, "u1", "c1").Return(models.MessageResponse{Message: "ok"}, nil)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	msg, err := svc.Delete(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Message)
}
