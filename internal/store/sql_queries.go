package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/client-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

var clientColumns = []string{
	"id",
	"owner_id",
	"name",
	"email",
	"phone",
	"company",
	"subscription_renewal_date",
	"subscription_amount",
	"notes",
	"created_at",
	"updated_at",
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("id", "name", "email", "password_hash", "created_at").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where("LOWER(email) = LOWER(?)", email).
		ToSql()
}

func buildSelectUserByIDQuery(userID string) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdatePasswordQuery(userID, passwordHash string) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// ── clients ───────────────────────────────────────────────────────────────────

func buildSelectClientsQuery(ownerID string) (string, []any, error) {
	return psql.
		Select(clientColumns...).
		From(models.Client{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("subscription_renewal_date ASC", "name ASC").
		ToSql()
}

func buildSelectClientQuery(ownerID, clientID string) (string, []any, error) {
	return psql.
		Select(clientColumns...).
		From(models.Client{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID, "id": clientID}).
		ToSql()
}

func buildSelectClientByEmailQuery(ownerID, email string) (string, []any, error) {
	return psql.
		Select(clientColumns...).
		From(models.Client{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID}).
		Where("LOWER(email) = LOWER(?)", email).
		ToSql()
}

func buildInsertClientQuery(c models.Client) (string, []any, error) {
	return psql.
		Insert(c.TableName()).
		Columns(clientColumns...).
		Values(
			c.ID,
			c.OwnerID,
			c.Name,
			c.Email,
			c.Phone,
			c.Company,
			c.SubscriptionRenewalDate,
			c.SubscriptionAmount,
			c.Notes,
			c.CreatedAt,
			c.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(clientColumns, ", ")).
		ToSql()
}

func buildReplaceClientQuery(c models.Client) (string, []any, error) {
	return buildUpdateClientQuery(c.OwnerID, c.ID, map[string]any{
		"name":                      c.Name,
		"email":                     c.Email,
		"phone":                     c.Phone,
		"company":                   c.Company,
		"subscription_renewal_date": c.SubscriptionRenewalDate,
		"subscription_amount":       c.SubscriptionAmount,
		"notes":                     c.Notes,
		"updated_at":                c.UpdatedAt,
	})
}

// buildPatchClientQuery sets only the columns of the non-nil patch fields.
func buildPatchClientQuery(ownerID, clientID string, patch models.ClientPatch, updatedAt time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": updatedAt}

	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.SubscriptionRenewalDate != nil {
		set["subscription_renewal_date"] = *patch.SubscriptionRenewalDate
	}
	if patch.SubscriptionAmount != nil {
		set["subscription_amount"] = *patch.SubscriptionAmount
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}

	return buildUpdateClientQuery(ownerID, clientID, set)
}

func buildUpdateClientQuery(ownerID, clientID string, set map[string]any) (string, []any, error) {
	return psql.
		Update(models.Client{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"owner_id": ownerID, "id": clientID}).
		Suffix("RETURNING " + strings.Join(clientColumns, ", ")).
		ToSql()
}

func buildDeleteClientQuery(ownerID, clientID string) (string, []any, error) {
	return psql.
		Delete(models.Client{}.TableName()).
		Where(sq.Eq{"owner_id": ownerID, "id": clientID}).
		ToSql()
}
