package tui

import (
	"strings"

	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/models"
)

// clientForm is the create and edit form of a client. clientID is empty
// while creating.
type clientForm struct {
	inputForm

	clientID   string
	submitting bool
	errMsg     string
}

func newClientForm() clientForm {
	return clientForm{
		inputForm: newInputForm(
			textField("Name", "Jane Doe", 50),
			textField("Email", "jane@example.com", 254),
			textField("Phone", "10 to 15 characters", 15),
			textField("Company", "Acme Inc.", 100),
			textField("Renewal date", validators.DateLayout, len(validators.DateLayout)),
			textField("Amount", "99.00", 16),
			textField("Notes", "optional", 500),
		),
	}
}

func editClientForm(c models.Client) clientForm {
	f := newClientForm()
	f.clientID = c.ID

	v := validators.ClientFormFromClient(c)
	f.setValues(v.Name, v.Email, v.Phone, v.Company, v.RenewalDate, v.Amount, v.Notes)
	return f
}

func (f clientForm) editing() bool {
	return f.clientID != ""
}

func (f clientForm) values() validators.ClientForm {
	return validators.ClientForm{
		Name:        f.value(0),
		Email:       f.value(1),
		Phone:       f.value(2),
		Company:     f.value(3),
		RenewalDate: f.value(4),
		Amount:      f.value(5),
		Notes:       f.value(6),
	}
}

func (f clientForm) title() string {
	if f.editing() {
		return "EDIT CLIENT"
	}
	return "NEW CLIENT"
}

func (f clientForm) render() string {
	var b strings.Builder
	b.WriteString(f.view())
	b.WriteString(submitButton("Save", f.submitting))
	writeFeedback(&b, "", f.errMsg)
	return strings.TrimRight(b.String(), "\n")
}
