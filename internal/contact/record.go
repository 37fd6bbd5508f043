package contact

import "github.com/changhyeonkim/contact-intake/go-api-server/internal/formdata"

// ContactRecord is a contact form submission that passed every check.
// Only Form.Submit creates one.
type ContactRecord struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
}

func newContactRecord(s Submission) ContactRecord {
	return ContactRecord{
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		NationalID: s.NationalID,
	}
}

// Fields returns the mapping handed to the form-data service
func (r ContactRecord) Fields() map[string]string {
	return map[string]string{
		formdata.KeyName:       r.Name,
		formdata.KeyEmail:      r.Email,
		formdata.KeyPhone:      r.Phone,
		formdata.KeyNationalID: r.NationalID,
	}
}
