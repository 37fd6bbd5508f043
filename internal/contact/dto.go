package contact

import sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"

// SubmitRequest carries no binding rules: every field is checked by Form so
// that all failures are reported together.
type SubmitRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`

	// ShowForm is the caller's view state; a missing value means the form is on screen
	ShowForm *bool `json:"showForm,omitempty"`
}

func (r *SubmitRequest) submission() Submission {
	return Submission{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		NationalID: r.NationalID,
	}
}

func (r *SubmitRequest) viewState() ViewState {
	if r.ShowForm == nil {
		return ViewState{ShowForm: true}
	}
	return ViewState{ShowForm: *r.ShowForm}
}

type FormResponse struct {
	ViewState
	Fields []Field `json:"fields"`
}

type ContactResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
}

type SubmitResponse struct {
	ViewState
	Refresh bool            `json:"refresh"`
	Contact ContactResponse `json:"contact"`
}

type SubmitErrorResponse struct {
	sharedError.FieldErrorsResponse
	ViewState
}
