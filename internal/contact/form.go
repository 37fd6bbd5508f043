package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/formdata"
	sharedError "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/metrics"
	sharedValidator "github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/go-playground/validator/v10"
)

// Processor is the downstream form-data service a verified record is handed to
type Processor interface {
	Process(ctx context.Context, data map[string]string) error
}

// ViewState is the UI state owned by the caller of the form
type ViewState struct {
	ShowForm bool `json:"showForm"`
}

// Activate makes the form visible
func Activate(state ViewState) ViewState {
	state.ShowForm = true
	return state
}

// Submission holds the raw form input
type Submission struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
}

// Field describes one input of the form
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`

	rules string
	value func(Submission) string
}

// SubmitResult is the outcome of a submission.
// Either Errors is non-empty or Record is set, never both.
type SubmitResult struct {
	Errors  []sharedError.FieldError
	Record  *ContactRecord
	State   ViewState
	Refresh bool
}

// Form validates contact submissions and forwards accepted ones to a Processor
type Form struct {
	validate  *validator.Validate
	processor Processor
	metrics   *metrics.Metrics
	fields    []Field
}

// NewForm creates a form. validate must have the common validators registered.
func NewForm(validate *validator.Validate, processor Processor, m *metrics.Metrics) *Form {
	return &Form{
		validate:  validate,
		processor: processor,
		metrics:   m,
		// Order is the order errors are reported in
		fields: []Field{
			{
				Key:   formdata.KeyName,
				Label: "Nombre",
				rules: "required",
				value: func(s Submission) string { return s.Name },
			},
			{
				Key:   formdata.KeyEmail,
				Label: "Email",
				rules: sharedValidator.EmailTag,
				value: func(s Submission) string { return s.Email },
			},
			{
				Key:   formdata.KeyPhone,
				Label: "Número Teléfono",
				rules: sharedValidator.PhoneTag,
				value: func(s Submission) string { return s.Phone },
			},
			{
				Key:   formdata.KeyNationalID,
				Label: "Identificación",
				rules: sharedValidator.NationalIDTag,
				value: func(s Submission) string { return s.NationalID },
			},
		},
	}
}

// Fields returns the form inputs in display order
func (f *Form) Fields() []Field {
	return append([]Field(nil), f.fields...)
}

// Validate checks every field and returns one error per failing field, in field order
func (f *Form) Validate(s Submission) []sharedError.FieldError {
	var errs []sharedError.FieldError

	for _, field := range f.fields {
		err := f.validate.Var(field.value(s), field.rules)
		if err == nil {
			continue
		}

		message := fmt.Sprintf("El campo '%s' no es válido.", field.Label)
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			message = sharedValidator.FieldMessage(field.Label, validationErrors[0])
		}

		errs = append(errs, sharedError.FieldError{Field: field.Key, Message: message})
	}

	return errs
}

// Submit validates s and, when every field passes, hands the record to the
// processor, hides the form and asks for a refresh. On rejection or failure
// state is returned unchanged.
func (f *Form) Submit(ctx context.Context, s Submission, state ViewState) (SubmitResult, error) {
	log := logger.FromContext(ctx)

	if errs := f.Validate(s); len(errs) > 0 {
		rejected := make([]string, 0, len(errs))
		for _, e := range errs {
			f.metrics.IncrementFieldError(e.Field)
			rejected = append(rejected, e.Field)
		}
		f.metrics.IncrementSubmission(metrics.OutcomeRejected)

		log.Info("Contact form rejected", "fields", rejected)
		return SubmitResult{Errors: errs, State: state}, nil
	}

	record := newContactRecord(s)
	if err := f.processor.Process(logger.With(ctx, "stage", "form_data"), record.Fields()); err != nil {
		f.metrics.IncrementSubmission(metrics.OutcomeFailed)
		log.Error("Form data service failed", "error", err)
		return SubmitResult{State: state}, fmt.Errorf("process form data: %w", err)
	}

	f.metrics.IncrementSubmission(metrics.OutcomeAccepted)
	log.Info("Contact form accepted", "email", logger.MaskEmail(record.Email))

	state.ShowForm = false
	return SubmitResult{Record: &record, State: state, Refresh: true}, nil
}
