package model

// ContactSubmission is a contact form submission accepted by the form-data service
type ContactSubmission struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	// Name and email have no length bound at validation time
	Name       string `gorm:"column:name;type:CLOB;not null"`
	Email      string `gorm:"column:email;type:CLOB;not null"`
	Phone      string `gorm:"column:phone;type:VARCHAR2(10);not null"`
	NationalID string `gorm:"column:national_id;type:VARCHAR2(10);not null;index:idx_contact_submission_national_id"`

	// RequestID links the row to the HTTP request that produced it
	RequestID string `gorm:"column:request_id;type:VARCHAR2(64)"`

	BaseEntity
}

// TableName specifies the table name for ContactSubmission
func (*ContactSubmission) TableName() string {
	return "contact_submission"
}

// NewContactSubmission creates a new ContactSubmission instance
func NewContactSubmission(name, email, phone, nationalID string) *ContactSubmission {
	return &ContactSubmission{
		Name:       name,
		Email:      email,
		Phone:      phone,
		NationalID: nationalID,
	}
}
