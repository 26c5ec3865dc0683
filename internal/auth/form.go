package auth

// RegistrationForm carries the registration fields the manager accepts.
// Confirmation and terms-agreement fields never reach this layer; the
// caller strips them before submitting.
type RegistrationForm struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Password    string `validate:"required,min=8"`
	Phone       string `validate:"required"`
	Country     string `validate:"required"`
	DateOfBirth string `validate:"required"`
	Gender      string
	Address     string
	City        string
	PostalCode  string
}

// Credentials is an email/plaintext-password login pair.
type Credentials struct {
	Email    string
	Password string
}
