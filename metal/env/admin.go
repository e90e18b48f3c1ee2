package env

// AdminEnvironment configures the operator credential for the edit surface.
// Either the plain secret or its SHA-256 digest must be supplied; when both
// are present the digest wins.
type AdminEnvironment struct {
	Password     string `validate:"required_without=PasswordHash"`
	PasswordHash string `validate:"omitempty,len=64,hexadecimal"`
}

func (e AdminEnvironment) UsesHash() bool {
	return e.PasswordHash != ""
}
