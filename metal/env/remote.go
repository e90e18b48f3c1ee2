package env

// RemoteEnvironment identifies the versioned remote store the gateway writes
// to. Token is the only write credential in the system; it never reaches
// validation errors, responses, or clients.
type RemoteEnvironment struct {
	Owner   string `validate:"required"`
	Repo    string `validate:"required"`
	Path    string `validate:"required"`
	Branch  string `validate:"omitempty"`
	Message string `validate:"omitempty"`
	ApiURL  string `validate:"omitempty,url"`
	Token   string `validate:"-"`
}

func (e RemoteEnvironment) GetBranch() string {
	if e.Branch == "" {
		return "main"
	}

	return e.Branch
}

func (e RemoteEnvironment) HasToken() bool {
	return e.Token != ""
}
