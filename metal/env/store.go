package env

// StoreEnvironment locates the durable on-disk copy of the profile document.
type StoreEnvironment struct {
	ContentFile string `validate:"required"`
}
