package domain

// Station is a registered stop in the rail network. Identity is immutable;
// details are free-form.
type Station struct {
	Key     Key
	Details string
}
