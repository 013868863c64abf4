package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps an environment name, including the short forms "dev", "stage"
// and "prod", to an Environment. Unknown or empty names yield Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

// UnmarshalText implements encoding.TextUnmarshaler so an Environment can be
// read straight from configuration.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}
