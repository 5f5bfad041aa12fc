package env

import (
	"os"
	"strings"
)

// System exposes the process environment. A dotted key such as
// webdriver.driver is also looked up as WEBDRIVER_DRIVER.
type System struct {
	lookup  func(string) (string, bool)
	environ func() []string
}

// NewSystem returns a System backed by the os package.
func NewSystem() *System {
	return &System{lookup: os.LookupEnv, environ: os.Environ}
}

// NewEnvironment returns a System over a fixed set of environment
// variables, such as the contents of a .env file.
func NewEnvironment(values map[string]string) *System {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return &System{
		lookup: func(key string) (string, bool) {
			value, ok := copied[key]
			return value, ok
		},
		environ: func() []string {
			entries := make([]string, 0, len(copied))
			for key, value := range copied {
				entries = append(entries, key+"="+value)
			}
			return entries
		},
	}
}

// Property returns the environment value for key or its UPPER_SNAKE form.
func (s *System) Property(key string) (string, bool) {
	if value, ok := s.lookup(key); ok {
		return value, true
	}
	return s.lookup(envName(key))
}

// Keys returns the names of every environment variable.
func (s *System) Keys() []string {
	entries := s.environ()
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		name, _, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}

// envName converts a dotted property key into an environment variable name.
func envName(key string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(replacer.Replace(key))
}
