// Package demo drives a scripted scenario through the stubbed API and
// verifies the responses against locally recomputed expectations.
package demo

// Config controls the demo scenario.
type Config struct {
	// BaseURL is the origin the stubbed client addresses. The host is
	// never resolved; only the path matters to the stub.
	BaseURL string

	// Prefix is the intercepted API prefix.
	Prefix string

	// NumSkills is how many skills the scenario seeds.
	NumSkills int

	// NumPatches is how many seeded skills get a level patch.
	NumPatches int

	// NumDeletes is how many seeded skills are removed again.
	NumDeletes int

	// Verbose prints every response rather than just the summary.
	Verbose bool
}

// DefaultConfig returns a scenario sized to earn a few badges.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://skillstub.local",
		Prefix:     "/api",
		NumSkills:  12,
		NumPatches: 4,
		NumDeletes: 2,
		Verbose:    false,
	}
}
