package generator

// Config drives the synthetic profile generator.
type Config struct {
	NumProfiles int
	// SharedNameChance is the probability a profile reuses a name already
	// handed out, so list views see duplicates.
	SharedNameChance float64
	// ZeroFieldChance is the probability each optional amount is left at
	// zero, exercising the projection defaults.
	ZeroFieldChance float64
	Seed            int64
}

// DefaultConfig returns baseline settings for a local demo dataset.
func DefaultConfig() Config {
	return Config{
		NumProfiles:      200,
		SharedNameChance: 0.1,
		ZeroFieldChance:  0.05,
		Seed:             42,
	}
}
