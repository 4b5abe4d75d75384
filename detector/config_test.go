package detector

import "testing"

func validConfig() Config {
	return Config{
		ModelInputWidth:     320,
		ModelInputHeight:    320,
		ConfidenceThreshold: 0.25,
		IoUThreshold:        0.45,
		ClassNames:          []string{"ball_silver", "ball_black"},
	}
}

func TestConfigValidate(t *testing.T) {

	tests := []struct {
		name      string
		modify    func(*Config)
		expectErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero input width", func(c *Config) { c.ModelInputWidth = 0 }, true},
		{"negative input height", func(c *Config) { c.ModelInputHeight = -1 }, true},
		{"confidence above 1", func(c *Config) { c.ConfidenceThreshold = 1.5 }, true},
		{"confidence below 0", func(c *Config) { c.ConfidenceThreshold = -0.1 }, true},
		{"iou above 1", func(c *Config) { c.IoUThreshold = 2 }, true},
		{"no class names", func(c *Config) { c.ClassNames = nil }, true},
		{"negative reclaim interval", func(c *Config) { c.MemoryReclaimInterval = -1 }, true},
		{"custom reclaim interval", func(c *Config) { c.MemoryReclaimInterval = 5 }, false},
	}

	for _, tc := range tests {
		cfg := validConfig()
		tc.modify(&cfg)

		err := cfg.Validate()

		if tc.expectErr && err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
		}

		if !tc.expectErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestConfigValidateDefaultsReclaimInterval(t *testing.T) {

	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MemoryReclaimInterval != DefaultMemoryReclaimInterval {
		t.Errorf("expected default reclaim interval %d, got %d",
			DefaultMemoryReclaimInterval, cfg.MemoryReclaimInterval)
	}
}
