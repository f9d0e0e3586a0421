package config

import "testing"

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %q, want empty", cfg.LogLevel)
	}
	if cfg.LogComponent != DefaultLogComponent {
		t.Errorf("LogComponent = %q, want %q", cfg.LogComponent, DefaultLogComponent)
	}
	if cfg.Strict {
		t.Error("Strict should be false by default")
	}
}

func TestFromLookup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "no variables keeps defaults",
			env:  nil,
			want: Default(),
		},
		{
			name: "all variables applied",
			env: map[string]string{
				"FIBSEQ_LOG_LEVEL":     " Debug ",
				"FIBSEQ_LOG_COMPONENT": "billing",
				"FIBSEQ_STRICT":        "yes",
			},
			want: Config{LogLevel: "debug", LogComponent: "billing", Strict: true},
		},
		{
			name: "empty values are ignored",
			env: map[string]string{
				"FIBSEQ_LOG_COMPONENT": "",
				"FIBSEQ_STRICT":        "",
			},
			want: Default(),
		},
		{
			name: "unrecognized bool keeps default",
			env:  map[string]string{"FIBSEQ_STRICT": "maybe"},
			want: Default(),
		},
		{
			name: "unprefixed names are not read",
			env:  map[string]string{"STRICT": "true", "LOG_LEVEL": "debug"},
			want: Default(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromLookup(mapLookup(tt.env)); got != tt.want {
				t.Errorf("FromLookup() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"garbage", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FIBSEQ_STRICT", "1")
	t.Setenv("FIBSEQ_LOG_LEVEL", "warn")

	cfg := FromEnv()
	if !cfg.Strict {
		t.Error("Strict should be read from FIBSEQ_STRICT")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}
