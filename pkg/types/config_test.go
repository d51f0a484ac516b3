package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty data dir returns ErrDataDirEmpty",
			config:  Config{DataDir: ""},
			wantErr: ErrDataDirEmpty,
		},
		{
			name:    "negative threshold returns ErrThresholdNegative",
			config:  Config{DataDir: "/tmp/data", LowStockThreshold: -1},
			wantErr: ErrThresholdNegative,
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{DataDir: "/tmp/data", LogLevel: "verbose"},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "valid config",
			config:  Config{DataDir: "/tmp/data", LowStockThreshold: 10, LogLevel: "info"},
			wantErr: nil,
		},
		{
			name:    "empty log level is valid and means the default",
			config:  Config{DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "zero threshold is valid",
			config:  Config{DataDir: "/tmp/data", LowStockThreshold: 0},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
