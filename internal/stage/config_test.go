package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg: Config{
				Destination: "/data",
				Sources:     []Source{{Identifier: "https://example.com/a.jpg"}},
			},
		},
		{
			name: "valid random source",
			cfg: Config{
				Destination: "/data",
				Sources:     []Source{{RandomExt: ".bin"}},
			},
		},
		{
			name: "missing destination",
			cfg: Config{
				Sources: []Source{{Identifier: "a.jpg"}},
			},
			wantErr: ErrNoDestination,
		},
		{
			name:    "no sources",
			cfg:     Config{Destination: "/data"},
			wantErr: ErrNoSources,
		},
		{
			name: "empty source",
			cfg: Config{
				Destination: "/data",
				Sources:     []Source{{}},
			},
			wantErr: ErrEmptyIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
