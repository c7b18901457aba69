package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerStub struct {
	err error
}

func (p pingerStub) HealthCheck(context.Context) error { return p.err }
func (p pingerStub) Ping(context.Context) error        { return p.err }

func TestHealthProbe(t *testing.T) {
	tests := []struct {
		name    string
		db      error
		cache   error
		want    map[string]string
		wantErr bool
	}{
		{name: "all up", want: map[string]string{"database": "ok", "cache": "ok"}},
		{name: "cache down", cache: errors.New("dial tcp: refused"), want: map[string]string{"database": "ok", "cache": "dial tcp: refused"}, wantErr: true},
		{name: "both down", db: errors.New("no pool"), cache: errors.New("eof"), want: map[string]string{"database": "no pool", "cache": "eof"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := NewHealthProbe(pingerStub{err: tt.db}, pingerStub{err: tt.cache})
			checks, err := probe.Check(context.Background())
			assert.Equal(t, tt.want, checks)
			if tt.wantErr {
				require.Error(t, err)
				if tt.db != nil {
					assert.ErrorIs(t, err, tt.db)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
