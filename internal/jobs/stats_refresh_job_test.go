package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEveryExpr(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     string
	}{
		{"five seconds", 5 * time.Second, "@every 5s"},
		{"one minute", time.Minute, "@every 1m0s"},
		{"sub-second rounds up", 200 * time.Millisecond, "@every 1s"},
		{"fraction truncates", 2500 * time.Millisecond, "@every 2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, everyExpr(tt.interval))
		})
	}
}
