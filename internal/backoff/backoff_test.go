package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/ideas/internal/logger"
)

func fastPolicy() Policy {
	return Policy{
		Initial:       time.Millisecond,
		Max:           4 * time.Millisecond,
		PingTimeout:   50 * time.Millisecond,
		Total:         time.Second,
		WarnThreshold: 1,
	}
}

func TestWaitSucceedsAfterFailures(t *testing.T) {
	calls := 0
	probe := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}

	attempts, err := Wait(context.Background(), "test", probe, fastPolicy(), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestWaitGivesUp(t *testing.T) {
	p := fastPolicy()
	p.Total = 20 * time.Millisecond
	sentinel := errors.New("down")

	_, err := Wait(context.Background(), "test", func(context.Context) error { return sentinel }, p, logger.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestWaitRespectsParentContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Wait(ctx, "test", func(context.Context) error { return errors.New("down") }, fastPolicy(), logger.Nop())
	assert.Error(t, err)
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Policy)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Policy) {}},
		{name: "zero total", mutate: func(p *Policy) { p.Total = 0 }, wantErr: true},
		{name: "zero initial", mutate: func(p *Policy) { p.Initial = 0 }, wantErr: true},
		{name: "zero max", mutate: func(p *Policy) { p.Max = 0 }, wantErr: true},
		{name: "zero ping timeout", mutate: func(p *Policy) { p.PingTimeout = 0 }, wantErr: true},
		{name: "negative warn threshold", mutate: func(p *Policy) { p.WarnThreshold = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fastPolicy()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
