package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestNewCadence_Every(t *testing.T) {
	c, err := NewCadence("@every 10m", testLogger())
	require.NoError(t, err)

	start := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, start.Add(600*time.Second), c.Next(start))
}

func TestNewCadence_CronExpression(t *testing.T) {
	c, err := NewCadence("*/5 * * * *", testLogger())
	require.NoError(t, err)

	start := time.Date(2025, 5, 15, 10, 2, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 5, 15, 10, 5, 0, 0, time.UTC), c.Next(start))
}

func TestNewCadence_Invalid(t *testing.T) {
	_, err := NewCadence("every ten minutes", testLogger())
	assert.Error(t, err)
}

func TestWait_SleepsUntilNextActivation(t *testing.T) {
	c, err := NewCadence("@every 10m", testLogger())
	require.NoError(t, err)

	now := time.Date(2025, 5, 15, 10, 0, 0, 0, time.UTC)
	var requested time.Duration
	c.now = func() time.Time { return now }
	c.after = func(d time.Duration) <-chan time.Time {
		requested = d
		ch := make(chan time.Time, 1)
		ch <- now.Add(d)
		return ch
	}

	require.NoError(t, c.Wait(context.Background()))
	assert.Equal(t, 10*time.Minute, requested)
}

func TestWait_Cancelled(t *testing.T) {
	c, err := NewCadence("@every 10m", testLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.Wait(ctx), context.Canceled)
}
