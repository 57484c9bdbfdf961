package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnection_QueryContext(t *testing.T) {
	conn := (&Connection{}).WithQueryTimeout(50 * time.Millisecond)

	ctx, cancel := conn.queryContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok, "timeout must set a deadline")
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 20*time.Millisecond)
}

func TestConnection_QueryContext_NoTimeout(t *testing.T) {
	conn := &Connection{}

	ctx, cancel := conn.queryContext(context.Background())
	defer cancel()

	_, ok := ctx.Deadline()
	assert.False(t, ok, "zero timeout must leave the context unbounded")
}

func TestConnection_WithQueryTimeout_IgnoresNonPositive(t *testing.T) {
	conn := (&Connection{}).WithQueryTimeout(time.Second).WithQueryTimeout(0)
	assert.Equal(t, time.Second, conn.queryTimeout)

	conn.WithQueryTimeout(-time.Second)
	assert.Equal(t, time.Second, conn.queryTimeout)
}
