package event

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireInOrder(t *testing.T) {
	Flush()
	defer Flush()

	var got []string
	Listen("order.created", func(_ context.Context, p interface{}) { got = append(got, "a:"+p.(string)) })
	Listen("order.created", func(_ context.Context, p interface{}) { got = append(got, "b:"+p.(string)) })
	Listen("sale.recorded", func(_ context.Context, _ interface{}) { got = append(got, "other") })

	Fire(context.Background(), "order.created", "1")
	assert.Equal(t, []string{"a:1", "b:1"}, got)
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	Flush()
	defer Flush()

	var ran bool
	Listen("sale.recorded", func(context.Context, interface{}) { panic("boom") })
	Listen("sale.recorded", func(context.Context, interface{}) { ran = true })

	assert.NotPanics(t, func() { Fire(context.Background(), "sale.recorded", nil) })
	assert.True(t, ran)
}

func TestFireAsyncSurvivesCancel(t *testing.T) {
	Flush()
	defer Flush()

	var n atomic.Int32
	var sawCancel atomic.Bool
	Listen("inventory.updated", func(ctx context.Context, _ interface{}) {
		if ctx.Err() != nil {
			sawCancel.Store(true)
		}
		n.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	FireAsync(ctx, "inventory.updated", nil)
	cancel()
	Wait()

	assert.Equal(t, int32(1), n.Load())
	assert.False(t, sawCancel.Load())
}
