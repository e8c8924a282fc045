//go:build unit

package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-actiontrigger/internal/mock"
	"golang-actiontrigger/internal/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_Run(t *testing.T) {
	t.Run("DispatchesEventsUntilCancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockTriggerSource(ctrl)
		source.EXPECT().Kind().Return("subscriber").AnyTimes()

		const events = 7
		sent := make(chan struct{})
		source.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, out chan<- port.TriggerEvent) error {
			for i := 0; i < events; i++ {
				select {
				case out <- port.TriggerEvent{Source: "subscriber", At: time.Now()}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			close(sent)
			<-ctx.Done()
			return ctx.Err()
		})

		registry := newRecordingRegistry()
		recorder := &recordingRecorder{}
		dispatcher := NewDispatcher(registry, defaultScope, recorder)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- dispatcher.Run(ctx, source) }()

		select {
		case <-sent:
		case <-time.After(2 * time.Second):
			t.Fatal("source did not deliver its events")
		}
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("dispatcher did not stop")
		}

		// the unbuffered hand-off means the last event was received before close(sent);
		// Run only returns once that event has been dispatched
		assert.Equal(t, events, registry.runCommands())
		require.Len(t, recorder.dispatches, events)
		for _, d := range recorder.dispatches {
			assert.Equal(t, "subscriber", d.source)
		}
	})

	t.Run("SourceFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockTriggerSource(ctrl)
		source.EXPECT().Kind().Return("timer").AnyTimes()
		source.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("gpio: device lost"))

		err := NewDispatcher(newRecordingRegistry(), defaultScope, nil).Run(context.Background(), source)
		assert.EqualError(t, err, "gpio: device lost")
	})

	t.Run("SourceReturnsEarly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock.NewMockTriggerSource(ctrl)
		source.EXPECT().Kind().Return("timer").AnyTimes()
		source.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil)

		err := NewDispatcher(newRecordingRegistry(), defaultScope, nil).Run(context.Background(), source)
		assert.EqualError(t, err, "trigger source timer stopped")
	})
}
