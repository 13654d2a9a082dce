package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func drain(t *Transfer) []TransferEvent {
	var events []TransferEvent
	for ev := range t.Events() {
		events = append(events, ev)
	}
	return events
}

func TestTransferProgressThenComplete(t *testing.T) {
	tr := NewTransfer(nil)
	tr.ReportProgress(10)
	tr.ReportProgress(55.5)
	tr.Complete("https://cdn.example.com/videos/exercise_1/abc_clip.mp4")

	events := drain(tr)
	require.Len(t, events, 3)

	require.Equal(t, 10.0, events[0].Percent)
	require.Equal(t, 55.5, events[1].Percent)

	final := events[2]
	require.True(t, final.Done)
	require.Equal(t, 100.0, final.Percent)
	require.Equal(t, "https://cdn.example.com/videos/exercise_1/abc_clip.mp4", final.URL)
	require.NoError(t, final.Err)
}

func TestTransferProgressNeverRegresses(t *testing.T) {
	tr := NewTransfer(nil)
	tr.ReportProgress(40)
	tr.ReportProgress(20) // dropped
	tr.ReportProgress(60)
	tr.Complete("u")

	events := drain(tr)
	last := -1.0
	for _, ev := range events {
		require.GreaterOrEqual(t, ev.Percent, last)
		last = ev.Percent
	}
	require.Len(t, events, 3)
}

func TestTransferProgressClamped(t *testing.T) {
	tr := NewTransfer(nil)
	tr.ReportProgress(-5)
	tr.ReportProgress(150)
	tr.Complete("u")

	events := drain(tr)
	require.Equal(t, 0.0, events[0].Percent)

	// Only the terminal event may carry 100
	require.Less(t, events[1].Percent, 100.0)
	require.True(t, events[2].Done)
	require.Equal(t, 100.0, events[2].Percent)
}

func TestTransferHundredOnlyOnSuccess(t *testing.T) {
	boom := errors.New("network gone")

	tr := NewTransfer(nil)
	tr.ReportProgress(100) // capped below 100
	tr.Fail(boom)

	events := drain(tr)
	final := events[len(events)-1]
	require.True(t, final.Done)
	require.ErrorIs(t, final.Err, boom)
	require.Less(t, final.Percent, 100.0)
}

func TestTransferDuplicateTerminalIgnored(t *testing.T) {
	tr := NewTransfer(nil)
	tr.ReportProgress(30)
	tr.Complete("first")
	tr.Complete("second")
	tr.Fail(errors.New("late failure"))

	events := drain(tr)
	var terminals int
	for _, ev := range events {
		if ev.Done {
			terminals++
			require.Equal(t, "first", ev.URL)
			require.NoError(t, ev.Err)
		}
	}
	require.Equal(t, 1, terminals)
}

func TestTransferFailCarriesLastProgress(t *testing.T) {
	tr := NewTransfer(nil)
	tr.ReportProgress(72)
	tr.Fail(ErrUploadCancelled)

	events := drain(tr)
	final := events[len(events)-1]
	require.True(t, final.Done)
	require.ErrorIs(t, final.Err, ErrUploadCancelled)
	require.Equal(t, 72.0, final.Percent)
}

func TestTransferDropsWhenConsumerLags(t *testing.T) {
	tr := NewTransfer(nil)

	// Overflow the buffer without a reader; reports must not block and the
	// terminal event must still arrive.
	for i := 0; i < 100; i++ {
		tr.ReportProgress(float64(i))
	}
	tr.Complete("u")

	events := drain(tr)
	require.NotEmpty(t, events)
	final := events[len(events)-1]
	require.True(t, final.Done)
	require.Equal(t, "u", final.URL)
}

func TestTransferCancelInvokesFunc(t *testing.T) {
	var called bool
	tr := NewTransfer(func() { called = true })
	tr.Cancel()
	require.True(t, called)
}
