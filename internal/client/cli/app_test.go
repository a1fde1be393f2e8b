package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without a user name")
	}
	app.userName = "alice"
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a user name")
	}
}

func TestSetMode_ChangesAndPrintsOnce(t *testing.T) {
	var buf strings.Builder
	app := &App{out: &buf}

	app.setMode(ModeOnline)
	if app.Mode() != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode())
	}
	if got := buf.String(); got != "Switched to online mode\n" {
		t.Fatalf("unexpected output on mode change: %q", got)
	}

	buf.Reset()
	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if got := buf.String(); got != "Switched to offline mode\n" {
		t.Fatalf("unexpected output on mode change to offline: %q", got)
	}
}

func TestGetStatus(t *testing.T) {
	var buf strings.Builder
	app := &App{out: &buf}
	assert.Equal(t, "", app.getStatus())

	app.setMode(ModeOffline)
	assert.Equal(t, "(offline)", app.getStatus())

	app.userName = "alice"
	assert.Equal(t, "(alice offline)", app.getStatus())

	app.mode = ""
	assert.Equal(t, "(alice)", app.getStatus())
}

func TestStartOnlineStatusWatcher(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(t, nil, f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, time.Millisecond)

	f.setPingErr(errors.New("down"))
	require.Eventually(t, func() bool { return a.Mode() == ModeOffline }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
