package logging

import (
	"context"
	"testing"
)

func TestFromContextFallsBack(t *testing.T) {
	if FromContext(nil) != Default() { //nolint:staticcheck // nil context is the case under test
		t.Error("nil context should yield the default logger")
	}
	if FromContext(context.Background()) != Default() {
		t.Error("bare context should yield the default logger")
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	tl := NewTestLogger(t)
	ctx := WithLogger(context.Background(), tl.Logger)

	if FromContext(ctx) != tl.Logger {
		t.Error("expected the logger stored in context")
	}
	if Ctx(ctx) != tl.Logger {
		t.Error("Ctx should alias FromContext")
	}
}

func TestWithLoggerNilUsesDefault(t *testing.T) {
	ctx := WithLogger(context.Background(), nil)
	if FromContext(ctx) != Default() {
		t.Error("nil logger should store the default logger")
	}
}
