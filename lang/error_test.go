package lang

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "message only", err: NewError("boom"), want: "boom"},
		{name: "message and cause", err: NewError("boom").Wrap(cause), want: "boom: cause"},
		{name: "cause only", err: WrapError(cause), want: "cause"},
		{name: "empty", err: &Error{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_SentinelMatching(t *testing.T) {
	derived := ErrType.
		Wrap(NewError("cannot negate a list")).
		With(slog.String("kind", "list"))

	if !errors.Is(derived, ErrType) {
		t.Fatal("expected derived error to match its sentinel")
	}

	if errors.Is(derived, ErrArity) {
		t.Fatal("expected derived error not to match a different sentinel")
	}
}

func TestError_UnwrapReachesCause(t *testing.T) {
	cause := errors.New("root cause")

	err := ErrReadInput.Wrap(cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}

func TestWrapError_ReusesExisting(t *testing.T) {
	orig := NewError("original")

	if got := WrapError(orig); got != orig {
		t.Fatal("expected WrapError to return an existing *Error unchanged")
	}

	plain := errors.New("plain")

	got := WrapError(plain)
	if got.Error() != "plain" {
		t.Fatalf("expected %q, got %q", "plain", got.Error())
	}

	if !errors.Is(got, plain) {
		t.Fatal("expected wrapped error to match its cause")
	}
}
