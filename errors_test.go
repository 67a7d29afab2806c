package prop

import (
	"errors"
	"testing"
)

func TestBorrowError_Is(t *testing.T) {
	err := newBorrowError("replace")

	if !errors.Is(err, ErrBorrowed) {
		t.Error("BorrowError should unwrap to ErrBorrowed")
	}
	if errors.Is(err, ErrNilAccessor) {
		t.Error("BorrowError should not match ErrNilAccessor")
	}
}

func TestBorrowError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with operation",
			err:  newBorrowError("update"),
			want: "cell already borrowed during update",
		},
		{
			name: "bare",
			err:  &BorrowError{},
			want: "cell already borrowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBindError_Is(t *testing.T) {
	err := newBindError("size", "Dog")

	if !errors.Is(err, ErrNilAccessor) {
		t.Error("BindError should unwrap to ErrNilAccessor")
	}
	if errors.Is(err, ErrConditionFailed) {
		t.Error("BindError should not match ErrConditionFailed")
	}
}

func TestBindError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newBindError("size", "Dog"),
			want: `nil accessor function for property "size" on Dog`,
		},
		{
			name: "property only",
			err:  &BindError{Err: ErrNilAccessor, Property: "size"},
			want: `nil accessor function for property "size"`,
		},
		{
			name: "owner only",
			err:  &BindError{Err: ErrNilAccessor, Owner: "Dog"},
			want: "nil accessor function on Dog",
		},
		{
			name: "bare",
			err:  &BindError{Err: ErrNilAccessor},
			want: "nil accessor function",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessError_Is(t *testing.T) {
	err := newAccessError("set", "size")

	if !errors.Is(err, ErrConditionFailed) {
		t.Error("AccessError should unwrap to ErrConditionFailed")
	}
	if errors.Is(err, ErrBorrowed) {
		t.Error("AccessError should not match ErrBorrowed")
	}
}

func TestAccessError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with property",
			err:  newAccessError("set", "size"),
			want: `set "size": condition failed`,
		},
		{
			name: "without property",
			err:  &AccessError{Err: ErrConditionFailed, Op: "get"},
			want: "get: condition failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
