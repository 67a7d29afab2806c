package prop

import (
	"errors"
	"testing"
)

// mustPanicBorrow runs fn and asserts it panics with a *BorrowError.
func mustPanicBorrow(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		if !errors.Is(err, ErrBorrowed) {
			t.Errorf("panic error = %v, want ErrBorrowed", err)
		}
		var be *BorrowError
		if !errors.As(err, &be) {
			t.Error("panic error should be a *BorrowError")
		}
	}()
	fn()
}

func TestCell_Get(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"zero", 0},
		{"positive", 42},
		{"negative", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell(tt.value)
			if got := c.Get(); got != tt.value {
				t.Errorf("Get() = %d, want %d", got, tt.value)
			}
		})
	}
}

func TestCell_ReplaceReturnsPrevious(t *testing.T) {
	c := NewCell(4)

	if old := c.Replace(7); old != 4 {
		t.Errorf("Replace(7) = %d, want 4", old)
	}
	if got := c.Get(); got != 7 {
		t.Errorf("Get() after Replace = %d, want 7", got)
	}
}

func TestCell_Update(t *testing.T) {
	c := NewCell(10)

	c.Update(func(v int) int { return v * 2 })

	if got := c.Get(); got != 20 {
		t.Errorf("Get() after Update = %d, want 20", got)
	}
}

func TestCell_HandlesAlias(t *testing.T) {
	c := NewCell("before")
	h1, h2 := c, c

	h1.Replace("after")

	if got := h2.Get(); got != "after" {
		t.Errorf("aliased handle Get() = %q, want %q", got, "after")
	}
}

// --- Borrow discipline ---

func TestCell_ReadDuringUpdatePanics(t *testing.T) {
	c := NewCell(1)

	mustPanicBorrow(t, func() {
		c.Update(func(v int) int {
			return c.Get()
		})
	})
}

func TestCell_ReplaceDuringUpdatePanics(t *testing.T) {
	c := NewCell(1)

	mustPanicBorrow(t, func() {
		c.Update(func(v int) int {
			c.Replace(2)
			return v
		})
	})
}

func TestCell_UpdateDuringUpdatePanics(t *testing.T) {
	c := NewCell(1)

	mustPanicBorrow(t, func() {
		c.Update(func(v int) int {
			c.Update(func(w int) int { return w })
			return v
		})
	})
}

func TestCell_BorrowReleasedAfterUpdate(t *testing.T) {
	c := NewCell(1)

	c.Update(func(v int) int { return v + 1 })

	// Borrow must be released; plain access succeeds.
	if got := c.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
	c.Replace(3)
	if got := c.Get(); got != 3 {
		t.Errorf("Get() after Replace = %d, want 3", got)
	}
}

func TestCell_BorrowReleasedAfterPanicInUpdate(t *testing.T) {
	c := NewCell(1)

	func() {
		defer func() { _ = recover() }()
		c.Update(func(int) int { panic("boom") })
	}()

	if got := c.Get(); got != 1 {
		t.Errorf("Get() after panicking Update = %d, want 1", got)
	}
}
