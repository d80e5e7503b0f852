// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package breaker

import (
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerExecuteSuccess(t *testing.T) {
	b := New("test-success")

	result, err := b.Execute(func() (interface{}, error) {
		return &struct{ V int }{V: 7}, nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	typed, ok := result.(*struct{ V int })
	if !ok || typed.V != 7 {
		t.Errorf("Execute() result = %v, want the returned pointer", result)
	}
}

func TestBreakerExecutePropagatesError(t *testing.T) {
	b := New("test-error")
	callErr := errors.New("downstream failed")

	_, err := b.Execute(func() (interface{}, error) {
		return nil, callErr
	})
	if !errors.Is(err, callErr) {
		t.Errorf("Execute() error = %v, want %v", err, callErr)
	}
}

func TestBreakerOpensAfterFailureThreshold(t *testing.T) {
	b := New("test-trip")

	calls := 0
	fail := func() (interface{}, error) {
		calls++
		return nil, errors.New("down")
	}

	// Needs 10 requests before tripping; at 100% failure rate it opens
	// right after the 10th.
	for i := 0; i < 10; i++ {
		if _, err := b.Execute(fail); err == nil {
			t.Fatalf("call %d succeeded, want failure", i+1)
		}
	}

	_, err := b.Execute(fail)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("call 11 error = %v, want ErrOpenState", err)
	}
	if calls != 10 {
		t.Errorf("function ran %d times, want 10 (rejected call must not run)", calls)
	}
}

func TestBreakerStaysClosedUnderThreshold(t *testing.T) {
	b := New("test-under-threshold")

	// Nine failures are below the 10-request minimum; the breaker must
	// still admit the next call.
	for i := 0; i < 9; i++ {
		_, _ = b.Execute(func() (interface{}, error) {
			return nil, errors.New("down")
		})
	}

	ran := false
	_, err := b.Execute(func() (interface{}, error) {
		ran = true
		return &struct{}{}, nil
	})
	if err != nil || !ran {
		t.Errorf("call 10 = (ran=%v, err=%v), want it admitted", ran, err)
	}
}

func TestCast(t *testing.T) {
	type payload struct{ V string }

	t.Run("matching type", func(t *testing.T) {
		got, err := Cast[payload](&payload{V: "ok"}, nil)
		if err != nil || got.V != "ok" {
			t.Errorf("Cast() = (%+v, %v), want typed result", got, err)
		}
	})

	t.Run("error passes through", func(t *testing.T) {
		callErr := errors.New("failed")
		if _, err := Cast[payload](nil, callErr); !errors.Is(err, callErr) {
			t.Errorf("Cast() error = %v, want %v", err, callErr)
		}
	})

	t.Run("mismatched type", func(t *testing.T) {
		if _, err := Cast[payload]("not a payload", nil); err == nil {
			t.Error("Cast() with wrong type succeeded, want error")
		}
	})

	t.Run("typed nil result", func(t *testing.T) {
		got, err := Cast[payload]((*payload)(nil), nil)
		if err != nil || got != nil {
			t.Errorf("Cast() = (%v, %v), want (nil, nil)", got, err)
		}
	})
}
