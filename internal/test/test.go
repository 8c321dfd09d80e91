// Copyright 2025 Leon Hwang.
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func AssertEqualSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for i := range got {
		if i >= len(want) {
			break
		}
		if !reflect.DeepEqual(got[i], want[i]) {
			t.Errorf("idx %d: got %v, want %v", i, got[i], want[i])
			break
		}
	}
}

func AssertEmptySlice[T any](t *testing.T, got []T) {
	t.Helper()
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

// AssertApprox checks that got is within eps of want.
func AssertApprox(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("got %v, want %v (±%v)", got, want, eps)
	}
}

func AssertStrPrefix(t *testing.T, got, prefix string) {
	t.Helper()
	if !strings.HasPrefix(got, prefix) {
		t.Errorf("got %v, want prefix %v", got, prefix)
	}
}

func AssertContains(t *testing.T, got, sub string) {
	t.Helper()
	if !strings.Contains(got, sub) {
		t.Errorf("got %q, want it to contain %q", got, sub)
	}
}

func AssertNotContains(t *testing.T, got, sub string) {
	t.Helper()
	if strings.Contains(got, sub) {
		t.Errorf("got %q, want it to not contain %q", got, sub)
	}
}

func AssertTrue(t *testing.T, got bool) {
	t.Helper()
	if !got {
		t.Errorf("got false, want true")
	}
}

func AssertFalse(t *testing.T, got bool) {
	t.Helper()
	if got {
		t.Errorf("got true, want false")
	}
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		t.FailNow()
	}
}

func AssertHaveErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error, but got nil")
		t.FailNow()
	}
}

func AssertIsErr(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error, but got nil")
		return
	}
	if want == nil {
		t.Errorf("expected non-nil error, but got %v", err)
		return
	}
	if !errors.Is(err, want) {
		t.Errorf("got %v, want %v", err, want)
	}
}

func AssertErrorPrefix(t *testing.T, err error, prefix string) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error, but got nil")
		return
	}
	if !strings.HasPrefix(err.Error(), prefix) {
		t.Errorf("got %v, want prefix %v", err.Error(), prefix)
	}
}
