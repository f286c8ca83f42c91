package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewStoreErrorNil(t *testing.T) {
	if err := NewStoreError("insert node", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStoreErrorWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("list campaigns", cause)

	if !IsStoreError(err) {
		t.Fatal("expected IsStoreError to report true")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}

	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatal("expected errors.As to find StoreError")
	}
	if se.Op != "list campaigns" {
		t.Errorf("Op = %q, want %q", se.Op, "list campaigns")
	}
}

func TestStoreErrorThroughFmtChain(t *testing.T) {
	inner := NewStoreError("get node", errors.New("timeout"))
	outer := fmt.Errorf("loading campaign: %w", inner)

	if !IsStoreError(outer) {
		t.Fatal("expected IsStoreError through a wrapped chain")
	}
}

func TestSentinelsAreNotStoreErrors(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrUnauthenticated,
		ErrForbidden,
		ErrDuplicate,
		ErrHasDependents,
		ErrOnlyOwner,
		ErrInvalidInput,
	}
	for _, err := range sentinels {
		if IsStoreError(err) {
			t.Errorf("sentinel %v misclassified as StoreError", err)
		}
	}
}
