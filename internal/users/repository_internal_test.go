package users

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestDummyHash_CostsOneComparison(t *testing.T) {
	cost, err := bcrypt.Cost(dummyHash)
	if err != nil {
		t.Fatalf("Cost() failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", cost, bcrypt.DefaultCost)
	}

	err = bcrypt.CompareHashAndPassword(dummyHash, []byte("anything"))
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("CompareHashAndPassword() = %v, want mismatch", err)
	}
}
