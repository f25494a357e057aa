package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

// TestCheckDeleteOwner covers the delete decision shared by the meal and
// activity handlers: an unknown id is a 404, a foreign owner a 403, a store
// failure a 500, and only the owner's own row passes through.
func TestCheckDeleteOwner(t *testing.T) {
	cases := []struct {
		name       string
		lookupErr  error
		ownerID    int
		userID     int
		wantStatus int
		wantMsg    string
	}{
		{"unknown id", pgx.ErrNoRows, 0, 1, http.StatusNotFound, "meal not found"},
		{"foreign owner", nil, 2, 1, http.StatusForbidden, "not authorized to delete this meal"},
		{"store failure", errors.New("connection reset"), 0, 1, http.StatusInternalServerError, "failed to fetch meal"},
		{"owner matches", nil, 1, 1, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := checkDeleteOwner(tc.lookupErr, tc.ownerID, tc.userID, "meal")
			if status != tc.wantStatus {
				t.Errorf("status = %d, want %d", status, tc.wantStatus)
			}
			if msg != tc.wantMsg {
				t.Errorf("message = %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}

// TestCheckDeleteOwner_WrappedNoRows verifies the not-found branch matches
// wrapped errors, not just the sentinel itself.
func TestCheckDeleteOwner_WrappedNoRows(t *testing.T) {
	wrapped := errors.Join(errors.New("scan failed"), pgx.ErrNoRows)
	status, _ := checkDeleteOwner(wrapped, 0, 1, "activity")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", status, http.StatusNotFound)
	}
}
