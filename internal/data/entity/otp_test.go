package entity

import (
	"testing"
	"time"
)

func TestOTPIsExpiredBoundary(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	otp := &OTP{ExpiresAt: issued.Add(10 * time.Minute)}

	if otp.IsExpired(otp.ExpiresAt.Add(-time.Second)) {
		t.Fatalf("code should still be valid one second before expiry")
	}
	if otp.IsExpired(otp.ExpiresAt) {
		t.Fatalf("code should be valid exactly at expiry")
	}
	if !otp.IsExpired(otp.ExpiresAt.Add(time.Second)) {
		t.Fatalf("code should be expired one second after expiry")
	}
}
