package models

import (
	"testing"
	"time"
)

func TestNormalizeExpiry(t *testing.T) {
	instant := time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		stored interface{}
		want   time.Time
		ok     bool
	}{
		{name: "native timestamp", stored: instant, want: instant, ok: true},
		{name: "naive timestamp treated as UTC", stored: instant.In(time.FixedZone("", 3600)), want: instant, ok: true},
		{name: "epoch milliseconds int64", stored: instant.UnixMilli(), want: instant, ok: true},
		{name: "epoch milliseconds int", stored: int(instant.UnixMilli()), want: instant, ok: true},
		{name: "epoch milliseconds float64", stored: float64(instant.UnixMilli()), want: instant, ok: true},
		{name: "absent", stored: nil, ok: false},
		{name: "unusable type", stored: "2026-03-15", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeExpiry(tt.stored)
			if ok != tt.ok {
				t.Fatalf("NormalizeExpiry(%v) ok = %v, want %v", tt.stored, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("NormalizeExpiry(%v) = %v, want %v", tt.stored, got, tt.want)
			}
			if ok && got.Location() != time.UTC {
				t.Fatalf("NormalizeExpiry(%v) location = %v, want UTC", tt.stored, got.Location())
			}
		})
	}
}

func TestUserSubscribed(t *testing.T) {
	yes := true
	no := false

	if (&User{}).Subscribed() {
		t.Fatal("absent isSubscribed field must read as not subscribed")
	}
	if (&User{IsSubscribed: &no}).Subscribed() {
		t.Fatal("explicit false must read as not subscribed")
	}
	if !(&User{IsSubscribed: &yes}).Subscribed() {
		t.Fatal("explicit true must read as subscribed")
	}
	if (&User{}).HasSubscribedField() {
		t.Fatal("absent field must not be reported as present")
	}
	if !(&User{IsSubscribed: &no}).HasSubscribedField() {
		t.Fatal("explicit false still counts as a present field")
	}
}
