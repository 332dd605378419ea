package subscription

import "testing"

func TestPolicyValidateDays(t *testing.T) {
	p := Policy{MaxGrantDays: 365}

	tests := []struct {
		days    int
		wantErr bool
	}{
		{days: 1, wantErr: false},
		{days: 365, wantErr: false},
		{days: 0, wantErr: true},
		{days: -5, wantErr: true},
		{days: 366, wantErr: true},
	}

	for _, tt := range tests {
		err := p.ValidateDays(tt.days)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ValidateDays(%d) error = %v, wantErr %v", tt.days, err, tt.wantErr)
		}
	}
}

func TestPolicyFromEnv(t *testing.T) {
	t.Setenv("ACCESS_MAX_DAYS", "365")
	if got := PolicyFromEnv().MaxGrantDays; got != 365 {
		t.Fatalf("MaxGrantDays = %d, want 365", got)
	}

	t.Setenv("ACCESS_MAX_DAYS", "not-a-number")
	if got := PolicyFromEnv().MaxGrantDays; got != DefaultMaxGrantDays {
		t.Fatalf("MaxGrantDays = %d, want default %d", got, DefaultMaxGrantDays)
	}

	t.Setenv("ACCESS_MAX_DAYS", "-1")
	if got := PolicyFromEnv().MaxGrantDays; got != DefaultMaxGrantDays {
		t.Fatalf("MaxGrantDays = %d, want default %d", got, DefaultMaxGrantDays)
	}
}
