package models

import "testing"

func intPtr(n int) *int {
	return &n
}

func int64Ptr(n int64) *int64 {
	return &n
}

func TestComputeUsageUnlimited(t *testing.T) {
	pkg := &Package{Name: "Starter"} // all limits nil

	u := ComputeUsage(pkg, 12, 40, 500000)

	if u.Campaigns != 12 || u.Ads != 40 || u.Impressions != 500000 {
		t.Errorf("raw counts not carried through: %+v", u)
	}
	if u.CampaignPercent != 0 || u.AdPercent != 0 || u.ImpressionPercent != 0 {
		t.Errorf("unlimited package must read 0%% used, got %+v", u)
	}
	if u.CampaignLimitHit || u.AdLimitHit || u.ImpressionLimitHit {
		t.Errorf("unlimited package must never hit limits, got %+v", u)
	}
}

func TestComputeUsageWithLimits(t *testing.T) {
	pkg := &Package{
		Name:            "Tiered",
		CampaignLimit:   intPtr(10),
		AdLimit:         intPtr(50),
		ImpressionLimit: int64Ptr(100000),
	}

	u := ComputeUsage(pkg, 5, 50, 200000)

	if u.CampaignPercent != 50 {
		t.Errorf("campaign percent = %v, want 50", u.CampaignPercent)
	}
	if u.CampaignLimitHit {
		t.Error("campaign limit should not be hit at 5/10")
	}
	if !u.AdLimitHit || u.AdPercent != 100 {
		t.Errorf("ad limit at 50/50 should be hit at 100%%, got %+v", u)
	}
	if !u.ImpressionLimitHit || u.ImpressionPercent != 100 {
		t.Errorf("impression percent must cap at 100, got %v", u.ImpressionPercent)
	}
}

func TestComputeUsageNilPackage(t *testing.T) {
	u := ComputeUsage(nil, 3, 7, 100)
	if u.Campaigns != 3 || u.Ads != 7 || u.Impressions != 100 {
		t.Errorf("nil package must still carry counts, got %+v", u)
	}
	if u.CampaignLimitHit || u.AdLimitHit || u.ImpressionLimitHit {
		t.Error("nil package must not hit limits")
	}
}

func TestNotificationPreferenceMuted(t *testing.T) {
	tests := []struct {
		email, push bool
		muted       bool
	}{
		{true, true, false},
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}

	for _, tt := range tests {
		p := NotificationPreference{EmailEnabled: tt.email, PushEnabled: tt.push}
		if p.Muted() != tt.muted {
			t.Errorf("Muted() with email=%v push=%v = %v, want %v", tt.email, tt.push, p.Muted(), tt.muted)
		}
	}
}
