package infrastructure

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"

	"reportboard/internal/reporting/domain"
	"reportboard/internal/shared/validation"
)

func TestStaticProvider_SnapshotsAreValid(t *testing.T) {
	p := NewStaticProvider()

	for _, r := range domain.TimeRanges() {
		t.Run(string(r), func(t *testing.T) {
			identity, err := p.IdentitySnapshot(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if identity.Range != r {
				t.Errorf("expected identity range %q, got %q", r, identity.Range)
			}
			if err := validation.Check(context.Background(), &identity, "identity", string(r)); err != nil {
				t.Errorf("identity snapshot invalid: %v", err)
			}

			hygiene, err := p.HygieneSnapshot(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hygiene.Range != r {
				t.Errorf("expected hygiene range %q, got %q", r, hygiene.Range)
			}
			if err := validation.Check(context.Background(), &hygiene, "hygiene", string(r)); err != nil {
				t.Errorf("hygiene snapshot invalid: %v", err)
			}
		})
	}
}

func TestStaticProvider_OneMonthReference(t *testing.T) {
	p := NewStaticProvider()

	identity, err := p.IdentitySnapshot(domain.OneMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.TotalProfiles != 25000 {
		t.Errorf("expected 25000 total profiles, got %d", identity.TotalProfiles)
	}
	if identity.MatchedCoreID != 18000 {
		t.Errorf("expected 18000 matched core ids, got %d", identity.MatchedCoreID)
	}
	if identity.DuplicateRecordsPercent != 10.5 {
		t.Errorf("expected 10.5%% duplicates, got %v", identity.DuplicateRecordsPercent)
	}

	hygiene, err := p.HygieneSnapshot(domain.OneMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[domain.CorrectionType]int64{
		domain.CorrectionNCOA: 5000,
		domain.CorrectionPCOA: 2000,
		domain.CorrectionPCA:  1000,
	}
	if !reflect.DeepEqual(hygiene.Corrections, want) {
		t.Errorf("expected corrections %v, got %v", want, hygiene.Corrections)
	}

	shares, err := domain.Percent(hygiene.CorrectionCounts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shares[0].Label != "NCOA" || math.Abs(shares[0].Percent-62.5) > 1e-9 {
		t.Errorf("expected NCOA share 62.5, got %+v", shares[0])
	}
}

func TestStaticProvider_InvalidRange(t *testing.T) {
	p := NewStaticProvider()

	for _, bad := range []domain.TimeRange{"2 Months", "", "12m"} {
		_, err := p.IdentitySnapshot(bad)
		if !errors.Is(err, domain.ErrInvalidRange) {
			t.Errorf("identity %q: expected ErrInvalidRange, got %v", bad, err)
		}
		_, err = p.HygieneSnapshot(bad)
		if !errors.Is(err, domain.ErrInvalidRange) {
			t.Errorf("hygiene %q: expected ErrInvalidRange, got %v", bad, err)
		}
	}
}

func TestStaticProvider_Monotonic(t *testing.T) {
	p := NewStaticProvider()
	ranges := domain.TimeRanges()

	for i := 1; i < len(ranges); i++ {
		shorter, longer := ranges[i-1], ranges[i]

		a, _ := p.IdentitySnapshot(shorter)
		b, _ := p.IdentitySnapshot(longer)
		checkGrowth(t, "total_profiles", shorter, longer, a.TotalProfiles, b.TotalProfiles)
		checkGrowth(t, "matched_core_id", shorter, longer, a.MatchedCoreID, b.MatchedCoreID)
		checkGrowth(t, "matched_household_id", shorter, longer, a.MatchedHouseholdID, b.MatchedHouseholdID)
		for j := range a.ChannelDistribution {
			name := string(a.ChannelDistribution[j].Category)
			checkGrowth(t, name+".total_identifiers", shorter, longer, a.ChannelDistribution[j].TotalIdentifiers, b.ChannelDistribution[j].TotalIdentifiers)
			checkGrowth(t, name+".unique_identifiers", shorter, longer, a.ChannelDistribution[j].UniqueIdentifiers, b.ChannelDistribution[j].UniqueIdentifiers)
		}

		h1, _ := p.HygieneSnapshot(shorter)
		h2, _ := p.HygieneSnapshot(longer)
		for _, c := range domain.Channels() {
			checkGrowth(t, "contact_complete."+string(c), shorter, longer, h1.ContactComplete[c], h2.ContactComplete[c])
		}
		for _, ct := range domain.CorrectionTypes() {
			checkGrowth(t, "corrections."+string(ct), shorter, longer, h1.Corrections[ct], h2.Corrections[ct])
		}
		checkGrowth(t, "email_valid", shorter, longer, h1.EmailValid, h2.EmailValid)
		checkGrowth(t, "email_invalid", shorter, longer, h1.EmailInvalid, h2.EmailInvalid)
	}
}

func checkGrowth(t *testing.T, field string, shorter, longer domain.TimeRange, a, b int64) {
	t.Helper()
	if b < a {
		t.Errorf("%s shrinks from %s (%d) to %s (%d)", field, shorter, a, longer, b)
	}
}

func TestStaticProvider_Idempotent(t *testing.T) {
	p := NewStaticProvider()

	first, _ := p.IdentitySnapshot(domain.ThreeMonths)
	first.ChannelDistribution[1].TotalIdentifiers = -42
	first.TotalProfiles = 0

	second, _ := p.IdentitySnapshot(domain.ThreeMonths)
	third, _ := p.IdentitySnapshot(domain.ThreeMonths)
	if !reflect.DeepEqual(second, third) {
		t.Error("repeated identity lookups differ")
	}
	if second.ChannelDistribution[1].TotalIdentifiers != 525000 || second.TotalProfiles != 75000 {
		t.Error("mutating a returned identity snapshot leaked into the table")
	}

	h, _ := p.HygieneSnapshot(domain.SixMonths)
	h.Corrections[domain.CorrectionNCOA] = 0
	delete(h.ContactComplete, domain.ChannelEmail)

	again, _ := p.HygieneSnapshot(domain.SixMonths)
	if again.Corrections[domain.CorrectionNCOA] != 30000 || again.ContactComplete[domain.ChannelEmail] != 216000 {
		t.Error("mutating a returned hygiene snapshot leaked into the table")
	}
}

func TestStaticProvider_ConcurrentReaders(t *testing.T) {
	p := NewStaticProvider()
	want, _ := p.HygieneSnapshot(domain.OneMonth)

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.HygieneSnapshot(domain.OneMonth)
			if err != nil {
				errs <- err
				return
			}
			got.Corrections[domain.CorrectionPCA]++
			if _, err := p.IdentitySnapshot(domain.SixMonths); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error during concurrent access: %v", err)
	}

	after, _ := p.HygieneSnapshot(domain.OneMonth)
	if !reflect.DeepEqual(want, after) {
		t.Errorf("table changed under concurrent readers: %v != %v", want, after)
	}
}
