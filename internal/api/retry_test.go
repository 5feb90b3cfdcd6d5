package api

import (
	"testing"
	"time"
)

func TestPolicyWait(t *testing.T) {
	p := Policy{ShortWait: 2 * time.Second, LongWait: 5 * time.Second}

	wait, ok := p.Wait(1)
	if !ok || wait != 2*time.Second {
		t.Errorf("Wait(1) = (%v, %v), want (2s, true)", wait, ok)
	}

	wait, ok = p.Wait(2)
	if !ok || wait != 5*time.Second {
		t.Errorf("Wait(2) = (%v, %v), want (5s, true)", wait, ok)
	}

	// Third failure exhausts the budget; no further automatic retry.
	if _, ok := p.Wait(3); ok {
		t.Error("Wait(3) reported a retry after the budget was exhausted")
	}
	if _, ok := p.Wait(4); ok {
		t.Error("Wait(4) reported a retry after the budget was exhausted")
	}
}

func TestPolicyStatusDistinctPerAttempt(t *testing.T) {
	p := Policy{}

	s1 := p.Status("Fetching question", 1)
	s2 := p.Status("Fetching question", 2)
	s3 := p.Status("Fetching question", 3)

	if s1 == "" || s2 == "" || s3 == "" {
		t.Fatal("expected non-empty status lines")
	}
	if s1 == s2 || s2 == s3 || s1 == s3 {
		t.Errorf("expected distinct status per attempt, got %q / %q / %q", s1, s2, s3)
	}
}
