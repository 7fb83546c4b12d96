package usecase

import (
	"math"
	"testing"
)

func TestMonthlyPayment(t *testing.T) {
	t.Run("standard amortization", func(t *testing.T) {
		// 100000 over 24 months at 15% annual: P*i*(1+i)^n/((1+i)^n-1).
		got := MonthlyPayment(100000, 24, 0.15)
		if got != 4849 {
			t.Fatalf("expected 4849, got %v", got)
		}
	})

	t.Run("matches an independent recomputation within rounding", func(t *testing.T) {
		cases := []struct {
			amount float64
			term   int
			rate   float64
		}{
			{100000, 24, 0.15},
			{50000, 12, 0.30},
			{250000, 48, 0.095},
			{7500, 6, 0.22},
		}
		for _, tc := range cases {
			i := tc.rate / 12
			factor := math.Pow(1+i, float64(tc.term))
			want := tc.amount * i * factor / (factor - 1)
			got := MonthlyPayment(tc.amount, tc.term, tc.rate)
			if math.Abs(got-want) > 0.501 {
				t.Fatalf("amount=%v term=%d rate=%v: got %v, recomputed %v", tc.amount, tc.term, tc.rate, got, want)
			}
		}
	})

	t.Run("zero rate divides evenly", func(t *testing.T) {
		got := MonthlyPayment(12000, 12, 0)
		if got != 1000 {
			t.Fatalf("expected 1000, got %v", got)
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if got := MonthlyPayment(0, 24, 0.15); got != 0 {
			t.Fatalf("expected 0 for zero amount, got %v", got)
		}
		if got := MonthlyPayment(100000, 0, 0.15); got != 0 {
			t.Fatalf("expected 0 for zero term, got %v", got)
		}
		if got := MonthlyPayment(-1, 24, 0.15); got != 0 {
			t.Fatalf("expected 0 for negative amount, got %v", got)
		}
	})

	t.Run("payment exceeds straight division when rate is positive", func(t *testing.T) {
		withInterest := MonthlyPayment(100000, 24, 0.15)
		straight := MonthlyPayment(100000, 24, 0)
		if withInterest <= straight {
			t.Fatalf("expected interest to raise the payment: %v <= %v", withInterest, straight)
		}
	})
}
