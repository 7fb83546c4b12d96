package usecase

import "github.com/shopspring/decimal"

// MonthlyPayment computes the fixed-rate amortized monthly payment for a
// principal over termMonths at the given annual rate, rounded to a whole
// currency unit.
//
// payment = P * i * (1+i)^n / ((1+i)^n - 1), i = annualRate / 12
func MonthlyPayment(amount float64, termMonths int, annualRate float64) float64 {
	if amount <= 0 || termMonths <= 0 {
		return 0
	}

	principal := decimal.NewFromFloat(amount)
	if annualRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(0).InexactFloat64()
	}

	one := decimal.NewFromInt(1)
	monthlyRate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	payment := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(one))
	return payment.Round(0).InexactFloat64()
}
