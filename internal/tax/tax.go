// Package tax implements the progressive salary tax schedule and the
// derived payslip figures. Everything here is pure; validation of inputs
// is the caller's responsibility.
package tax

const (
	MaritalStatusSingle  = "single"
	MaritalStatusMarried = "married"

	thresholdSingle  = 500_000
	thresholdMarried = 600_000

	baseRate   = 0.01
	excessRate = 0.015
)

// Threshold returns the annual income at which the higher bracket starts.
// Any status other than married is treated as single, matching the
// defaulting the rest of the system applies when an employee is unknown.
func Threshold(maritalStatus string) float64 {
	if maritalStatus == MaritalStatusMarried {
		return thresholdMarried
	}
	return thresholdSingle
}

// Annual computes the yearly tax liability: 1% up to the threshold, then
// 1% of the threshold plus 1.5% of the excess.
func Annual(annualIncome float64, maritalStatus string) float64 {
	threshold := Threshold(maritalStatus)
	if annualIncome <= threshold {
		return annualIncome * baseRate
	}
	return threshold*baseRate + (annualIncome-threshold)*excessRate
}

// Monthly derives the monthly tax for a payslip from its monthly gross.
func Monthly(grossSalary float64, maritalStatus string) float64 {
	return Annual(grossSalary*12, maritalStatus) / 12
}

// NetSalary is the written-at-write-time identity every payslip satisfies.
func NetSalary(grossSalary, totalDeductions, taxAmount float64) float64 {
	return grossSalary - totalDeductions - taxAmount
}
