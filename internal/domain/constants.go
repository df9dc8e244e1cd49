package domain

// Simulation horizon and account model sizing. The four-account layout is
// fixed in v1; the indices below are used directly into per-account slices.
const (
	// MaxYears is the projection horizon in years.
	MaxYears = 50

	// MaxAccounts is the number of supported account categories.
	MaxAccounts = 4

	// BaseYear anchors year index 0 for display purposes.
	BaseYear = 2025
)

// Account indices. These are semantically meaningful: the Individual
// (taxable) account is the only one available from year 0, and the
// contribution scalars map onto the remaining three.
const (
	IndividualIndex = 0
	RothIndex       = 1
	IRAIndex        = 2
	R401kIndex      = 3
)

// Validation bounds for user profiles.
const (
	// MaxAvgGrowth is the largest average growth rate a profile may specify.
	MaxAvgGrowth = 0.3

	// MaxAvgInflation is the largest average inflation rate a profile may
	// specify.
	MaxAvgInflation = 0.3

	// MaxContribution caps each of the annual Roth, IRA and 401k
	// contribution amounts for the starting year.
	MaxContribution = 100000
)
