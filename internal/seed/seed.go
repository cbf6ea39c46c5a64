// Package seed generates the starter accounts a brand-new ledger is
// populated with.
package seed

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/ledger"
)

// DefaultCount is how many accounts a fresh ledger starts with.
const DefaultCount = 20

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert",
	"Jennifer", "Michael", "Linda", "William", "Elizabeth",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones",
	"Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
}

var states = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
}

// Generate produces n accounts with plausible profiles: ages 18 through 80,
// retirement past 67, account types alternating between checking and
// savings, and opening balances between $100.00 and $10,000.00.
func Generate(n int, rng *rand.Rand) []ledger.Seed {
	seeds := make([]ledger.Seed, 0, n)
	for i := 0; i < n; i++ {
		age := 18 + rng.IntN(63)
		job := domain.JobRetired
		if age <= 67 {
			if rng.IntN(2) == 0 {
				job = domain.JobEmployed
			} else {
				job = domain.JobUnemployed
			}
		}
		typ := domain.TypeChecking
		if i%2 == 1 {
			typ = domain.TypeSavings
		}
		cents := 10000 + rng.Int64N(990001)

		seeds = append(seeds, ledger.Seed{
			Profile: domain.Profile{
				FirstName: firstNames[rng.IntN(len(firstNames))],
				LastName:  lastNames[rng.IntN(len(lastNames))],
				Age:       age,
				State:     states[rng.IntN(len(states))],
				Job:       job,
				Type:      typ,
			},
			Opening: decimal.New(cents, -2),
		})
	}
	return seeds
}

// Provider wraps Generate with process randomness for normal startup.
func Provider(n int) ledger.SeedFunc {
	return func() []ledger.Seed {
		return Generate(n, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
}
