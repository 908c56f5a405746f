package portal

import (
	"math/rand/v2"

	"github.com/etnz/portal/date"
)

// PHP is a helper for test to create pesos from const
func PHP(v float64) Money { return Pesos(v) }

// testGenerator returns a deterministic generator, today being 2026-10-15.
func testGenerator() *Generator {
	return &Generator{
		Rand:  rand.New(rand.NewPCG(1, 2)),
		Today: func() date.Date { return date.MustParse("2026-10-15") },
	}
}

// newTestAccount returns a freshly generated account.
func newTestAccount(name, studentNumber, password string) *Account {
	a := &Account{
		Name:          name,
		StudentNumber: studentNumber,
		Course:        "BS Computer Science",
		Year:          SecondYear,
		Email:         name + "@example.com",
		Password:      password,
	}
	testGenerator().Populate(a)
	return a
}
