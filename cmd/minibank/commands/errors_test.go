package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minibank/minibank/internal/domain"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(usagef("amount %q is not a valid number", "abc")))
	assert.Equal(t, 2, exitCode(fmt.Errorf("create: %w", usagef("bad flag"))))
	assert.Equal(t, 1, exitCode(fmt.Errorf("Withdraw: %w", domain.ErrInsufficientFunds)))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))
}
