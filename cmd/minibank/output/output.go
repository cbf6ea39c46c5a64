// Package output renders styled terminal messages and money values for the
// minibank CLI. Status messages go to stdout, errors to stderr, so piping
// command output stays clean.
package output

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/internal/domain"
)

var (
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#DC2626")
	colorInfo    = lipgloss.Color("#0EA5E9")
	colorMuted   = lipgloss.Color("#71717A")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// Success prints a confirmation line.
func Success(format string, args ...any) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

// Error prints a failure line to stderr.
func Error(format string, args ...any) {
	fmt.Fprint(os.Stderr, errorStyle.Render("✗ "))
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Info prints a secondary detail line.
func Info(format string, args ...any) {
	fmt.Print(infoStyle.Render("ℹ "))
	fmt.Printf(format+"\n", args...)
}

// Muted prints a low-emphasis note.
func Muted(format string, args ...any) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Money renders an amount the way a statement would: $1234.50.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// SignedMoney renders a transaction's balance effect, colored by direction.
func SignedMoney(tx domain.Transaction) string {
	delta := tx.Signed()
	if delta.Sign() < 0 {
		return errorStyle.Render("-" + Money(delta.Neg()))
	}
	return successStyle.Render("+" + Money(delta))
}

// UserMessage translates an error into the one-line form shown to the user.
// The full chain is for logs; the user gets the plain reason.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account not found; run 'minibank list' to see valid ids"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "amount must be greater than zero"
	case errors.Is(err, domain.ErrSameAccountTransfer):
		return "source and destination must be different accounts"
	case errors.Is(err, domain.ErrInvalidProfile):
		return "invalid profile: names and state are required, age must be 18-120"
	case errors.Is(err, domain.ErrInvalidField):
		return "invalid field value: names and state must not be empty, age must be 18-120"
	case errors.Is(err, domain.ErrPersistenceFailure):
		return "could not access the account file; no changes were made"
	default:
		return err.Error()
	}
}
