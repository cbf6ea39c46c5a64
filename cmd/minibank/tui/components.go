package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
)

// accountItem is one row of the account list.
type accountItem struct {
	id      string
	name    string
	accType domain.AccountType
	state   string
	balance decimal.Decimal
}

func (i accountItem) FilterValue() string { return i.name + " " + i.state }
func (i accountItem) Title() string       { return fmt.Sprintf("%s - %s", i.name, i.accType) }
func (i accountItem) Description() string {
	return mutedStyle.Render(i.id) + "  " + output.Money(i.balance)
}

type accountDelegate struct{}

func (d accountDelegate) Height() int                             { return 2 }
func (d accountDelegate) Spacing() int                            { return 1 }
func (d accountDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d accountDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(accountItem)
	if !ok {
		return
	}
	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("▸ "+i.Title()+"\n  "+i.Description()))
		return
	}
	fmt.Fprint(w, unselectedItemStyle.Render("  "+i.Title()+"\n  "+i.Description()))
}

// formField is one prompt of a form. check validates the raw input when the
// user presses enter; the field does not advance until it passes.
type formField struct {
	label       string
	placeholder string
	check       func(string) error
}

func checkAmount(s string) error {
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("%q is not a valid amount", s)
	}
	return nil
}

// checkOpening allows a blank value, which the caller treats as zero.
func checkOpening(s string) error {
	if s == "" {
		return nil
	}
	return checkAmount(s)
}

func checkAge(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("age must be a whole number, got %q", s)
	}
	return nil
}

func checkJob(s string) error {
	if _, err := domain.ParseJob(s); err != nil {
		return fmt.Errorf("job must be employed, unemployed or retired, got %q", s)
	}
	return nil
}

func checkAccountType(s string) error {
	if _, err := domain.ParseAccountType(s); err != nil {
		return fmt.Errorf("account type must be checking or savings, got %q", s)
	}
	return nil
}

func checkNotEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// form walks the user through a fixed list of fields, one input at a time.
type form struct {
	title  string
	fields []formField
	values []string
	idx    int
	input  textinput.Model
	errMsg string
}

func newForm(title string, fields ...formField) form {
	in := textinput.New()
	in.Placeholder = fields[0].placeholder
	in.CharLimit = 64
	in.Width = 32
	return form{
		title:  title,
		fields: fields,
		values: make([]string, 0, len(fields)),
		input:  in,
	}
}

func (f *form) focus() tea.Cmd { return f.input.Focus() }

// submit records the current value and reports whether every field has been
// accepted. A failed check keeps the cursor on the same field.
func (f *form) submit() bool {
	val := strings.TrimSpace(f.input.Value())
	if check := f.fields[f.idx].check; check != nil {
		if err := check(val); err != nil {
			f.errMsg = err.Error()
			return false
		}
	}
	f.errMsg = ""
	f.values = append(f.values, val)
	f.idx++
	if f.idx >= len(f.fields) {
		return true
	}
	f.input.Reset()
	f.input.Placeholder = f.fields[f.idx].placeholder
	return false
}

func (f form) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n\n")
	if len(f.fields) > 1 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("step %d of %d", f.idx+1, len(f.fields))))
		b.WriteString("\n")
	}
	b.WriteString(f.fields[f.idx].label)
	b.WriteString("\n")
	b.WriteString(f.input.View())
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(helpLine(helpKey("enter", "accept"), helpKey("esc", "cancel")))
	return boxStyle.Render(b.String())
}

// confirmDialog is a yes/no prompt. No is preselected so a reflexive enter
// does nothing destructive.
type confirmDialog struct {
	title   string
	message string
	yes     bool
}

func (d *confirmDialog) toggle() { d.yes = !d.yes }

func (d confirmDialog) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.title))
	b.WriteString("\n\n")
	b.WriteString(d.message)
	b.WriteString("\n\n")
	yesBtn := inactiveButtonStyle.Render("Yes")
	noBtn := activeButtonStyle.Render("No")
	if d.yes {
		yesBtn = activeButtonStyle.Render("Yes")
		noBtn = inactiveButtonStyle.Render("No")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn))
	b.WriteString("\n\n")
	b.WriteString(helpLine(helpKey("←/→", "choose"), helpKey("enter", "confirm"), helpKey("esc", "cancel")))
	return boxStyle.Render(b.String())
}

// nextKindFilter cycles the history filter through every transaction kind
// and back to unfiltered.
func nextKindFilter(k domain.TransactionKind) domain.TransactionKind {
	switch k {
	case "":
		return domain.KindDeposit
	case domain.KindDeposit:
		return domain.KindWithdrawal
	case domain.KindWithdrawal:
		return domain.KindTransferIn
	case domain.KindTransferIn:
		return domain.KindTransferOut
	default:
		return ""
	}
}

// historyTable renders transactions oldest-first in fixed-width columns.
// Cells stay unstyled: ANSI codes would throw off the widths.
func historyTable(rows []domain.Transaction, max int) string {
	if len(rows) == 0 {
		return mutedStyle.Render("no transactions this session")
	}
	var b strings.Builder
	start := 0
	if max > 0 && len(rows) > max {
		start = len(rows) - max
		b.WriteString(mutedStyle.Render(fmt.Sprintf("showing last %d of %d", max, len(rows))))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%-19s  %-12s  %12s  %s", "WHEN", "KIND", "AMOUNT", "COUNTERPARTY")))
	b.WriteString("\n")
	for _, tx := range rows[start:] {
		counterparty := tx.Counterparty
		if counterparty == "" {
			counterparty = "-"
		}
		amount := tx.Signed().StringFixed(2)
		if tx.Signed().Sign() > 0 {
			amount = "+" + amount
		}
		fmt.Fprintf(&b, "%-19s  %-12s  %12s  %s\n",
			tx.Timestamp.Format("2006-01-02 15:04:05"),
			tx.Kind,
			amount,
			counterparty,
		)
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
