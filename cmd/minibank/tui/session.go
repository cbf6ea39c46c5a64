// Package tui implements the interactive session: a terminal UI over one
// loaded ledger that stays in memory for the whole sitting, so transaction
// histories accumulate and can be inspected or exported before exit.
package tui

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/minibank/minibank/cmd/minibank/output"
	"github.com/minibank/minibank/internal/domain"
	"github.com/minibank/minibank/internal/ledger"
)

type sessionMode int

const (
	modeAccounts sessionMode = iota
	modeMenu
	modePickDest
	modePickField
	modeForm
	modeHistory
	modeConfirmDelete
)

type menuAction int

const (
	actDeposit menuAction = iota
	actWithdraw
	actTransfer
	actHistory
	actUpdate
	actExport
	actDelete
	actBack
	actCreate
)

var menuItems = []struct {
	action menuAction
	label  string
}{
	{actDeposit, "Deposit money"},
	{actWithdraw, "Withdraw money"},
	{actTransfer, "Transfer money"},
	{actHistory, "Transaction history"},
	{actUpdate, "Update details"},
	{actExport, "Export history to CSV"},
	{actDelete, "Close account"},
	{actBack, "Back to accounts"},
}

const (
	fieldFirstName = iota
	fieldLastName
	fieldAge
	fieldState
	fieldJob
	fieldType
)

var profileFields = []string{"First name", "Last name", "Age", "State", "Job", "Account type"}

var createFields = []formField{
	{label: "First name", check: checkNotEmpty},
	{label: "Last name", check: checkNotEmpty},
	{label: "Age", placeholder: "18-120", check: checkAge},
	{label: "State", check: checkNotEmpty},
	{label: "Job", placeholder: "employed, unemployed or retired", check: checkJob},
	{label: "Account type", placeholder: "checking or savings", check: checkAccountType},
	{label: "Opening balance", placeholder: "0.00", check: checkOpening},
}

type sessionModel struct {
	ctx    context.Context
	ledger *ledger.Ledger

	mode       sessionMode
	accounts   list.Model
	menuCursor int

	selectedID string
	destID     string

	fieldCursor int
	pending     menuAction
	form        form

	histRows []domain.Transaction
	histKind domain.TransactionKind

	confirm confirmDialog

	status    string
	statusErr bool

	width  int
	height int
}

func newSessionModel(ctx context.Context, l *ledger.Ledger) sessionModel {
	lst := list.New([]list.Item{}, accountDelegate{}, 0, 0)
	lst.Title = "Accounts"
	lst.SetShowStatusBar(false)
	lst.SetShowHelp(false)
	lst.SetFilteringEnabled(true)
	lst.Styles.Title = titleStyle

	m := sessionModel{ctx: ctx, ledger: l, mode: modeAccounts, accounts: lst}
	m.refreshAccounts()
	return m
}

func (m *sessionModel) refreshAccounts() {
	items := make([]list.Item, 0, m.ledger.Len())
	for a := range m.ledger.ListAccounts(ledger.ListFilter{}) {
		items = append(items, accountItem{
			id:      a.ID,
			name:    a.FirstName + " " + a.LastName,
			accType: a.Type,
			state:   a.State,
			balance: a.Balance(),
		})
	}
	m.accounts.SetItems(items)
}

func (m *sessionModel) ok(format string, args ...any) {
	m.status, m.statusErr = fmt.Sprintf(format, args...), false
}

func (m *sessionModel) fail(err error) {
	m.status, m.statusErr = output.UserMessage(err), true
}

func (m sessionModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.accounts.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.route(msg)
}

// route forwards non-key messages to whichever component is on screen, so
// things like cursor blinks and filter updates keep working.
func (m sessionModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeAccounts, modePickDest:
		m.accounts, cmd = m.accounts.Update(msg)
	case modeForm:
		m.form.input, cmd = m.form.input.Update(msg)
	}
	return m, cmd
}

func (m sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case modeAccounts:
		return m.keyAccounts(msg)
	case modeMenu:
		return m.keyMenu(msg)
	case modePickDest:
		return m.keyPickDest(msg)
	case modePickField:
		return m.keyPickField(msg)
	case modeForm:
		return m.keyForm(msg)
	case modeHistory:
		return m.keyHistory(msg)
	case modeConfirmDelete:
		return m.keyConfirm(msg)
	}
	return m, nil
}

func (m sessionModel) keyAccounts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the user is typing a filter, every key belongs to the list.
	if m.accounts.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.accounts, cmd = m.accounts.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		m.pending = actCreate
		m.form = newForm("Open a new account", createFields...)
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	case "enter":
		item, ok := m.accounts.SelectedItem().(accountItem)
		if !ok {
			return m, nil
		}
		m.selectedID = item.id
		m.menuCursor = 0
		m.status = ""
		m.mode = modeMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.accounts, cmd = m.accounts.Update(msg)
	return m, cmd
}

func (m sessionModel) keyMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.status = ""
		m.mode = modeAccounts
		return m, nil
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
		return m, nil
	case "down", "j":
		if m.menuCursor < len(menuItems)-1 {
			m.menuCursor++
		}
		return m, nil
	case "enter":
		return m.dispatchMenu(menuItems[m.menuCursor].action)
	}
	return m, nil
}

func (m sessionModel) dispatchMenu(act menuAction) (tea.Model, tea.Cmd) {
	m.status = ""
	switch act {
	case actDeposit:
		m.pending = actDeposit
		m.form = newForm("Deposit", formField{label: "Amount", placeholder: "100.00", check: checkAmount})
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	case actWithdraw:
		m.pending = actWithdraw
		m.form = newForm("Withdraw", formField{label: "Amount", placeholder: "100.00", check: checkAmount})
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	case actTransfer:
		m.accounts.Title = "Transfer to"
		m.mode = modePickDest
		return m, nil
	case actHistory:
		m.histKind = ""
		m.histRows = m.collectHistory()
		m.mode = modeHistory
		return m, nil
	case actUpdate:
		m.fieldCursor = 0
		m.mode = modePickField
		return m, nil
	case actExport:
		m.pending = actExport
		m.form = newForm("Export history", formField{label: "File name", placeholder: shortID(m.selectedID) + ".csv", check: checkNotEmpty})
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	case actDelete:
		m.confirm = confirmDialog{
			title:   "Close account",
			message: "Delete this account and its history?\nThis cannot be undone.",
		}
		m.mode = modeConfirmDelete
		return m, nil
	case actBack:
		m.mode = modeAccounts
		return m, nil
	}
	return m, nil
}

func (m sessionModel) keyPickDest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.accounts.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.accounts, cmd = m.accounts.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "esc":
		m.accounts.Title = "Accounts"
		m.mode = modeMenu
		return m, nil
	case "enter":
		item, ok := m.accounts.SelectedItem().(accountItem)
		if !ok {
			return m, nil
		}
		m.destID = item.id
		m.accounts.Title = "Accounts"
		m.pending = actTransfer
		m.form = newForm("Transfer", formField{label: "Amount", placeholder: "100.00", check: checkAmount})
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	}
	var cmd tea.Cmd
	m.accounts, cmd = m.accounts.Update(msg)
	return m, cmd
}

func (m sessionModel) keyPickField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.mode = modeMenu
		return m, nil
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
		return m, nil
	case "down", "j":
		if m.fieldCursor < len(profileFields)-1 {
			m.fieldCursor++
		}
		return m, nil
	case "enter":
		f := formField{label: profileFields[m.fieldCursor], check: checkNotEmpty}
		switch m.fieldCursor {
		case fieldAge:
			f.placeholder, f.check = "18-120", checkAge
		case fieldJob:
			f.placeholder, f.check = "employed, unemployed or retired", checkJob
		case fieldType:
			f.placeholder, f.check = "checking or savings", checkAccountType
		}
		m.pending = actUpdate
		m.form = newForm("Update "+strings.ToLower(profileFields[m.fieldCursor]), f)
		m.mode = modeForm
		cmd := m.form.focus()
		return m, cmd
	}
	return m, nil
}

func (m sessionModel) keyForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.pending == actCreate {
			m.mode = modeAccounts
		} else {
			m.mode = modeMenu
		}
		return m, nil
	case "enter":
		if m.form.submit() {
			return m.applyForm()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return m, cmd
}

// applyForm runs the pending ledger operation. Values have already passed
// their field checks, so the re-parses here cannot fail.
func (m sessionModel) applyForm() (tea.Model, tea.Cmd) {
	vals := m.form.values
	switch m.pending {
	case actDeposit:
		amount, _ := decimal.NewFromString(vals[0])
		tx, err := m.ledger.Deposit(m.ctx, m.selectedID, amount)
		if err != nil {
			m.fail(err)
		} else {
			m.ok("deposited %s", output.Money(tx.Amount))
		}
		m.mode = modeMenu
	case actWithdraw:
		amount, _ := decimal.NewFromString(vals[0])
		tx, err := m.ledger.Withdraw(m.ctx, m.selectedID, amount)
		if err != nil {
			m.fail(err)
		} else {
			m.ok("withdrew %s", output.Money(tx.Amount))
		}
		m.mode = modeMenu
	case actTransfer:
		amount, _ := decimal.NewFromString(vals[0])
		rcpt, err := m.ledger.Transfer(m.ctx, m.selectedID, m.destID, amount)
		if err != nil {
			m.fail(err)
		} else {
			m.ok("transferred %s to %s", output.Money(rcpt.Outgoing.Amount), shortID(m.destID))
		}
		m.mode = modeMenu
	case actUpdate:
		upd := profileUpdateFor(m.fieldCursor, vals[0])
		if err := m.ledger.UpdateAccount(m.ctx, m.selectedID, upd); err != nil {
			m.fail(err)
		} else {
			m.ok("account updated")
		}
		m.mode = modeMenu
	case actExport:
		n, err := m.exportHistory(vals[0])
		if err != nil {
			m.fail(err)
		} else {
			m.ok("exported %d transaction(s) to %s", n, vals[0])
		}
		m.mode = modeMenu
	case actCreate:
		acct, err := m.createAccount(vals)
		if err != nil {
			m.fail(err)
		} else {
			m.ok("account created for %s %s", acct.FirstName, acct.LastName)
		}
		m.mode = modeAccounts
	}
	m.refreshAccounts()
	return m, nil
}

func profileUpdateFor(field int, val string) domain.ProfileUpdate {
	var upd domain.ProfileUpdate
	switch field {
	case fieldFirstName:
		upd.FirstName = &val
	case fieldLastName:
		upd.LastName = &val
	case fieldAge:
		age, _ := strconv.Atoi(val)
		upd.Age = &age
	case fieldState:
		upd.State = &val
	case fieldJob:
		job, _ := domain.ParseJob(val)
		upd.Job = &job
	case fieldType:
		typ, _ := domain.ParseAccountType(val)
		upd.Type = &typ
	}
	return upd
}

func (m sessionModel) createAccount(vals []string) (*domain.Account, error) {
	age, _ := strconv.Atoi(vals[2])
	job, _ := domain.ParseJob(vals[4])
	typ, _ := domain.ParseAccountType(vals[5])
	opening := decimal.Zero
	if vals[6] != "" {
		opening, _ = decimal.NewFromString(vals[6])
	}
	return m.ledger.CreateAccount(m.ctx, domain.Profile{
		FirstName: vals[0],
		LastName:  vals[1],
		Age:       age,
		State:     vals[3],
		Job:       job,
		Type:      typ,
	}, opening)
}

func (m sessionModel) exportHistory(path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	n, err := m.ledger.ExportHistory(m.ctx, m.selectedID, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func (m sessionModel) collectHistory() []domain.Transaction {
	acct, err := m.ledger.GetAccount(m.ctx, m.selectedID)
	if err != nil {
		return nil
	}
	if m.histKind != "" {
		return slices.Collect(acct.FilterHistory(m.histKind))
	}
	return slices.Collect(acct.History())
}

func (m sessionModel) keyHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f":
		m.histKind = nextKindFilter(m.histKind)
		m.histRows = m.collectHistory()
		return m, nil
	case "esc", "b", "enter":
		m.mode = modeMenu
		return m, nil
	}
	return m, nil
}

func (m sessionModel) keyConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		m.confirm.toggle()
		return m, nil
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "enter":
		if !m.confirm.yes {
			m.mode = modeMenu
			return m, nil
		}
		if err := m.ledger.DeleteAccount(m.ctx, m.selectedID); err != nil {
			m.fail(err)
			m.mode = modeMenu
			return m, nil
		}
		m.ok("account closed")
		m.refreshAccounts()
		m.mode = modeAccounts
		return m, nil
	}
	return m, nil
}

func (m sessionModel) View() string {
	switch m.mode {
	case modeAccounts, modePickDest:
		return m.accountsView()
	case modeMenu:
		return m.menuView()
	case modePickField:
		return m.pickFieldView()
	case modeForm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.view())
	case modeHistory:
		return m.historyView()
	case modeConfirmDelete:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.view())
	}
	return ""
}

func (m sessionModel) accountsView() string {
	help := helpLine(
		helpKey("↑/↓", "navigate"),
		helpKey("/", "filter"),
		helpKey("enter", "select"),
		helpKey("n", "new account"),
		helpKey("q", "quit"),
	)
	if m.mode == modePickDest {
		help = helpLine(
			helpKey("↑/↓", "navigate"),
			helpKey("enter", "choose destination"),
			helpKey("esc", "cancel"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.accounts.View(),
		m.statusView(),
		help,
	)
}

func (m sessionModel) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorStyle.Render("✗ " + m.status)
	}
	return successStyle.Render("✓ " + m.status)
}

func (m sessionModel) menuView() string {
	acct, err := m.ledger.GetAccount(m.ctx, m.selectedID)
	if err != nil {
		return errorStyle.Render(output.UserMessage(err))
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(acct.FirstName + " " + acct.LastName))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(acct.ID))
	b.WriteString("\n\n")
	b.WriteString("Balance: " + output.Money(acct.Balance()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s account, %s, age %d, %s", acct.Type, acct.Job, acct.Age, acct.State)))
	b.WriteString("\n\n")
	for i, it := range menuItems {
		if i == m.menuCursor {
			b.WriteString(selectedItemStyle.Render("▸ " + it.label))
		} else {
			b.WriteString(unselectedItemStyle.Render(it.label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if s := m.statusView(); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString(helpLine(helpKey("↑/↓", "navigate"), helpKey("enter", "select"), helpKey("esc", "back"), helpKey("q", "quit")))
	return b.String()
}

func (m sessionModel) pickFieldView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Update which field?"))
	b.WriteString("\n\n")
	for i, label := range profileFields {
		if i == m.fieldCursor {
			b.WriteString(selectedItemStyle.Render("▸ " + label))
		} else {
			b.WriteString(unselectedItemStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpLine(helpKey("↑/↓", "navigate"), helpKey("enter", "select"), helpKey("esc", "back")))
	return b.String()
}

func (m sessionModel) historyView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Transaction history"))
	b.WriteString("\n")
	filter := "all kinds"
	if m.histKind != "" {
		filter = string(m.histKind)
	}
	b.WriteString(mutedStyle.Render("filter: " + filter))
	b.WriteString("\n\n")
	max := m.height - 10
	if max < 5 {
		max = 5
	}
	b.WriteString(historyTable(m.histRows, max))
	b.WriteString("\n")
	b.WriteString(helpLine(helpKey("f", "cycle kind filter"), helpKey("esc", "back"), helpKey("q", "quit")))
	return b.String()
}

// RunSession opens the interactive terminal session over a loaded ledger.
func RunSession(ctx context.Context, l *ledger.Ledger) error {
	_, err := tea.NewProgram(newSessionModel(ctx, l)).Run()
	return err
}
