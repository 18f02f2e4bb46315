// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-equip-keeper/internal/logger"
	"github.com/MKhiriev/go-equip-keeper/internal/service"
	"github.com/MKhiriev/go-equip-keeper/internal/state"
	"github.com/MKhiriev/go-equip-keeper/internal/validators"
	"github.com/MKhiriev/go-equip-keeper/models"
)

type requestOp int

const (
	opFetch requestOp = iota
	opAdd
	opUpdate
	opDelete
	opDistribute
	opReturn
	opLogin
	opRegister
	opLogout
)

var opNames = map[requestOp]string{
	opFetch:      "fetch",
	opAdd:        "add",
	opUpdate:     "update",
	opDelete:     "delete",
	opDistribute: "distribute",
	opReturn:     "return",
	opLogin:      "login",
	opRegister:   "register",
	opLogout:     "logout",
}

func (o requestOp) String() string { return opNames[o] }

// appModel is the single bubbletea model of the client. The current view
// lives in the inventory store; the model only keeps per-screen input state.
// After every message the auth gate is evaluated and may override the view.
type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	validator     validators.Validator
	buildInfo     models.AppBuildInfo
	bannerTimeout time.Duration
	logger        *logger.Logger

	home       homeModel
	login      loginModel
	register   registerModel
	laptopForm laptopFormModel
	distribute distributeModel
	giveBack   returnModel
	list       listModel

	spinner  spinner.Model
	inFlight int
	fetching bool
	// generation is bumped on logout. Requests issued before it finish
	// without any follow-up.
	generation int

	banner        banner
	confirm       *confirmModel
	showBuildInfo bool
	quitting      bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, bannerTimeout time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		services:      services,
		validator:     validators.NewInventoryValidator(),
		buildInfo:     buildInfo,
		bannerTimeout: bannerTimeout,
		logger:        log,
		login:         newLoginModel(),
		register:      newRegisterModel(),
		laptopForm:    newLaptopFormModel(),
		distribute:    newDistributeModel(),
		giveBack:      newReturnModel(),
		list:          newListModel(false),
		spinner:       s,
	}
}

func (m appModel) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.quitting {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.enforce())
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	session := m.services.SessionService.Snapshot()
	inv := m.services.InventoryService.Snapshot()

	var b strings.Builder
	b.WriteString(m.header(session))
	b.WriteString("\n")
	if m.banner.text != "" {
		b.WriteString(m.banner.View())
	}
	b.WriteString("\n\n")

	switch inv.View() {
	case state.ViewLogin:
		b.WriteString(m.login.View(session.ErrorMessage()))
	case state.ViewRegister:
		b.WriteString(m.register.View(session.ErrorMessage()))
	case state.ViewListAll, state.ViewListDistributed:
		b.WriteString(m.list.View(inv))
	case state.ViewAddLaptop:
		b.WriteString(m.laptopForm.View(false))
	case state.ViewEditLaptop:
		b.WriteString(m.laptopForm.View(true))
	case state.ViewDistributeForm:
		b.WriteString(m.distribute.View(models.Available(inv.Items())))
	case state.ViewReturnForm:
		b.WriteString(m.giveBack.View(models.Distributed(inv.Items())))
	default:
		b.WriteString(m.home.View(inv))
	}

	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return appStyle.Render(b.String())
}

func (m appModel) header(session state.Session) string {
	out := titleStyle.Render("Equipment Keeper")
	if user, ok := session.User(); ok && session.IsAuthenticated() {
		out += helpStyle.Render(fmt.Sprintf("   %s (%s)", user.Username, user.Role))
	}
	if m.inFlight > 0 {
		out += "  " + m.spinner.View()
	}
	return out
}

func (m *appModel) view() state.View {
	return m.services.InventoryService.Snapshot().View()
}

func (m *appModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case startMsg:
		return m.enter(m.view())
	case requestDoneMsg:
		return m.finish(msg)
	case bannerExpiredMsg:
		if msg.seq == m.banner.seq {
			m.banner.text = ""
			m.services.InventoryService.ClearMessages()
			m.services.SessionService.ClearMessages()
		}
		return nil
	case copiedMsg:
		return m.showBanner("Serial number "+msg.text+" copied to clipboard.", bannerInfo)
	case copyFailedMsg:
		m.logger.Err(msg.err).Msg("copy to clipboard failed")
		return m.showBanner("Could not copy to clipboard.", bannerError)
	case spinner.TickMsg:
		if m.inFlight == 0 {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

// enforce applies the auth gate after a transition. A redirect prepares the
// target screen and surfaces the gate's notice.
func (m *appModel) enforce() tea.Cmd {
	d := m.services.AuthGate.Enforce()
	if !d.Redirected {
		return nil
	}

	m.logger.Debug().Stringer("view", d.View).Str("notice", string(d.Notice)).Msg("auth gate redirect")

	m.confirm = nil
	cmds := []tea.Cmd{m.enter(d.View)}
	if d.Notice != state.NoticeNone {
		cmds = append(cmds, m.showBanner(string(d.Notice), bannerInfo))
	}
	return tea.Batch(cmds...)
}

func (m *appModel) navigate(v state.View) tea.Cmd {
	m.services.InventoryService.SetView(v)
	return m.enter(v)
}

// enter resets the input state of the screen for v and triggers the lazy
// fetch of the collection.
func (m *appModel) enter(v state.View) tea.Cmd {
	switch v {
	case state.ViewHome:
		m.home = homeModel{}
	case state.ViewLogin:
		m.login = newLoginModel()
	case state.ViewRegister:
		m.register = newRegisterModel()
	case state.ViewAddLaptop:
		m.laptopForm = newLaptopFormModel()
	case state.ViewEditLaptop:
		m.laptopForm = newLaptopFormModel()
		if l, ok := m.services.InventoryService.Snapshot().Editing(); ok {
			m.laptopForm.fill(l)
		}
	case state.ViewDistributeForm:
		m.distribute = newDistributeModel()
	case state.ViewReturnForm:
		m.giveBack = newReturnModel()
	case state.ViewListAll:
		m.list = newListModel(false)
	case state.ViewListDistributed:
		m.list = newListModel(true)
	}

	return m.lazyFetch()
}

func (m *appModel) lazyFetch() tea.Cmd {
	if m.fetching || !state.NeedsFetch(m.services.SessionService.Valid(), m.services.InventoryService.Snapshot()) {
		return nil
	}
	return m.fetch()
}

func (m *appModel) fetch() tea.Cmd {
	if m.fetching {
		return nil
	}
	m.fetching = true
	return m.request(opFetch, m.services.InventoryService.FetchAll)
}

// request runs call off the event loop and reports back with requestDoneMsg.
func (m *appModel) request(op requestOp, call func(ctx context.Context) error) tea.Cmd {
	m.inFlight++
	ctx, log, generation := m.ctx, m.logger, m.generation

	run := func() tea.Msg {
		err := call(ctx)
		if err != nil {
			log.Debug().Err(err).Stringer("op", op).Msg("request finished with error")
		}
		return requestDoneMsg{op: op, err: err, generation: generation}
	}

	if m.inFlight == 1 {
		return tea.Batch(m.spinner.Tick, run)
	}
	return run
}

// finish applies the follow-up of a finished request: the banner and the
// post-action navigation. Failures keep the current screen.
func (m *appModel) finish(msg requestDoneMsg) tea.Cmd {
	if m.inFlight > 0 {
		m.inFlight--
	}
	if msg.generation != m.generation {
		m.logger.Debug().Stringer("op", msg.op).Msg("ignoring request issued before logout")
		return nil
	}

	switch msg.op {
	case opLogin, opRegister:
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			return m.sessionBanner()
		}
		return tea.Batch(m.sessionBanner(), m.navigate(state.ViewHome))

	case opLogout:
		m.services.InventoryService.Reset()
		m.generation++
		m.fetching = false
		m.laptopForm.submitting = false
		m.distribute.submitting = false
		m.giveBack.submitting = false
		return tea.Batch(m.sessionBanner(), m.navigate(state.ViewLogin))

	case opFetch:
		m.fetching = false
		if msg.err != nil {
			return m.inventoryBanner()
		}
		if m.view() == state.ViewEditLaptop && !m.laptopForm.loaded {
			if l, ok := m.services.InventoryService.Snapshot().Editing(); ok {
				m.laptopForm.fill(l)
			}
		}
		return nil
	}

	m.laptopForm.submitting = false
	m.distribute.submitting = false
	m.giveBack.submitting = false

	bannerCmd := m.inventoryBanner()
	if msg.err != nil {
		return bannerCmd
	}

	switch msg.op {
	case opAdd, opUpdate, opDistribute:
		return tea.Batch(bannerCmd, m.navigate(state.ViewListAll))
	case opReturn:
		return tea.Batch(bannerCmd, m.navigate(state.ViewHome))
	}
	return bannerCmd
}

func (m *appModel) showBanner(text string, kind bannerKind) tea.Cmd {
	m.banner = banner{text: text, kind: kind, seq: m.banner.seq + 1}
	seq := m.banner.seq
	return tea.Tick(m.bannerTimeout, func(time.Time) tea.Msg {
		return bannerExpiredMsg{seq: seq}
	})
}

func (m *appModel) inventoryBanner() tea.Cmd {
	inv := m.services.InventoryService.Snapshot()
	return m.lifecycleBanner(inv.ErrorMessage(), inv.SuccessMessage())
}

func (m *appModel) sessionBanner() tea.Cmd {
	session := m.services.SessionService.Snapshot()
	return m.lifecycleBanner(session.ErrorMessage(), session.SuccessMessage())
}

func (m *appModel) lifecycleBanner(errText, successText string) tea.Cmd {
	switch {
	case errText != "":
		return m.showBanner(errText, bannerError)
	case successText != "":
		return m.showBanner(successText, bannerSuccess)
	}
	return nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.forceQuit) {
		m.quitting = true
		return tea.Quit
	}
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return nil
	}

	switch m.view() {
	case state.ViewLogin:
		return m.updateLogin(msg)
	case state.ViewRegister:
		return m.updateRegister(msg)
	case state.ViewListAll, state.ViewListDistributed:
		return m.updateList(msg)
	case state.ViewAddLaptop, state.ViewEditLaptop:
		return m.updateLaptopForm(msg)
	case state.ViewDistributeForm:
		return m.updateDistribute(msg)
	case state.ViewReturnForm:
		return m.updateReturn(msg)
	default:
		return m.updateHome(msg)
	}
}

// updateFocused forwards non-key messages, such as cursor blinks, to the
// focused input of the current screen.
func (m *appModel) updateFocused(msg tea.Msg) tea.Cmd {
	switch m.view() {
	case state.ViewLogin:
		return m.login.update(msg)
	case state.ViewRegister:
		return m.register.update(msg)
	case state.ViewAddLaptop, state.ViewEditLaptop:
		return m.laptopForm.update(msg)
	case state.ViewDistributeForm:
		return m.distribute.update(msg)
	case state.ViewReturnForm:
		return m.giveBack.update(msg)
	case state.ViewListAll, state.ViewListDistributed:
		if m.list.searching {
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		c := *m.confirm
		m.confirm = nil
		inventory := m.services.InventoryService

		switch c.op {
		case opDelete:
			return m.request(opDelete, func(ctx context.Context) error {
				return inventory.Delete(ctx, c.laptopID)
			})
		case opDistribute:
			m.distribute.submitting = true
			return m.request(opDistribute, func(ctx context.Context) error {
				return inventory.Distribute(ctx, c.distribute)
			})
		}
	case key.Matches(msg, keys.no, keys.esc):
		m.confirm = nil
	}
	return nil
}

func (m *appModel) updateHome(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		m.home.move(-1)
	case key.Matches(msg, keys.down):
		m.home.move(1)
	case key.Matches(msg, keys.enter):
		item := m.home.selected()
		if item.logout {
			return m.request(opLogout, m.services.SessionService.Logout)
		}
		return m.navigate(item.view)
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *appModel) updateLogin(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.login.next()
		return nil
	case key.Matches(msg, keys.backtab):
		m.login.prev()
		return nil
	case key.Matches(msg, keys.toRegister):
		return m.navigate(state.ViewRegister)
	case key.Matches(msg, keys.enter):
		if m.login.submitting {
			return nil
		}
		creds := m.login.credentials()
		if err := m.validator.Validate(m.ctx, creds); err != nil {
			m.login.err = validators.Message(err)
			return nil
		}
		m.login.err = ""
		m.login.submitting = true
		sessions := m.services.SessionService
		return m.request(opLogin, func(ctx context.Context) error {
			return sessions.Login(ctx, creds)
		})
	}
	return m.login.update(msg)
}

func (m *appModel) updateRegister(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.tab):
		m.register.next()
		return nil
	case key.Matches(msg, keys.backtab):
		m.register.prev()
		return nil
	case key.Matches(msg, keys.pickUp):
		m.register.cycleRole(-1)
		return nil
	case key.Matches(msg, keys.pickDown):
		m.register.cycleRole(1)
		return nil
	case key.Matches(msg, keys.esc):
		return m.navigate(state.ViewLogin)
	case key.Matches(msg, keys.enter):
		if m.register.submitting {
			return nil
		}
		reg := m.register.registration()
		if err := m.validator.Validate(m.ctx, reg); err != nil {
			m.register.err = validators.Message(err)
			return nil
		}
		m.register.err = ""
		m.register.submitting = true
		sessions := m.services.SessionService
		return m.request(opRegister, func(ctx context.Context) error {
			return sessions.Register(ctx, reg)
		})
	}
	return m.register.update(msg)
}

func (m *appModel) updateList(msg tea.KeyMsg) tea.Cmd {
	if m.list.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.list.stopSearch(true)
		case key.Matches(msg, keys.enter):
			m.list.stopSearch(false)
		default:
			return m.list.updateSearch(msg)
		}
		return nil
	}

	inventory := m.services.InventoryService
	items := inventory.Snapshot().Items()

	switch {
	case key.Matches(msg, keys.up):
		m.list.move(-1, len(m.list.visible(items)))
	case key.Matches(msg, keys.down):
		m.list.move(1, len(m.list.visible(items)))
	case key.Matches(msg, keys.search):
		return m.list.startSearch()
	case key.Matches(msg, keys.esc):
		if m.list.search.Value() != "" {
			m.list.stopSearch(true)
			return nil
		}
		return m.navigate(state.ViewHome)
	case key.Matches(msg, keys.reload):
		return m.fetch()
	case key.Matches(msg, keys.edit):
		if l, ok := m.list.selected(items); ok {
			inventory.BeginEdit(l.ID)
			return m.enter(state.ViewEditLaptop)
		}
	case key.Matches(msg, keys.delete):
		if l, ok := m.list.selected(items); ok {
			m.confirm = &confirmModel{
				message:  fmt.Sprintf("Delete laptop %s?", laptopLabel(l)),
				op:       opDelete,
				laptopID: l.ID,
			}
		}
	case key.Matches(msg, keys.copy):
		if l, ok := m.list.selected(items); ok {
			return cmdCopyToClipboard(l.SerialNumber)
		}
	}
	return nil
}

func (m *appModel) updateLaptopForm(msg tea.KeyMsg) tea.Cmd {
	editing := m.view() == state.ViewEditLaptop

	switch {
	case key.Matches(msg, keys.esc):
		if editing {
			return m.navigate(state.ViewListAll)
		}
		return m.navigate(state.ViewHome)
	case key.Matches(msg, keys.tab):
		m.laptopForm.next()
		return nil
	case key.Matches(msg, keys.backtab):
		m.laptopForm.prev()
		return nil
	case key.Matches(msg, keys.enter):
		if m.laptopForm.submitting || (editing && !m.laptopForm.loaded) {
			return nil
		}

		input, err := m.laptopForm.input()
		if err == nil {
			if editing {
				err = m.validator.Validate(m.ctx, input, validators.EditableLaptopFields...)
			} else {
				err = m.validator.Validate(m.ctx, input)
			}
		}
		if err != nil {
			m.laptopForm.err = validators.Message(err)
			return nil
		}

		m.laptopForm.err = ""
		m.laptopForm.submitting = true
		inventory := m.services.InventoryService
		if editing {
			id := inventory.Snapshot().EditingID()
			return m.request(opUpdate, func(ctx context.Context) error {
				return inventory.Update(ctx, id, input)
			})
		}
		return m.request(opAdd, func(ctx context.Context) error {
			return inventory.Add(ctx, input)
		})
	}
	return m.laptopForm.update(msg)
}

func (m *appModel) updateDistribute(msg tea.KeyMsg) tea.Cmd {
	available := models.Available(m.services.InventoryService.Snapshot().Items())

	switch {
	case key.Matches(msg, keys.esc):
		return m.navigate(state.ViewHome)
	case key.Matches(msg, keys.pickUp):
		m.distribute.picker.move(-1, len(available))
		return nil
	case key.Matches(msg, keys.pickDown):
		m.distribute.picker.move(1, len(available))
		return nil
	case key.Matches(msg, keys.tab):
		m.distribute.next()
		return nil
	case key.Matches(msg, keys.backtab):
		m.distribute.prev()
		return nil
	case key.Matches(msg, keys.enter):
		if m.distribute.submitting {
			return nil
		}
		req := m.distribute.request(available)
		if err := m.validator.Validate(m.ctx, req); err != nil {
			m.distribute.err = validators.Message(err)
			return nil
		}
		m.distribute.err = ""

		l, _ := m.distribute.picker.selected(available)
		m.confirm = &confirmModel{
			message:    fmt.Sprintf("Distribute laptop %s to %s?", laptopLabel(l), req.UserName),
			op:         opDistribute,
			distribute: req,
		}
		return nil
	}
	return m.distribute.update(msg)
}

func (m *appModel) updateReturn(msg tea.KeyMsg) tea.Cmd {
	distributed := models.Distributed(m.services.InventoryService.Snapshot().Items())

	switch {
	case key.Matches(msg, keys.esc):
		return m.navigate(state.ViewHome)
	case key.Matches(msg, keys.pickUp):
		m.giveBack.picker.move(-1, len(distributed))
		return nil
	case key.Matches(msg, keys.pickDown):
		m.giveBack.picker.move(1, len(distributed))
		return nil
	case key.Matches(msg, keys.enter):
		if m.giveBack.submitting {
			return nil
		}
		req := m.giveBack.request(distributed)
		if err := m.validator.Validate(m.ctx, req); err != nil {
			m.giveBack.err = validators.Message(err)
			return nil
		}
		m.giveBack.err = ""
		m.giveBack.submitting = true
		inventory := m.services.InventoryService
		return m.request(opReturn, func(ctx context.Context) error {
			return inventory.Return(ctx, req)
		})
	}
	return m.giveBack.update(msg)
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}
