package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmoteca/internal/models"
	"filmoteca/internal/services"
	"filmoteca/internal/session"
	"filmoteca/internal/shared"
)

// noticeDuration is how long the transient success notice stays visible.
const noticeDuration = 2 * time.Second

// ViewState represents the current sub-view of the record manager screen.
type ViewState int

const (
	TableView ViewState = iota
	FormView
	ConfirmView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	svc     services.Service
	session session.Session
	keys    keyMap
	help    help.Model

	movies  []models.Movie
	table   table.Model
	inputs  []textinput.Model
	focused int

	pendingDelete *models.Movie

	loading    bool
	submitting bool
	errMsg     string
	successMsg string
	noticeSeq  int

	width  int
	height int
}

type moviesFetchedMsg struct {
	movies []models.Movie
	err    error
}

type movieCreatedMsg struct {
	movie *models.Movie
	err   error
}

type movieDeletedMsg struct {
	id  int64
	err error
}

// noticeExpiredMsg clears the success notice whose sequence number it carries.
// A stale tick from a superseded notice is ignored.
type noticeExpiredMsg struct {
	seq int
}

// NewModel creates the record manager model with the provided dependencies.
// The session snapshot gates the initial fetch: an unauthenticated or failed
// session renders as a terminal error panel instead.
func NewModel(ctx context.Context, svc services.Service, sess session.Session) *Model {
	return &Model{
		ctx:     ctx,
		view:    TableView,
		svc:     svc,
		session: sess,
		keys:    newKeyMap(),
		help:    help.New(),
		table:   newMovieTable(nil, 0, 0),
		inputs:  newFormInputs(),
		loading: sess.Authenticated && sess.Err == nil,
	}
}

// Init fetches the collection, guarded by an authenticated session.
func (m *Model) Init() tea.Cmd {
	if !m.session.Authenticated || m.session.Err != nil {
		return nil
	}
	return tea.Batch(m.fetchMovies(), textinput.Blink)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 8)
		return m, nil

	case moviesFetchedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.movies = msg.movies
		m.table.SetRows(movieRows(m.movies))
		return m, nil

	case movieCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.movies = append(m.movies, *msg.movie)
		m.table.SetRows(movieRows(m.movies))
		resetInputs(m.inputs)
		m.focused = fieldNome
		m.view = TableView
		m.successMsg = "Filme adicionado com sucesso!"
		m.noticeSeq++
		return m, m.expireNotice(m.noticeSeq)

	case movieDeletedMsg:
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.movies = removeMovie(m.movies, msg.id)
		m.table.SetRows(movieRows(m.movies))
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.successMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TableView:
			return m.handleTableKeys(msg)
		case FormView:
			return m.handleFormKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.session.Err != nil {
		return styles.err.Render(fmt.Sprintf("Erro de autenticação: %v\n\nPress q to quit", m.session.Err))
	}
	if !m.session.Authenticated {
		return styles.err.Render("Sessão não autenticada. Execute `filmoteca auth login`.\n\nPress q to quit")
	}

	switch m.view {
	case TableView:
		return m.renderTable()
	case FormView:
		return m.renderForm()
	case ConfirmView:
		return m.renderConfirm()
	default:
		return ""
	}
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.add):
		m.view = FormView
		m.focused = fieldNome
		return m, focusField(m.inputs, m.focused)
	case key.Matches(msg, m.keys.remove):
		if movie := m.selectedMovie(); movie != nil {
			m.pendingDelete = movie
			m.view = ConfirmView
		}
		return m, nil
	case key.Matches(msg, m.keys.refresh):
		m.loading = true
		return m, m.fetchMovies()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// A failed or abandoned submit leaves the draft untouched so the
		// user can come back and resubmit.
		m.view = TableView
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.createMovie(draftFromInputs(m.inputs))
	case "tab", "down":
		m.focused = (m.focused + 1) % fieldCount
		return m, focusField(m.inputs, m.focused)
	case "shift+tab", "up":
		m.focused = (m.focused + fieldCount - 1) % fieldCount
		return m, focusField(m.inputs, m.focused)
	}

	return m, updateFormInput(m.inputs, m.focused, msg)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.pendingDelete = nil
		m.view = TableView
		return m, nil
	case "y":
		if m.pendingDelete == nil {
			m.view = TableView
			return m, nil
		}
		id := m.pendingDelete.ID
		m.pendingDelete = nil
		m.view = TableView
		return m, m.deleteMovie(id)
	}
	return m, nil
}

// selectedMovie resolves the table cursor to a record in the cached list.
func (m *Model) selectedMovie() *models.Movie {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.movies) {
		return nil
	}
	return &m.movies[cursor]
}

func (m *Model) fetchMovies() tea.Cmd {
	return func() tea.Msg {
		movies, err := m.svc.List(m.ctx)
		return moviesFetchedMsg{movies: movies, err: err}
	}
}

func (m *Model) createMovie(draft models.Draft) tea.Cmd {
	return func() tea.Msg {
		movie, err := m.svc.Create(m.ctx, draft)
		return movieCreatedMsg{movie: movie, err: err}
	}
}

func (m *Model) deleteMovie(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.Delete(m.ctx, id)
		return movieDeletedMsg{id: id, err: err}
	}
}

func (m *Model) expireNotice(seq int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) renderTable() string {
	title := styles.title.Render("Filmes")

	var body string
	if m.loading {
		body = "Carregando filmes..."
	} else {
		body = m.table.View()
	}

	helpKeys := []key.Binding{m.keys.add, m.keys.remove, m.keys.refresh, m.keys.quit}
	out := fmt.Sprintf("%s\n%s\n\n%s", title, body, m.help.ShortHelpView(helpKeys))

	return out + m.renderNotices()
}

func (m *Model) renderForm() string {
	title := styles.title.Render("Novo filme")

	var status string
	if m.submitting {
		status = styles.warn.Render("Enviando...") + "\n"
	}

	helpKeys := []key.Binding{m.keys.submit, m.keys.next, m.keys.back}
	out := fmt.Sprintf("%s\n%s%s%s", title, renderForm(m.inputs), status, m.help.ShortHelpView(helpKeys))

	return out + m.renderNotices()
}

func (m *Model) renderConfirm() string {
	name := ""
	if m.pendingDelete != nil {
		name = m.pendingDelete.Nome
	}

	title := styles.title.Render(fmt.Sprintf("Deseja excluir '%s'?", name))
	helpKeys := []key.Binding{m.keys.yes, m.keys.no}

	return fmt.Sprintf("%s\n%s", title, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderNotices() string {
	var out string
	if m.errMsg != "" {
		out += "\n\n" + styles.err.Render(m.errMsg)
	}
	if m.successMsg != "" {
		out += "\n\n" + styles.ok.Render(m.successMsg)
	}
	return out
}

// removeMovie prunes the record with the given id, keeping all other records
// in their original order.
func removeMovie(movies []models.Movie, id int64) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for _, movie := range movies {
		if movie.ID != id {
			out = append(out, movie)
		}
	}
	return out
}

// errorMessage converts an operation failure into the single human-readable
// message shown to the user. Server-supplied messages pass through verbatim.
func errorMessage(err error) string {
	var statusErr *services.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Error()
	case errors.Is(err, shared.ErrUnauthorized):
		return "Não autorizado."
	case errors.Is(err, shared.ErrValidation):
		return shared.ErrValidation.Error()
	default:
		return err.Error()
	}
}
