package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"filmoteca/internal/models"
	"filmoteca/internal/services"
	"filmoteca/internal/session"
	"filmoteca/internal/shared"
	tu "filmoteca/internal/testing"
)

func authenticatedSession() session.Session {
	return session.Session{Authenticated: true, User: &session.User{Name: "Maria"}}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleMovies() []models.Movie {
	return []models.Movie{
		{ID: 1, Nome: "Cidade de Deus", Diretor: "Fernando Meirelles", Nota: 5},
		{ID: 2, Nome: "Central do Brasil", Diretor: "Walter Salles", Nota: 4.5},
		{ID: 3, Nome: "O Auto da Compadecida", Diretor: "Guel Arraes", Nota: 4},
	}
}

func TestNewModel(t *testing.T) {
	t.Run("loads when the session is authenticated", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())

		if !m.loading {
			t.Error("expected model to start loading")
		}
		if m.Init() == nil {
			t.Error("expected an initial fetch command")
		}
	})

	t.Run("does not fetch without a session", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, session.Session{})

		if m.loading {
			t.Error("expected model not to load")
		}
		if m.Init() != nil {
			t.Error("expected no initial command")
		}
	})
}

func TestFetchedMessages(t *testing.T) {
	t.Run("replaces the collection in server order", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())

		m.Update(moviesFetchedMsg{movies: sampleMovies()})

		if m.loading {
			t.Error("expected loading to be cleared")
		}
		if len(m.movies) != 3 {
			t.Fatalf("expected 3 movies, got %d", len(m.movies))
		}
		if m.movies[0].ID != 1 || m.movies[2].ID != 3 {
			t.Errorf("expected server order preserved, got %+v", m.movies)
		}
	})

	t.Run("surfaces fetch failures", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())

		m.Update(moviesFetchedMsg{err: shared.ErrUnauthorized})

		if m.errMsg != "Não autorizado." {
			t.Errorf("expected authorization message, got %q", m.errMsg)
		}
	})
}

func TestCreateFlow(t *testing.T) {
	t.Run("appends the created record without refetching", func(t *testing.T) {
		svc := &tu.MockService{}
		m := NewModel(context.Background(), svc, authenticatedSession())
		m.Update(moviesFetchedMsg{movies: sampleMovies()})
		m.view = FormView
		m.inputs[fieldNome].SetValue("Bacurau")

		created := &models.Movie{ID: 4, Nome: "Bacurau", Diretor: "Kleber Mendonça Filho", Nota: 4.5}
		_, cmd := m.Update(movieCreatedMsg{movie: created})

		if len(m.movies) != 4 || m.movies[3].ID != 4 {
			t.Fatalf("expected appended record, got %+v", m.movies)
		}
		if svc.ListCalls != 0 {
			t.Errorf("expected no refetch after create, got %d list calls", svc.ListCalls)
		}
		if m.view != TableView {
			t.Error("expected return to the table view")
		}
		if m.inputs[fieldNome].Value() != "" {
			t.Error("expected form to be reset")
		}
		if m.successMsg != "Filme adicionado com sucesso!" {
			t.Errorf("unexpected notice: %q", m.successMsg)
		}
		if cmd == nil {
			t.Error("expected a notice expiry command")
		}
	})

	t.Run("keeps the draft when the submit fails", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())
		m.view = FormView
		m.inputs[fieldNome].SetValue("Bacurau")
		m.submitting = true

		m.Update(movieCreatedMsg{err: shared.ErrValidation})

		if m.submitting {
			t.Error("expected submitting to be cleared")
		}
		if m.view != FormView {
			t.Error("expected to stay on the form")
		}
		if m.inputs[fieldNome].Value() != "Bacurau" {
			t.Error("expected draft to survive the failure")
		}
		if m.errMsg != "Preencha todos os campos." {
			t.Errorf("expected validation message, got %q", m.errMsg)
		}
	})

	t.Run("surfaces the server message verbatim", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())

		m.Update(movieCreatedMsg{err: &services.StatusError{Code: 500, Message: "nome duplicado"}})

		if m.errMsg != "nome duplicado" {
			t.Errorf("expected server message, got %q", m.errMsg)
		}
	})
}

func TestNoticeExpiry(t *testing.T) {
	m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())
	created := &models.Movie{ID: 4, Nome: "Bacurau"}

	m.Update(movieCreatedMsg{movie: created})
	firstSeq := m.noticeSeq
	m.Update(movieCreatedMsg{movie: created})

	// The tick from the first notice arrives after a second one was shown.
	m.Update(noticeExpiredMsg{seq: firstSeq})
	if m.successMsg == "" {
		t.Error("expected stale expiry to be ignored")
	}

	m.Update(noticeExpiredMsg{seq: m.noticeSeq})
	if m.successMsg != "" {
		t.Error("expected notice to be cleared")
	}
}

func TestDeleteFlow(t *testing.T) {
	t.Run("confirming removes the selected record", func(t *testing.T) {
		svc := &tu.MockService{}
		m := NewModel(context.Background(), svc, authenticatedSession())
		m.Update(moviesFetchedMsg{movies: sampleMovies()})

		m.Update(keyPress("d"))
		if m.view != ConfirmView {
			t.Fatal("expected confirm view")
		}
		if m.pendingDelete == nil || m.pendingDelete.ID != 1 {
			t.Fatalf("expected first record pending, got %+v", m.pendingDelete)
		}

		_, cmd := m.Update(keyPress("y"))
		if cmd == nil {
			t.Fatal("expected a delete command")
		}

		m.Update(cmd())
		if svc.DeleteCalls != 1 || svc.DeletedIDs[0] != 1 {
			t.Errorf("expected delete of id 1, got calls=%d ids=%v", svc.DeleteCalls, svc.DeletedIDs)
		}
		if len(m.movies) != 2 || m.movies[0].ID != 2 || m.movies[1].ID != 3 {
			t.Errorf("expected remaining records in order, got %+v", m.movies)
		}
	})

	t.Run("declining keeps the record", func(t *testing.T) {
		svc := &tu.MockService{}
		m := NewModel(context.Background(), svc, authenticatedSession())
		m.Update(moviesFetchedMsg{movies: sampleMovies()})

		m.Update(keyPress("d"))
		m.Update(keyPress("n"))

		if m.view != TableView {
			t.Error("expected return to the table view")
		}
		if svc.DeleteCalls != 0 {
			t.Errorf("expected no delete call, got %d", svc.DeleteCalls)
		}
		if len(m.movies) != 3 {
			t.Errorf("expected full collection, got %d records", len(m.movies))
		}
	})

	t.Run("failed delete leaves the collection intact", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())
		m.Update(moviesFetchedMsg{movies: sampleMovies()})

		m.Update(movieDeletedMsg{id: 2, err: errors.New("boom")})

		if len(m.movies) != 3 {
			t.Errorf("expected collection untouched, got %d records", len(m.movies))
		}
		if m.errMsg == "" {
			t.Error("expected an error message")
		}
	})
}

func TestFormNavigation(t *testing.T) {
	m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())

	m.Update(keyPress("a"))
	if m.view != FormView {
		t.Fatal("expected form view")
	}
	if m.focused != fieldNome {
		t.Errorf("expected focus on the name field, got %d", m.focused)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused != fieldDescricao {
		t.Errorf("expected focus on the description field, got %d", m.focused)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focused != fieldNome {
		t.Errorf("expected focus back on the name field, got %d", m.focused)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != TableView {
		t.Error("expected escape to return to the table")
	}
}

func TestNotaFieldGating(t *testing.T) {
	m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())
	m.view = FormView
	m.focused = fieldNota
	focusField(m.inputs, m.focused)

	m.Update(keyPress("x"))
	if got := m.inputs[fieldNota].Value(); got != "" {
		t.Errorf("expected non-numeric keystroke dropped, got %q", got)
	}

	m.Update(keyPress("7"))
	if got := m.inputs[fieldNota].Value(); got != "" {
		t.Errorf("expected out-of-range keystroke dropped, got %q", got)
	}

	m.Update(keyPress("4"))
	m.Update(keyPress("."))
	m.Update(keyPress("5"))
	if got := m.inputs[fieldNota].Value(); got != "4.5" {
		t.Errorf("expected valid rating accepted, got %q", got)
	}
}

func TestView(t *testing.T) {
	t.Run("unauthenticated session", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, session.Session{})

		if !strings.Contains(m.View(), "Sessão não autenticada") {
			t.Errorf("expected unauthenticated panel, got %q", m.View())
		}
	})

	t.Run("session error", func(t *testing.T) {
		sess := session.Session{Authenticated: true, Err: errors.New("token expired")}
		m := NewModel(context.Background(), &tu.MockService{}, sess)

		if !strings.Contains(m.View(), "Erro de autenticação") {
			t.Errorf("expected error panel, got %q", m.View())
		}
	})

	t.Run("confirm prompt names the record", func(t *testing.T) {
		m := NewModel(context.Background(), &tu.MockService{}, authenticatedSession())
		m.Update(moviesFetchedMsg{movies: sampleMovies()})
		m.Update(keyPress("d"))

		if !strings.Contains(m.View(), "Cidade de Deus") {
			t.Errorf("expected record name in prompt, got %q", m.View())
		}
	})
}

func TestErrorMessage(t *testing.T) {
	statusErr := &services.StatusError{Code: 502}

	if got := errorMessage(statusErr); got != "request failed with status 502" {
		t.Errorf("expected status fallback, got %q", got)
	}
	if got := errorMessage(shared.ErrUnauthorized); got != "Não autorizado." {
		t.Errorf("expected authorization message, got %q", got)
	}
}
