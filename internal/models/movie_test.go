package models

import (
	"testing"
)

func TestValidNota(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"blank is accepted", "", true},
		{"zero", "0", true},
		{"upper bound", "5", true},
		{"decimal in range", "4.5", true},
		{"above range", "5.1", false},
		{"negative", "-1", false},
		{"non-numeric", "abc", false},
		{"trailing garbage", "3x", false},
		{"way out of range", "42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidNota(tt.input); got != tt.want {
				t.Errorf("ValidNota(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDraft(t *testing.T) {
	t.Run("SetNota", func(t *testing.T) {
		t.Run("accepts in-range input", func(t *testing.T) {
			d := Draft{}
			d.SetNota("3.5")

			if d.Nota != "3.5" {
				t.Errorf("expected nota '3.5', got %q", d.Nota)
			}
		})

		t.Run("accepts blank", func(t *testing.T) {
			d := Draft{Nota: "4"}
			d.SetNota("")

			if d.Nota != "" {
				t.Errorf("expected nota cleared, got %q", d.Nota)
			}
		})

		t.Run("ignores out-of-range input", func(t *testing.T) {
			d := Draft{Nota: "4"}
			d.SetNota("6")

			if d.Nota != "4" {
				t.Errorf("expected nota unchanged, got %q", d.Nota)
			}
		})

		t.Run("ignores non-numeric input", func(t *testing.T) {
			d := Draft{Nota: "2"}
			d.SetNota("two")

			if d.Nota != "2" {
				t.Errorf("expected nota unchanged, got %q", d.Nota)
			}
		})
	})

	t.Run("Blank", func(t *testing.T) {
		if !(Draft{}).Blank() {
			t.Error("expected zero draft to be blank")
		}
		if (Draft{Nome: "x"}).Blank() {
			t.Error("expected draft with a field to not be blank")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		t.Run("complete draft is valid", func(t *testing.T) {
			d := Draft{Nome: "Cidade de Deus", Descricao: "crime", Diretor: "Meirelles", Nota: "5"}

			if v := d.Validate(); !v.Valid() {
				t.Errorf("expected valid draft, got errors %v", v.Errors)
			}
		})

		t.Run("each blank field fails", func(t *testing.T) {
			base := Draft{Nome: "a", Descricao: "b", Diretor: "c", Nota: "3"}

			drafts := map[string]Draft{
				"nome":      {Descricao: base.Descricao, Diretor: base.Diretor, Nota: base.Nota},
				"descricao": {Nome: base.Nome, Diretor: base.Diretor, Nota: base.Nota},
				"diretor":   {Nome: base.Nome, Descricao: base.Descricao, Nota: base.Nota},
				"nota":      {Nome: base.Nome, Descricao: base.Descricao, Diretor: base.Diretor},
			}

			for field, d := range drafts {
				v := d.Validate()
				if v.Valid() {
					t.Errorf("expected draft missing %s to be invalid", field)
				}
				if _, ok := v.Errors[field]; !ok {
					t.Errorf("expected error keyed by %s, got %v", field, v.Errors)
				}
			}
		})

		t.Run("whitespace-only fields fail", func(t *testing.T) {
			d := Draft{Nome: "   ", Descricao: "b", Diretor: "c", Nota: "3"}

			if d.Validate().Valid() {
				t.Error("expected whitespace-only nome to be invalid")
			}
		})
	})

	t.Run("Payload", func(t *testing.T) {
		d := Draft{Nome: "  Bacurau ", Descricao: " western ", Diretor: " Kleber ", Nota: " 4.5 "}
		p := d.Payload()

		if p.Nome != "Bacurau" || p.Descricao != "western" || p.Diretor != "Kleber" {
			t.Errorf("expected trimmed fields, got %+v", p)
		}
		if p.Nota != 4.5 {
			t.Errorf("expected nota 4.5, got %v", p.Nota)
		}
	})
}
