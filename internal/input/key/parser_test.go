package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", Event{Key: KeyRune, Rune: 'a'}},
		{"A-a", Event{Key: KeyRune, Rune: 'a', Modifiers: ModAlt}},
		{"A-I", Event{Key: KeyRune, Rune: 'I', Modifiers: ModAlt}},
		{"S-i", Event{Key: KeyRune, Rune: 'I'}},
		{"C-S-tab", Event{Key: KeyTab, Modifiers: ModCtrl | ModShift}},
		{"tab", Event{Key: KeyTab}},
		{"ret", Event{Key: KeyEnter}},
		{"enter", Event{Key: KeyEnter}},
		{"space", Event{Key: KeyRune, Rune: ' '}},
		{"-", Event{Key: KeyRune, Rune: '-'}},
		{"A--", Event{Key: KeyRune, Rune: '-', Modifiers: ModAlt}},
		{"é", Event{Key: KeyRune, Rune: 'é'}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  error
	}{
		{"", ErrEmptySpec},
		{"  ", ErrEmptySpec},
		{"X-a", ErrInvalidSpec},
		{"foo", ErrInvalidSpec},
		{"A-foo", ErrInvalidSpec},
	}

	for _, tt := range tests {
		if _, err := Parse(tt.spec); !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.spec, tt.err, err)
		}
	}
}

func TestNormalizeSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"A-a", "A-a"},
		{"A-S-i", "A-I"},
		{"S-C-tab", "C-S-tab"},
		{"enter", "ret"},
		{" ", ""},
		{"space", "space"},
		{"A--", "A-minus"},
	}

	for _, tt := range tests {
		got, err := NormalizeSpec(tt.spec)
		if tt.want == "" {
			if err == nil {
				t.Errorf("%q: expected error", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.spec, tt.want, got)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("X-y")
}
