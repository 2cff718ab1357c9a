package tui

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/foodapi"
)

// fakeSource serves fixed records and counts calls.
type fakeSource struct {
	records     []food.Record
	foods       map[string]*food.Record
	listErr     error
	listCalls   int
	detailCalls int
}

func (f *fakeSource) ListFoods(context.Context) ([]food.Record, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *fakeSource) GetFood(_ context.Context, id string) (*food.Record, error) {
	f.detailCalls++
	if r, ok := f.foods[id]; ok {
		return r, nil
	}
	return nil, &foodapi.StatusError{URL: "/api/foods/" + id, StatusCode: http.StatusNotFound}
}

func newFakeSource() *fakeSource {
	kale := &food.Record{
		Name: "Kale", Carbohydrates: 9, Protein: 4, Fat: 1,
		Vitamins: []string{"A", "C"}, Minerals: []string{"Iron"},
	}
	apple := &food.Record{Name: "Green Apple", Carbohydrates: 14, Protein: 0.3, Fat: 0.2}
	return &fakeSource{
		records: []food.Record{*apple, *kale, {Name: "Banana"}},
		foods:   map[string]*food.Record{"kale": kale, "green-apple": apple},
	}
}

var errNetwork = errors.New("dial tcp 127.0.0.1:3000: connect: connection refused")

// collect runs cmd and returns the messages it produces, expanding batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func navigations(msgs []tea.Msg) []NavigateMsg {
	var out []NavigateMsg
	for _, m := range msgs {
		if nav, ok := m.(NavigateMsg); ok {
			out = append(out, nav)
		}
	}
	return out
}

// staticCursor stops the search box cursor from blinking so commands
// returned by key presses do not wait on blink timers.
func staticCursor(s *Selector) {
	s.input.Cursor.SetMode(cursor.CursorStatic)
}
