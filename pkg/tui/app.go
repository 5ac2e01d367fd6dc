package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"signup-cards/pkg/models"
	"signup-cards/pkg/services"
)

type action int

const (
	actionEdit action = iota
	actionSubmit
	actionRefresh
	actionDelete
	actionQuit
)

type menuItem struct {
	label  string
	action action
	field  models.Field
}

// App drives one form session from a terminal
type App struct {
	driver PromptDriver
	store  *services.FormRecordStore
	menu   []menuItem
}

func NewApp(driver PromptDriver, store *services.FormRecordStore) *App {
	menu := make([]menuItem, 0, len(models.Fields)+4)
	for _, f := range models.Fields {
		menu = append(menu, menuItem{label: "Edit " + f.Label(), action: actionEdit, field: f})
	}
	menu = append(menu,
		menuItem{label: "Submit", action: actionSubmit},
		menuItem{label: "Refresh", action: actionRefresh},
		menuItem{label: "Delete card", action: actionDelete},
		menuItem{label: "Quit", action: actionQuit},
	)
	return &App{driver: driver, store: store, menu: menu}
}

// Run shows the form until the user quits or interrupts
func (a *App) Run(ctx context.Context) error {
	for {
		if err := a.driver.Info(ctx, Render(a.store.Snapshot())); err != nil {
			return err
		}

		idx, err := a.driver.Select(ctx, SelectConfig{Message: "Sign Up", Options: a.labels()})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(a.menu) {
			continue
		}

		item := a.menu[idx]
		switch item.action {
		case actionQuit:
			return nil
		case actionEdit:
			err = a.edit(ctx, item.field)
		case actionSubmit:
			err = a.submit(ctx)
		case actionRefresh:
			a.store.Refresh()
		case actionDelete:
			err = a.delete(ctx)
		}
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) labels() []string {
	out := make([]string, len(a.menu))
	for i, item := range a.menu {
		out[i] = item.label
	}
	return out
}

func (a *App) edit(ctx context.Context, field models.Field) error {
	// No Default: survey substitutes it for an empty answer, and an empty
	// answer must clear the field.
	value, err := a.driver.Input(ctx, InputConfig{
		Message: field.Placeholder(),
		Help:    "Current value: " + a.store.Draft().Get(field),
	})
	if err != nil {
		return err
	}
	a.store.SetField(field, value)
	return nil
}

func (a *App) submit(ctx context.Context) error {
	record, err := a.store.Submit()
	if kind, ok := services.KindOf(err); ok {
		return a.driver.Info(ctx, kind.Title()+": "+kind.Message())
	}
	if err != nil {
		return err
	}
	return a.driver.Info(ctx, fmt.Sprintf("Added card for %s %s", record.FirstName, record.LastName))
}

func (a *App) delete(ctx context.Context) error {
	records := a.store.Records()
	if len(records) == 0 {
		return a.driver.Info(ctx, "No cards to delete")
	}

	options := make([]string, len(records))
	for i, r := range records {
		options[i] = fmt.Sprintf("%d. %s %s <%s>", i+1, r.FirstName, r.LastName, r.Email)
	}
	idx, err := a.driver.Select(ctx, SelectConfig{Message: "Delete which card?", Options: options})
	if err != nil {
		return err
	}
	if err := a.store.DeleteAt(idx); err != nil {
		return a.driver.Info(ctx, err.Error())
	}
	return nil
}

// Render formats the draft and the card list as plain text
func Render(snap models.Snapshot) string {
	var b strings.Builder
	b.WriteString("Sign Up\n")
	for _, f := range models.Fields {
		value := snap.Draft.Get(f)
		if value == "" {
			value = "(" + f.Placeholder() + ")"
		}
		fmt.Fprintf(&b, "  %s: %s\n", f.Label(), value)
	}

	if len(snap.Records) == 0 {
		b.WriteString("\nNo cards yet")
		return b.String()
	}
	for i, r := range snap.Records {
		fmt.Fprintf(&b, "\n[%d]\n", i+1)
		for _, line := range r.CardLines() {
			b.WriteString("  " + line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
