package storecfg

import (
	"errors"

	"inventory-service/internal/model"
)

// EditorState tracks where the settings form is in its lifecycle.
type EditorState int

const (
	StateLoading EditorState = iota
	StateEditing
	StateSaving
	StateSaved
	StateFailed
)

func (s EditorState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var errNotEditing = errors.New("configuration is still loading")

// Editor holds the in-progress edit of a store configuration and walks the
// settings form through Loading → Editing → Saving → Saved | Failed. Any
// field change from Saved or Failed re-enters Editing; a failed save keeps
// its error until the next submit.
type Editor struct {
	cfg     model.StoreConfig
	state   EditorState
	saveErr error
}

// NewEditor starts an editor in the Loading state.
func NewEditor() *Editor {
	return &Editor{state: StateLoading}
}

// Load installs the configuration fetched from the store and enters Editing.
func (e *Editor) Load(cfg model.StoreConfig) {
	e.cfg = cfg
	e.state = StateEditing
	e.saveErr = nil
}

// State reports the current lifecycle state.
func (e *Editor) State() EditorState {
	return e.state
}

// Err returns the error retained from the last failed save, if any.
func (e *Editor) Err() error {
	return e.saveErr
}

// Config returns a copy of the in-progress configuration.
func (e *Editor) Config() model.StoreConfig {
	return e.cfg
}

// touch marks a field change, re-entering Editing from Saved or Failed.
func (e *Editor) touch() error {
	switch e.state {
	case StateLoading, StateSaving:
		return errNotEditing
	case StateSaved, StateFailed:
		e.state = StateEditing
	}
	return nil
}

// SetStoreName updates the store's display name.
func (e *Editor) SetStoreName(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	e.cfg.StoreName = name
	return nil
}

// SetCurrencySymbol updates the currency symbol shown beside amounts.
func (e *Editor) SetCurrencySymbol(symbol string) error {
	if err := e.touch(); err != nil {
		return err
	}
	e.cfg.CurrencySymbol = symbol
	return nil
}

// SelectBusinessType replaces the template-driven fields with the chosen
// type's defaults.
func (e *Editor) SelectBusinessType(id string) error {
	if err := e.touch(); err != nil {
		return err
	}
	return ApplyBusinessType(&e.cfg, id)
}

// AddCategory adds a category, rejecting exact-string duplicates.
func (e *Editor) AddCategory(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	list, err := addEntry(e.cfg.Categories, name)
	if err != nil {
		return err
	}
	e.cfg.Categories = list
	return nil
}

// RemoveCategory removes a category by exact match.
func (e *Editor) RemoveCategory(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	list, err := removeEntry(e.cfg.Categories, name)
	if err != nil {
		return err
	}
	e.cfg.Categories = list
	return nil
}

// AddSizeOption adds a size option, rejecting exact-string duplicates.
func (e *Editor) AddSizeOption(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	list, err := addEntry(e.cfg.SizeOptions, name)
	if err != nil {
		return err
	}
	e.cfg.SizeOptions = list
	return nil
}

// RemoveSizeOption removes a size option by exact match.
func (e *Editor) RemoveSizeOption(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	list, err := removeEntry(e.cfg.SizeOptions, name)
	if err != nil {
		return err
	}
	e.cfg.SizeOptions = list
	return nil
}

// AddAttribute adds a custom attribute definition, rejecting duplicates by
// exact name.
func (e *Editor) AddAttribute(def model.AttributeDef) error {
	if err := e.touch(); err != nil {
		return err
	}
	for _, a := range e.cfg.CustomAttributes {
		if a.Name == def.Name {
			return ErrDuplicateEntry
		}
	}
	e.cfg.CustomAttributes = append(e.cfg.CustomAttributes, def)
	return nil
}

// RemoveAttribute removes a custom attribute definition by exact name.
func (e *Editor) RemoveAttribute(name string) error {
	if err := e.touch(); err != nil {
		return err
	}
	for i, a := range e.cfg.CustomAttributes {
		if a.Name == name {
			e.cfg.CustomAttributes = append(e.cfg.CustomAttributes[:i:i], e.cfg.CustomAttributes[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

// Submit runs save over the in-progress configuration. The editor passes
// through Saving and lands on Saved, or on Failed with the error retained
// until the next submit.
func (e *Editor) Submit(save func(model.StoreConfig) (model.StoreConfig, error)) error {
	if e.state != StateEditing {
		return errNotEditing
	}
	e.state = StateSaving
	saved, err := save(e.cfg)
	if err != nil {
		e.state = StateFailed
		e.saveErr = err
		return err
	}
	e.cfg = saved
	e.state = StateSaved
	e.saveErr = nil
	return nil
}
