package menurender

import (
	"errors"
	"testing"

	"github.com/sufra-dev/sufra/internal/model"
)

func TestModal_FullLifecycle(t *testing.T) {
	m := NewModal()
	item := &model.ItemWithVariants{Item: model.Item{ID: 1, NameEn: "Hummus"}}

	if m.State() != ModalClosed {
		t.Fatalf("new modal state = %s, want closed", m.State())
	}
	if m.ScrollLocked() {
		t.Error("closed modal locks scroll")
	}

	if err := m.Open(item); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if m.State() != ModalOpening {
		t.Errorf("state after Open = %s, want opening", m.State())
	}
	if !m.ScrollLocked() {
		t.Error("scroll not locked during entrance transition")
	}

	if err := m.Opened(); err != nil {
		t.Fatalf("Opened failed: %v", err)
	}
	if m.State() != ModalOpen {
		t.Errorf("state after Opened = %s, want open", m.State())
	}

	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if m.State() != ModalClosing {
		t.Errorf("state after Close = %s, want closing", m.State())
	}
	// The exiting overlay still needs its content while animating out
	if m.Item() == nil {
		t.Error("item cleared before exit transition finished")
	}
	if !m.ScrollLocked() {
		t.Error("scroll released before exit transition finished")
	}

	if err := m.Closed(); err != nil {
		t.Fatalf("Closed failed: %v", err)
	}
	if m.State() != ModalClosed {
		t.Errorf("state after Closed = %s, want closed", m.State())
	}
	if m.Item() != nil {
		t.Error("item not cleared after full close")
	}
	if m.ScrollLocked() {
		t.Error("scroll still locked after full close")
	}
}

func TestModal_InvalidTransitions(t *testing.T) {
	item := &model.ItemWithVariants{Item: model.Item{ID: 1}}

	m := NewModal()
	if err := m.Opened(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Opened from closed: got %v", err)
	}
	if err := m.Close(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Close from closed: got %v", err)
	}
	if err := m.Closed(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Closed from closed: got %v", err)
	}

	_ = m.Open(item)
	if err := m.Open(item); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Open from opening: got %v", err)
	}
	if err := m.Close(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Close from opening: got %v", err)
	}

	_ = m.Opened()
	if err := m.Open(item); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Open from open: got %v", err)
	}

	_ = m.Close()
	if err := m.Open(item); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Open from closing: got %v", err)
	}
	if err := m.Close(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Close from closing: got %v", err)
	}
}

func TestModal_ReopenAfterClose(t *testing.T) {
	m := NewModal()
	first := &model.ItemWithVariants{Item: model.Item{ID: 1}}
	second := &model.ItemWithVariants{Item: model.Item{ID: 2}}

	_ = m.Open(first)
	_ = m.Opened()
	_ = m.Close()
	_ = m.Closed()

	if err := m.Open(second); err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if m.Item().Item.ID != 2 {
		t.Errorf("reopened modal shows item %d, want 2", m.Item().Item.ID)
	}
}
