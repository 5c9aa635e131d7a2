// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package menurender

import (
	"errors"

	"github.com/sufra-dev/sufra/internal/model"
)

// ModalState is one of the four item-detail overlay states.
type ModalState string

// Modal lifecycle states.
const (
	ModalClosed  ModalState = "closed"
	ModalOpening ModalState = "opening"
	ModalOpen    ModalState = "open"
	ModalClosing ModalState = "closing"
)

// ErrInvalidTransition is returned for out-of-order modal events, such
// as a transition-complete signal arriving while the modal is closed.
var ErrInvalidTransition = errors.New("invalid modal transition")

// Modal is the item-detail overlay state machine. Transitions follow
// closed -> opening -> open -> closing -> closed; the backing item is
// set on open and cleared only once the exit transition has finished,
// so the closing overlay still has content to render while animating
// out.
type Modal struct {
	state ModalState
	item  *model.ItemWithVariants
}

// NewModal returns a modal in the closed state.
func NewModal() *Modal {
	return &Modal{state: ModalClosed}
}

// State returns the current state.
func (m *Modal) State() ModalState {
	return m.state
}

// Item returns the backing item, or nil when fully closed.
func (m *Modal) Item() *model.ItemWithVariants {
	return m.item
}

// ScrollLocked reports whether page scroll must be held. Scroll is
// locked the moment the modal starts opening and released only once it
// has fully closed.
func (m *Modal) ScrollLocked() bool {
	return m.state != ModalClosed
}

// Open starts the entrance transition for an item. Valid only from
// the closed state.
func (m *Modal) Open(item *model.ItemWithVariants) error {
	if m.state != ModalClosed {
		return ErrInvalidTransition
	}
	m.state = ModalOpening
	m.item = item
	return nil
}

// Opened marks the entrance transition complete.
func (m *Modal) Opened() error {
	if m.state != ModalOpening {
		return ErrInvalidTransition
	}
	m.state = ModalOpen
	return nil
}

// Close starts the exit transition: backdrop click, the close button,
// or a completed favorite action all land here.
func (m *Modal) Close() error {
	if m.state != ModalOpen {
		return ErrInvalidTransition
	}
	m.state = ModalClosing
	return nil
}

// Closed marks the exit transition complete and clears the backing
// item. Clearing earlier would blank the overlay mid-animation.
func (m *Modal) Closed() error {
	if m.state != ModalClosing {
		return ErrInvalidTransition
	}
	m.state = ModalClosed
	m.item = nil
	return nil
}
