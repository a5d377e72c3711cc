// Package ui is the Fyne front end: the entry form, the action buttons, the
// favorites table, and the dialogs that report outcomes and ask for
// confirmation.
//
// Fyne runs widget callbacks on its own goroutine while the form controller
// blocks on confirmation, so every controller call is queued to a single
// worker goroutine and every widget update is marshalled back with fyne.Do.
package ui
