package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// dialogConfirmer implements form.Confirmer by showing an asynchronous dialog
// and waiting for the answer.
type dialogConfirmer struct {
	show func(title, message string, answer func(bool))
}

// newDialogConfirmer returns a confirmer that shows yes/no dialogs on win.
// It must not be called from the Fyne goroutine.
func newDialogConfirmer(win fyne.Window) dialogConfirmer {
	return dialogConfirmer{
		show: func(title, message string, answer func(bool)) {
			fyne.Do(func() {
				dialog.ShowConfirm(title, message, answer, win)
			})
		},
	}
}

// Confirm blocks until the dialog is answered.
func (d dialogConfirmer) Confirm(title, message string) bool {
	reply := make(chan bool, 1)
	d.show(title, message, func(ok bool) {
		reply <- ok
	})
	return <-reply
}
