package ui

import (
	"errors"

	"github.com/mesh-intelligence/favorites/pkg/types"
)

// outcome is what the window shows after an action finishes.
type outcome struct {
	status string // status bar text
	title  string // dialog title; empty means no dialog
	text   string // dialog body
	isErr  bool   // show as an error dialog
}

// success describes a completed action. Update and delete also get an
// information dialog.
func success(action string) outcome {
	switch action {
	case actionAdd:
		return outcome{status: "Entry added"}
	case actionUpdate:
		return outcome{status: "Entry updated", title: "Updated", text: "Entry updated successfully."}
	case actionDelete:
		return outcome{status: "Entry deleted", title: "Deleted", text: "Entry deleted successfully."}
	case actionReload:
		return outcome{status: "List refreshed"}
	case actionClear:
		return outcome{status: "Fields cleared"}
	default:
		return outcome{status: "Ready"}
	}
}

// failure maps an action error to what the user sees. A declined
// confirmation is silent.
func failure(action string, err error) outcome {
	switch {
	case errors.Is(err, types.ErrDeclined):
		return outcome{status: "Cancelled"}
	case errors.Is(err, types.ErrPrecondition):
		return outcome{
			status: "Selection required",
			title:  "Selection Required",
			text:   "Please select a record first.",
		}
	case errors.Is(err, types.ErrValidation):
		return outcome{
			status: "Invalid input",
			title:  "Invalid Input",
			text:   "Song Count must be a whole number.",
			isErr:  true,
		}
	case errors.Is(err, types.ErrNotFound) && action == actionSelect:
		return outcome{
			status: "Entry not found",
			title:  "Entry Not Found",
			text:   "That entry is no longer listed. Click View All to refresh.",
			isErr:  true,
		}
	case errors.Is(err, types.ErrNotFound):
		return outcome{
			status: "Entry not found",
			title:  "Entry Not Found",
			text:   "The selected entry no longer exists. The list has been refreshed.",
			isErr:  true,
		}
	case errors.Is(err, types.ErrStorage):
		return outcome{
			status: "Database error",
			title:  "Database Error",
			text:   "Could not access the database:\n" + err.Error(),
			isErr:  true,
		}
	default:
		return outcome{status: "Error", title: "Error", text: err.Error(), isErr: true}
	}
}
