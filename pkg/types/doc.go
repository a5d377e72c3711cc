// Package types defines the favorite entry model, the Store interface, the
// backend configuration, and the standard errors shared by the store, the
// form controller, and the user interfaces.
package types
