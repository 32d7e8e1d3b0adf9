//go:build !ebiten

// Package gui runs a session in an ebiten window. Building it requires the
// ebiten build tag; without it Run only reports how to enable the window.
package gui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/session"
)

// Run reports that the window shell was not compiled in
func Run(*session.Session) error {
	return errors.New("[gui.Run] the window shell requires the ebiten build tag; " +
		"rebuild with `go build -tags ebiten`")
}
