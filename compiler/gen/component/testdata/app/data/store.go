// Package data is the user side of the Store definition.
package data

import "github.com/syssam/veloxui"

type Store struct {
	veloxui.Bean

	open bool
}

func (s *Store) Fetch(id string) bool { return s.open && id != "" }

func (s *Store) Open() { s.open = true }
