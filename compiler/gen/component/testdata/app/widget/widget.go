// Package widget holds the views used by the type-checked test app.
package widget

import "github.com/syssam/veloxui"

// Label is a leaf view showing text.
type Label struct {
	Text string
}

// FindViewByID implements veloxui.View.
func (l *Label) FindViewByID(string) veloxui.View { return nil }
