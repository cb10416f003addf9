// Package ui is the user side of the Home definition.
package ui

import (
	"github.com/syssam/veloxui"
	"github.com/syssam/veloxui/compiler/gen/component/testdata/app/widget"
)

type Home struct {
	veloxui.Fragment

	title    *widget.Label
	counter  int
	userName string
	events   []string
}

func (h *Home) Refresh() bool { return h.title != nil }

func (h *Home) OnPicked(resultCode int, data *veloxui.Intent) { h.counter = resultCode }

func (h *Home) OnBatteryLow(*veloxui.Intent) { h.events = append(h.events, "battery") }

func (h *Home) Track() { h.events = append(h.events, "start") }

func (h *Home) Render() { h.title.Text = h.userName }

func (h *Home) Ready() { h.events = append(h.events, "ready") }
