package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
)

// activityResult builds OnActivityResult and dispatches on the request
// code, one case per code.
type activityResult struct {
	h *ComponentHolder

	m          *code.Method
	resultCode *code.Param
	data       *code.Param
	dispatch   *code.Switch
	cases      map[int]*code.Block
}

func (d *activityResult) method() *code.Method {
	if d.m == nil {
		d.set()
	}
	return d.m
}

func (d *activityResult) resultCodeParam() *code.Param {
	if d.resultCode == nil {
		d.set()
	}
	return d.resultCode
}

func (d *activityResult) dataParam() *code.Param {
	if d.data == nil {
		d.set()
	}
	return d.data
}

func (d *activityResult) caseBlock(requestCode int) *code.Block {
	if d.dispatch == nil {
		d.set()
	}
	if b, ok := d.cases[requestCode]; ok {
		return b
	}
	b := d.dispatch.Case(jen.Lit(requestCode))
	d.cases[requestCode] = b
	return b
}

func (d *activityResult) set() {
	h := d.h
	h.build("activity result", func() {
		m := h.class.Method("OnActivityResult")
		requestCode := m.Param("requestCode", jen.Int())
		resultCode := m.Param("resultCode", jen.Int())
		data := m.Param("data", h.ctx.Ptr("Intent"))
		m.Body().Add(m.SuperCall())

		d.dispatch = m.Body().Switch(requestCode.Ref())
		d.cases = make(map[int]*code.Block)
		d.m = m
		d.resultCode = resultCode
		d.data = data
	})
}
