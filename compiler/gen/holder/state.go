package holder

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/veloxui/compiler/code"
)

// instanceState builds the save and restore routines of a unit. The
// restore routine runs from the startup routine with its saved-state
// parameter.
type instanceState struct {
	h *ComponentHolder

	save         *code.Block
	saveParam    *code.Param
	restore      *code.Method
	restoreBlock *code.Block
	restoreParam *code.Param
}

func (d *instanceState) saveBody() *code.Block {
	if d.save == nil {
		d.set()
	}
	return d.save
}

func (d *instanceState) saveBundle() *code.Param {
	if d.saveParam == nil {
		d.set()
	}
	return d.saveParam
}

func (d *instanceState) restoreMethod() *code.Method {
	if d.restore == nil {
		d.set()
	}
	return d.restore
}

func (d *instanceState) restoreBody() *code.Block {
	if d.restoreBlock == nil {
		d.set()
	}
	return d.restoreBlock
}

func (d *instanceState) restoreBundle() *code.Param {
	if d.restoreParam == nil {
		d.set()
	}
	return d.restoreParam
}

func (d *instanceState) set() {
	h := d.h
	h.build("instance state", func() {
		ctx := h.ctx
		save := h.class.Method("OnSaveInstanceState")
		saveParam := save.Param(ctx.Named("bundle"), ctx.Ptr("Bundle"))
		save.Body().Add(save.SuperCall())

		restore := h.class.Method(ctx.Named("restoreSavedInstanceState"))
		restoreParam := restore.Param("savedInstanceState", ctx.Ptr("Bundle"))
		restore.Body().If(restoreParam.Ref().Op("==").Nil()).Return()
		restoreBlock := restore.Body().Block()

		args := make([]jen.Code, 0, 1)
		for _, p := range h.init.Params() {
			args = append(args, p.Ref())
		}
		h.InitBody().Add(h.self(restore.Name(), args...))

		d.save = save.Body().Block()
		d.saveParam = saveParam
		d.restore = restore
		d.restoreBlock = restoreBlock
		d.restoreParam = restoreParam
	})
}
