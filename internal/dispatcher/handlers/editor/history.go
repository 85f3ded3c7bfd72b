package editor

import (
	"errors"

	"github.com/dshills/treenav/internal/dispatcher/execctx"
	"github.com/dshills/treenav/internal/dispatcher/handler"
	"github.com/dshills/treenav/internal/engine/history"
)

// DataSteps is the result data key holding the number of history steps
// taken by undo or redo.
const DataSteps = "steps"

// undo reverts up to count edits. It is a no-op when there is nothing to
// undo.
func (h *Handler) undo(ctx *execctx.ExecutionContext, count int) handler.Result {
	return stepHistory(ctx, count, ctx.Engine.Undo, history.ErrNothingToUndo)
}

// redo reapplies up to count undone edits.
func (h *Handler) redo(ctx *execctx.ExecutionContext, count int) handler.Result {
	return stepHistory(ctx, count, ctx.Engine.Redo, history.ErrNothingToRedo)
}

func stepHistory(ctx *execctx.ExecutionContext, count int, step func() error, exhausted error) handler.Result {
	if ctx.DryRun {
		return handler.NoOp()
	}

	done := 0
	for ; done < count; done++ {
		err := step()
		if errors.Is(err, exhausted) {
			break
		}
		if err != nil {
			return handler.Error(err)
		}
	}

	if done == 0 {
		return handler.NoOpWithMessage(exhausted.Error())
	}
	return handler.Success().WithData(DataSteps, done)
}
