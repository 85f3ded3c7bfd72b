// Package dispatcher routes actions to handlers and coordinates execution.
//
// Actions are routed by namespace prefix first ("structure.supertab" goes
// to the "structure" namespace handler) and then by exact name through the
// Registry. When an action is dispatched:
//
//  1. An ExecutionContext is built from the attached document
//  2. Pre-dispatch hooks run and may cancel the action
//  3. The handler runs, with panic recovery when enabled
//  4. Post-dispatch hooks run
//  5. Metrics are recorded when enabled
//
// A handler that panics yields an error result wrapping ErrPanic; the panic
// and its stack are logged. Dispatches slower than Config.SlowDispatch are
// logged as warnings.
//
//	d := dispatcher.NewWithDefaults()
//	d.SetDocument(doc)
//	d.RegisterNamespace("structure", structure.NewHandler())
//	result := d.Dispatch(input.NewAction("structure.selectAllSiblings"))
package dispatcher
