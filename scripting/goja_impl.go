package scripting

import (
	"context"
	"fmt"

	"github.com/dop251/goja"

	"github.com/ShowTails/ShowTailsOCR/pedigree"
)

// GojaEngine runs rule scripts on an embedded JavaScript runtime. The
// runtime is single-threaded; an Engine must not be shared across
// concurrent scans.
type GojaEngine struct {
	vm    *goja.Runtime
	clean goja.Callable
}

// NewEngine constructs a JavaScript rule engine. Scripts get a small host
// API: normalizeDate(token) exposes the scanner's date normalization so
// rules do not reimplement it.
func NewEngine() *GojaEngine {
	vm := goja.New()
	vm.Set("normalizeDate", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Undefined()
		}
		return vm.ToValue(pedigree.NormalizeDate(call.Arguments[0].String()))
	})
	return &GojaEngine{vm: vm}
}

// Load evaluates the rule script and resolves its clean function.
func (e *GojaEngine) Load(ctx context.Context, src string) error {
	if _, err := e.run(ctx, func() (goja.Value, error) {
		return e.vm.RunString(src)
	}); err != nil {
		return fmt.Errorf("evaluate rules: %w", err)
	}
	fn, ok := goja.AssertFunction(e.vm.Get("clean"))
	if !ok {
		return fmt.Errorf("rules must define a function clean(text)")
	}
	e.clean = fn
	return nil
}

// Clean rewrites recognized text through the loaded clean function.
func (e *GojaEngine) Clean(ctx context.Context, text string) (string, error) {
	if e.clean == nil {
		return "", fmt.Errorf("no rules loaded")
	}
	val, err := e.run(ctx, func() (goja.Value, error) {
		return e.clean(goja.Undefined(), e.vm.ToValue(text))
	})
	if err != nil {
		return "", fmt.Errorf("apply rules: %w", err)
	}
	return val.String(), nil
}

// run executes fn with the context wired to the runtime's interrupt channel
// so a canceled context stops a looping script.
func (e *GojaEngine) run(ctx context.Context, fn func() (goja.Value, error)) (goja.Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := fn()
	if err != nil {
		if interrupted, ok := err.(*goja.InterruptedError); ok {
			if cause := interrupted.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val, nil
}
