package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGaugeHooks{}
	g.OnCompute(ctx, "vertical", 1100, 2200, time.Millisecond, nil)
	g.OnPointer(ctx, 200, 50, true)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Gauge().(NoopGaugeHooks); !ok {
		t.Error("Gauge() should return NoopGaugeHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customGauge := &testGaugeHooks{}
	SetGaugeHooks(customGauge)
	if Gauge() != customGauge {
		t.Error("SetGaugeHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	Reset()
	if _, ok := Gauge().(NoopGaugeHooks); !ok {
		t.Error("Reset() should restore NoopGaugeHooks")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testGaugeHooks{}
	SetGaugeHooks(custom)
	SetGaugeHooks(nil)
	if Gauge() != custom {
		t.Error("SetGaugeHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	g := &testGaugeHooks{}
	SetGaugeHooks(g)
	Gauge().OnCompute(context.Background(), "horizontal", 10, 20, 0, nil)
	Gauge().OnPointer(context.Background(), -80, -50, true)

	if g.computes != 1 || g.lastWidth != 10 || g.lastHeight != 20 {
		t.Errorf("compute events = %d (last %dx%d)", g.computes, g.lastWidth, g.lastHeight)
	}
	if g.clamped != 1 {
		t.Errorf("clamped events = %d, want 1", g.clamped)
	}
}

type testGaugeHooks struct {
	computes              int
	lastWidth, lastHeight int
	clamped               int
}

func (h *testGaugeHooks) OnCompute(_ context.Context, _ string, w, ht int, _ time.Duration, _ error) {
	h.computes++
	h.lastWidth, h.lastHeight = w, ht
}

func (h *testGaugeHooks) OnPointer(_ context.Context, _, _ int, clamped bool) {
	if clamped {
		h.clamped++
	}
}

type testRenderHooks struct{ NoopRenderHooks }
