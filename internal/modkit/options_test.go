package modkit

import (
	"net/http"
	"testing"

	phttp "paperwork/internal/platform/net/http"
)

func TestWithName(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithName("paperwork")(&c)
	if c.name != "paperwork" {
		t.Fatalf("expected name=paperwork got=%q", c.name)
	}
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()
	var c buildCfg
	WithPrefix("/meta")(&c)
	if c.prefix != "/meta" {
		t.Fatalf("expected prefix=/meta got=%q", c.prefix)
	}
}

func TestWithMiddlewares_AccumulatesAndOrder(t *testing.T) {
	t.Parallel()

	log := []string{}
	mw := func(tag string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				log = append(log, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	var c buildCfg
	WithMiddlewares(mw("a"), mw("b"))(&c)
	WithMiddlewares(mw("c"))(&c)

	if len(c.mw) != 3 {
		t.Fatalf("expected 3 middlewares got=%d", len(c.mw))
	}

	// first added runs first
	var h http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for i := len(c.mw) - 1; i >= 0; i-- {
		h = c.mw[i](h)
	}
	h.ServeHTTP(nil, nil)

	want := []string{"a", "b", "c"}
	if len(log) != len(want) {
		t.Fatalf("unexpected call count got=%d want=%d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("middleware order mismatch at %d: got=%q want=%q", i, log[i], want[i])
		}
	}
}

func TestWithPorts_GenericStoresConcreteType(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Hello string
		N     int
	}

	var c buildCfg
	WithPorts(Ports{Hello: "world", N: 7})(&c)
	got, ok := c.ports.(Ports)
	if !ok || got.Hello != "world" || got.N != 7 {
		t.Fatalf("unexpected ports %#v", c.ports)
	}
}

func TestWithRegisterAndRoot_StoreHooks(t *testing.T) {
	t.Parallel()

	var c buildCfg
	called := ""
	WithRegister(func(phttp.Router) { called += "r" })(&c)
	WithRoot(func(phttp.Router) { called += "o" })(&c)

	c.register(nil)
	c.root(nil)
	if called != "ro" {
		t.Fatalf("hooks not stored, called=%q", called)
	}
}
