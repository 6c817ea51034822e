package rpc_test

import (
	"context"
	"testing"

	"github.com/skillsenselab/rpckit/errors"
	"github.com/skillsenselab/rpckit/rpc"
)

type stubInvoker struct {
	name string
}

func (s stubInvoker) Name() string             { return s.name }
func (s stubInvoker) Describe() rpc.Descriptor { return rpc.Descriptor{Name: s.name} }
func (s stubInvoker) Invoke(context.Context, rpc.Request) ([]byte, error) {
	return []byte(`{}`), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := rpc.NewRegistry()
	if err := r.Register(stubInvoker{name: "echo"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	ep, ok := r.Get("echo")
	if !ok || ep.Name() != "echo" {
		t.Fatalf("Get(echo) = %v, %v; want registered endpoint", ep, ok)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := rpc.NewRegistry()
	r.MustRegister(stubInvoker{name: "echo"})

	err := r.Register(stubInvoker{name: "echo"})
	if !errors.IsCode(err, errors.ErrCodeAlreadyExists) {
		t.Fatalf("Register() duplicate error = %v, want ALREADY_EXISTS", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustRegister() on a duplicate should panic")
		}
	}()
	r.MustRegister(stubInvoker{name: "echo"})
}

func TestRegistry_NamesAndDescriptorsSorted(t *testing.T) {
	r := rpc.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.MustRegister(stubInvoker{name: name})
	}

	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	descriptors := r.Descriptors()
	for i, n := range want {
		if descriptors[i].Name != n {
			t.Fatalf("Descriptors() order = %v, want %v", descriptors, want)
		}
	}
}
