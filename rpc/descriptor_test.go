package rpc_test

import (
	"testing"

	"github.com/skillsenselab/rpckit/rpc"
)

type schemaSample struct {
	Foo     string  `json:"foo" validate:"required"`
	Bar     int     `json:"bar"`
	Skipped string  `json:"-"`
	NoTag   float64
	hidden  bool
}

func TestSchemaOf_Struct(t *testing.T) {
	s := rpc.SchemaOf[schemaSample]()
	if s.Name != "schemaSample" {
		t.Errorf("Name = %q, want %q", s.Name, "schemaSample")
	}

	want := []rpc.Field{
		{Name: "foo", Type: "string", Required: true},
		{Name: "bar", Type: "int"},
		{Name: "NoTag", Type: "float64"},
	}
	if len(s.Fields) != len(want) {
		t.Fatalf("got %d fields (%+v), want %d", len(s.Fields), s.Fields, len(want))
	}
	for i, f := range want {
		if s.Fields[i] != f {
			t.Errorf("Fields[%d] = %+v, want %+v", i, s.Fields[i], f)
		}
	}
}

func TestSchemaOf_PointerAndNonStruct(t *testing.T) {
	if s := rpc.SchemaOf[*schemaSample](); s.Name != "schemaSample" || len(s.Fields) != 3 {
		t.Errorf("pointer schema = %+v, want deref to schemaSample", s)
	}

	if s := rpc.SchemaOf[string](); s.Name != "string" || len(s.Fields) != 0 {
		t.Errorf("scalar schema = %+v, want bare name", s)
	}

	if s := rpc.SchemaOf[map[string]int](); s.Name != "map[string]int" {
		t.Errorf("map schema name = %q, want %q", s.Name, "map[string]int")
	}
}
