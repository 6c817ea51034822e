package rpc

import (
	"reflect"
	"strings"
)

// Descriptor describes an endpoint for introspection and registration: its
// name, human description, and the declared input and output shapes.
type Descriptor struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	InputSchema  Schema `json:"input_schema"`
	OutputSchema Schema `json:"output_schema"`
}

// Schema is the statically declared shape of an input or output type.
type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields,omitempty"`
}

// Field describes one field of a schema.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// SchemaOf derives a Schema from a struct type's exported fields. Field names
// come from json tags when present; Required reflects a `validate:"required"`
// tag. Non-struct types yield a schema with the type name only.
func SchemaOf[T any]() Schema {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	schema := Schema{Name: t.Name()}
	if schema.Name == "" {
		schema.Name = t.String()
	}
	if t.Kind() != reflect.Struct {
		return schema
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		schema.Fields = append(schema.Fields, Field{
			Name:     name,
			Type:     f.Type.String(),
			Required: hasRequiredTag(f.Tag.Get("validate")),
		})
	}
	return schema
}

func hasRequiredTag(tag string) bool {
	for _, part := range strings.Split(tag, ",") {
		if part == "required" {
			return true
		}
	}
	return false
}
