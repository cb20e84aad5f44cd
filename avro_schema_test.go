package main

import (
	"testing"

	"github.com/hamba/avro/v2"
)

func TestParseAvroTableSchema(t *testing.T) {
	t.Run("lists fields in schema order", func(t *testing.T) {
		tableSchema, err := ParseAvroTableSchema(TEST_AVRO_SCHEMA)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		fields := tableSchema.Fields()
		if len(fields) != 3 {
			t.Fatalf("Expected 3 fields, got %d", len(fields))
		}
		if fields[0].Name != "id" || fields[1].Name != "name" || fields[2].Name != "total" {
			t.Errorf("Expected fields in schema order, got %v", fields)
		}
	})

	t.Run("unwraps nullable unions to the non-null branch", func(t *testing.T) {
		tableSchema, err := ParseAvroTableSchema(TEST_AVRO_SCHEMA)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		fields := tableSchema.Fields()
		if fields[1].Type != avro.String {
			t.Errorf("Expected name to resolve to string, got %s", fields[1].Type)
		}
		if fields[2].Type != avro.Double {
			t.Errorf("Expected total to resolve to double, got %s", fields[2].Type)
		}
	})

	t.Run("keeps the union order when null comes last", func(t *testing.T) {
		tableSchema, err := ParseAvroTableSchema(`{
			"type": "record",
			"name": "t",
			"fields": [{"name": "v", "type": ["long", "null"]}]
		}`)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if fields := tableSchema.Fields(); fields[0].Type != avro.Long {
			t.Errorf("Expected v to resolve to long, got %s", fields[0].Type)
		}
	})

	t.Run("rejects non-record schemas", func(t *testing.T) {
		if _, err := ParseAvroTableSchema(`"string"`); err == nil {
			t.Error("Expected an error for a non-record schema")
		}
	})

	t.Run("rejects malformed schemas", func(t *testing.T) {
		if _, err := ParseAvroTableSchema(`{"type": "recor`); err == nil {
			t.Error("Expected an error for a malformed schema")
		}
	})
}
