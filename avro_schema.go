package main

import (
	"fmt"
	"os"

	"github.com/hamba/avro/v2"
)

type AvroSchemaField struct {
	Name string
	Type avro.Type
}

// AvroTableSchema wraps an Avro record schema describing PARQUET-layout data.
// Field order is the order the data was written with.
type AvroTableSchema struct {
	record *avro.RecordSchema
}

func ParseAvroTableSchema(schemaJson string) (*AvroTableSchema, error) {
	schema, err := avro.Parse(schemaJson)
	if err != nil {
		return nil, err
	}

	record, ok := schema.(*avro.RecordSchema)
	if !ok {
		return nil, fmt.Errorf("avro schema is not a record schema: %s", schema.Type())
	}

	return &AvroTableSchema{record: record}, nil
}

func NewAvroTableSchemaFromFile(filePath string) (*AvroTableSchema, error) {
	schemaJson, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	return ParseAvroTableSchema(string(schemaJson))
}

func (tableSchema *AvroTableSchema) Fields() []AvroSchemaField {
	fields := make([]AvroSchemaField, 0, len(tableSchema.record.Fields()))
	for _, field := range tableSchema.record.Fields() {
		fields = append(fields, AvroSchemaField{
			Name: field.Name(),
			Type: nonNullAvroType(field.Type()),
		})
	}

	return fields
}

// nonNullAvroType unwraps a nullable union to its first non-null branch.
func nonNullAvroType(schema avro.Schema) avro.Type {
	union, ok := schema.(*avro.UnionSchema)
	if !ok {
		return schema.Type()
	}

	for _, branch := range union.Types() {
		if branch.Type() != avro.Null {
			return branch.Type()
		}
	}

	return avro.Null
}
