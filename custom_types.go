package main

import (
	"strings"
)

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type OrderedMap struct {
	valueByKey  map[string]string
	orderedKeys []string
}

func NewOrderedMap(keyVals [][]string) *OrderedMap {
	orderedMap := &OrderedMap{
		valueByKey:  make(map[string]string),
		orderedKeys: make([]string, 0),
	}

	for _, keyVal := range keyVals {
		orderedMap.Set(keyVal[0], keyVal[1])
	}

	return orderedMap
}

func (orderedMap *OrderedMap) Get(key string) string {
	return orderedMap.valueByKey[key]
}

func (orderedMap *OrderedMap) HasKey(key string) bool {
	_, ok := orderedMap.valueByKey[key]
	return ok
}

func (orderedMap *OrderedMap) Set(key string, value string) {
	if _, ok := orderedMap.valueByKey[key]; !ok {
		orderedMap.orderedKeys = append(orderedMap.orderedKeys, key)
	}

	orderedMap.valueByKey[key] = value
}

func (orderedMap *OrderedMap) Keys() []string {
	return orderedMap.orderedKeys
}

func (orderedMap *OrderedMap) Len() int {
	return len(orderedMap.orderedKeys)
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type Set[T comparable] map[T]struct{}

func NewSet[T comparable](values []T) Set[T] {
	set := make(Set[T])
	for _, value := range values {
		set.Add(value)
	}

	return set
}

func (set Set[T]) Add(value T) {
	set[value] = struct{}{}
}

func (set Set[T]) Contains(value T) bool {
	_, ok := set[value]
	return ok
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type PgSchemaTable struct {
	Schema string
	Table  string
}

// ParsePgSchemaTable splits "schema.table" into its parts, defaulting the
// schema to "public".
func ParsePgSchemaTable(name string) PgSchemaTable {
	if schema, table, found := strings.Cut(name, "."); found {
		return PgSchemaTable{Schema: schema, Table: table}
	}

	return PgSchemaTable{Schema: PG_SCHEMA_PUBLIC, Table: name}
}

func (schemaTable PgSchemaTable) String() string {
	return schemaTable.Schema + "." + schemaTable.Table
}

////////////////////////////////////////////////////////////////////////////////////////////////////////////////////////

type HiveTable struct {
	Database string
	Table    string
}

// QuotedName renders the backtick-quoted table reference used in generated
// statements. Quoting keeps reserved words usable as identifiers.
func (hiveTable HiveTable) QuotedName() string {
	if hiveTable.Database != "" {
		return "`" + hiveTable.Database + "`.`" + hiveTable.Table + "`"
	}

	return "`" + hiveTable.Table + "`"
}
