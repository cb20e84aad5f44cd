package main

import (
	"testing"
)

func TestOrderedMap(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		orderedMap := NewOrderedMap([][]string{{"b", "2"}, {"a", "1"}, {"c", "3"}})

		keys := orderedMap.Keys()
		if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "c" {
			t.Errorf("Expected keys in insertion order, got %v", keys)
		}
	})

	t.Run("overwrites without duplicating keys", func(t *testing.T) {
		orderedMap := NewOrderedMap([][]string{{"a", "1"}})
		orderedMap.Set("a", "2")

		if orderedMap.Len() != 1 {
			t.Errorf("Expected 1 key, got %d", orderedMap.Len())
		}
		if orderedMap.Get("a") != "2" {
			t.Errorf("Expected a to be 2, got %s", orderedMap.Get("a"))
		}
	})
}

func TestParsePgSchemaTable(t *testing.T) {
	t.Run("splits schema-qualified names", func(t *testing.T) {
		schemaTable := ParsePgSchemaTable("sales.orders")
		if schemaTable.Schema != "sales" || schemaTable.Table != "orders" {
			t.Errorf("Expected sales.orders, got %s", schemaTable.String())
		}
	})

	t.Run("defaults the schema to public", func(t *testing.T) {
		schemaTable := ParsePgSchemaTable("orders")
		if schemaTable.Schema != "public" || schemaTable.Table != "orders" {
			t.Errorf("Expected public.orders, got %s", schemaTable.String())
		}
	})
}

func TestHiveTableQuotedName(t *testing.T) {
	t.Run("quotes a bare table", func(t *testing.T) {
		if name := (HiveTable{Table: "orders"}).QuotedName(); name != "`orders`" {
			t.Errorf("Expected `orders`, got %s", name)
		}
	})

	t.Run("quotes a database-qualified table", func(t *testing.T) {
		if name := (HiveTable{Database: "warehouse", Table: "orders"}).QuotedName(); name != "`warehouse`.`orders`" {
			t.Errorf("Expected `warehouse`.`orders`, got %s", name)
		}
	})
}
