package main

import (
	"strings"
	"testing"
)

func TestWriteScript(t *testing.T) {
	statements := []string{
		"CREATE TABLE IF NOT EXISTS `orders` ( `id` INT) STORED AS PARQUET",
		"LOAD DATA INPATH '/w/orders' INTO TABLE `orders`",
	}

	t.Run("writes semicolon-terminated statements", func(t *testing.T) {
		config := testConfig()
		config.OutputScriptPath = "scripts/orders.q"
		storage := &fakeStorage{}
		executor := NewHiveExecutor(config, storage)

		scriptPath, err := executor.WriteScript(statements)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if scriptPath != "scripts/orders.q" {
			t.Errorf("Expected the configured script path, got %s", scriptPath)
		}

		expected := statements[0] + ";\n" + statements[1] + ";\n"
		if string(storage.writtenBytes) != expected {
			t.Errorf("Expected script content\n%s\ngot\n%s", expected, storage.writtenBytes)
		}
	})

	t.Run("generates a unique script name when none is configured", func(t *testing.T) {
		storage := &fakeStorage{}
		executor := NewHiveExecutor(testConfig(), storage)

		scriptPath, err := executor.WriteScript(statements)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !strings.HasPrefix(scriptPath, "hive-script-") || !strings.HasSuffix(scriptPath, ".q") {
			t.Errorf("Expected a generated hive-script-*.q name, got %s", scriptPath)
		}
		if scriptPath == "hive-script-.q" {
			t.Errorf("Expected a unique suffix, got %s", scriptPath)
		}
	})
}

func TestExecute(t *testing.T) {
	t.Run("runs the script with the configured binary", func(t *testing.T) {
		config := testConfig()
		config.HiveBinary = "true" // a no-op stand-in for the hive CLI

		executor := NewHiveExecutor(config, &fakeStorage{})
		if err := executor.Execute([]string{"SELECT 1"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("surfaces a missing binary", func(t *testing.T) {
		config := testConfig()
		config.HiveBinary = "definitely-not-a-hive-binary"

		executor := NewHiveExecutor(config, &fakeStorage{})
		if err := executor.Execute([]string{"SELECT 1"}); err == nil {
			t.Error("Expected an error for a missing binary")
		}
	})
}
