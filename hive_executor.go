package main

import (
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// HiveExecutor turns generated statements into a script artifact and,
// on request, runs that script with the Hive CLI. Statement generation
// itself never executes anything.
type HiveExecutor struct {
	config  *Config
	storage Storage
}

func NewHiveExecutor(config *Config, storage Storage) *HiveExecutor {
	return &HiveExecutor{config: config, storage: storage}
}

// WriteScript persists the statements as a ';'-terminated script through the
// active storage backend and returns the script path.
func (executor *HiveExecutor) WriteScript(statements []string) (string, error) {
	scriptPath := executor.config.OutputScriptPath
	if scriptPath == "" {
		scriptPath = "hive-script-" + uuid.New().String() + ".q"
	}

	if err := executor.storage.WriteFile(scriptPath, scriptContent(statements)); err != nil {
		return "", err
	}

	return scriptPath, nil
}

// Execute writes the statements to a local temporary script and runs it with
// the configured Hive CLI binary, streaming its output through.
func (executor *HiveExecutor) Execute(statements []string) error {
	scriptFile, err := CreateTemporaryFile("hive-script-")
	if err != nil {
		return err
	}
	defer DeleteTemporaryFile(scriptFile)

	if _, err := scriptFile.Write(scriptContent(statements)); err != nil {
		return err
	}
	if err := scriptFile.Close(); err != nil {
		return err
	}

	LogInfo(executor.config, "Running", executor.config.HiveBinary, "-f", scriptFile.Name())
	cmd := exec.Command(executor.config.HiveBinary, "-f", scriptFile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func scriptContent(statements []string) []byte {
	var sb strings.Builder
	for _, statement := range statements {
		sb.WriteString(statement)
		sb.WriteString(";\n")
	}

	return []byte(sb.String())
}
