package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/constant"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	assert.Nil(t, logFile, "expected nil log file when debug=false")
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	defer os.RemoveAll(constant.LogDir)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(constant.LogDir, constant.LogFileName)
	require.FileExists(t, logPath)

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSetupLogging_Rotation(t *testing.T) {
	defer os.RemoveAll(constant.LogDir)
	require.NoError(t, os.MkdirAll(constant.LogDir, 0755))

	logPath := filepath.Join(constant.LogDir, constant.LogFileName)
	largeFile, err := os.Create(logPath)
	require.NoError(t, err)
	_, err = largeFile.Write(make([]byte, constant.MaxLogSize+1))
	require.NoError(t, err)
	largeFile.Close()

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(constant.LogDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != constant.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "expected to find rotated log file")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(constant.MaxLogSize))
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	defer os.RemoveAll(constant.LogDir)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	output := log.Writer()
	assert.NotEqual(t, os.Stdout, output)
	assert.NotEqual(t, os.Stderr, output)
}
