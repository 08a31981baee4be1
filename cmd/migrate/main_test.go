package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobboard-migrate-test")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "0")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stderr))
	assert.Contains(t, stderr.String(), "-nope")
}

func TestRun_MemoryDriverHasNothingToMigrate(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", "memory")

	assert.Equal(t, 1, run(nil, &bytes.Buffer{}))
}

func TestRun_UnreachableDatabaseReturnsInsteadOfExiting(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("DB_NAME", "jobs")
	t.Setenv("DB_USER", "jobs")
	t.Setenv("DB_CONNECT_TIMEOUT", "1s")

	assert.Equal(t, 1, run([]string{"-timeout", "3s"}, &bytes.Buffer{}))
}
