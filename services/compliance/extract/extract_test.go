// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for document text extraction

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFile_PlainText(t *testing.T) {
	path := writeTemp(t, "ad.txt", "SEBI Reg. No: INZ000123456")
	assert.Equal(t, "SEBI Reg. No: INZ000123456", FromFile(path))
}

func TestFromFile_MissingFile(t *testing.T) {
	assert.Equal(t, "", FromFile("/nonexistent/file.txt"))
	assert.Equal(t, "", FromFile(""))
}

func TestFromFile_BinaryContainerScrubbed(t *testing.T) {
	content := "\x00\x01\x02Mutual funds are subject to market risk\x00\xff\x01ab\x00"
	path := writeTemp(t, "ad.pdf", content)

	got := FromFile(path)
	assert.Contains(t, got, "Mutual funds are subject to market risk")
	// Short garbage runs are dropped.
	assert.NotContains(t, got, "ab")
}

func TestPrintableRuns(t *testing.T) {
	assert.Equal(t, "hello world", printableRuns("hello world"))
	assert.Equal(t, "long enough run", printableRuns("\x00x\x01long enough run\x02yz\x03"))
	assert.Equal(t, "", printableRuns("\x00\x01\x02"))
}
