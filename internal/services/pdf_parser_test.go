package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	in := "  Jane Doe  \n\n\n  Backend Engineer\n\t\nGo, Kafka  \n"
	assert.Equal(t, "Jane Doe\nBackend Engineer\nGo, Kafka", CleanText(in))
	assert.Equal(t, "", CleanText(" \n\t\n"))
}

func TestExtractTextFromBytes_RejectsNonPDF(t *testing.T) {
	parser := NewPDFParserService()

	content, err := parser.ExtractTextFromBytes([]byte("definitely not a pdf"))
	assert.Error(t, err)
	assert.Nil(t, content)
}

func TestExtractText_MissingFile(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
