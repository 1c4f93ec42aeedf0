package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{"/payments", "/payments/{id}", "/api/payments", "/api/payments/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Empty(t, doc.Servers)
}

func TestDocument(t *testing.T) {
	assert.Contains(t, string(Document()), "openapi: 3.0.3")
}
