package factorytest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danpasecinic/factory"
)

const Backend factory.MarkerKind = "backend"

// Package-level variables are initialized before init functions run, so this
// factory exists before its candidates are declared.
var backends = factory.New[BlobStore](Backend)

type AzureStore struct{}

func (*AzureStore) Bucket() string { return "azure" }

func init() {
	factory.MustDeclare[*AzureStore](factory.DefaultCatalog, factory.Mark(Backend, "azure"))
	factory.MustDeclare[*GCSStore](factory.DefaultCatalog, factory.Mark(Backend, "gcs"))
}

func TestPackageLevelFactorySeesInitDeclarations(t *testing.T) {
	s, err := backends.Create("azure")
	require.NoError(t, err)
	assert.Equal(t, "azure", s.Bucket())

	s, err = backends.Create("gcs")
	require.NoError(t, err)
	assert.Equal(t, "gcs", s.Bucket())

	_, err = backends.Create("s3")
	assert.True(t, factory.IsImplementationNotFound(err))
}
