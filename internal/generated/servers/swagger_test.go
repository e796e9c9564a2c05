package servers_test

import (
	"testing"

	"valueguard/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := servers.GetSwagger()

	require.NoError(t, err)
	assert.Equal(t, "valueguard", doc.Info.Title)
	assert.NotNil(t, doc.Paths.Find("/api/v1/holders"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/holders/{holderId}"))
}

func TestGetSwagger_OperationsMatchServerInterface(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	list := doc.Paths.Find("/api/v1/holders")
	require.NotNil(t, list.Get)
	require.NotNil(t, list.Post)
	assert.Equal(t, "GetHolders", list.Get.OperationID)
	assert.Equal(t, "CreateHolder", list.Post.OperationID)

	single := doc.Paths.Find("/api/v1/holders/{holderId}")
	require.NotNil(t, single.Get)
	assert.Equal(t, "GetHolder", single.Get.OperationID)
	assert.NotNil(t, single.Get.Responses.Status(404))
}
