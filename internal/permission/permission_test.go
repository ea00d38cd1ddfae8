package permission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	var v struct {
		Permission Permission `json:"permission"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"permission": "instagram_graph_user_media"}`), &v))
	assert.Equal(t, GraphUserMedia, v.Permission)

	require.NoError(t, json.Unmarshal([]byte(`{"permission": "instagram_graph_user_profile"}`), &v))
	assert.Equal(t, GraphUserProfile, v.Permission)

	assert.Error(t, json.Unmarshal([]byte(`{"permission": "instagram_basic"}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"permission": 1}`), &v))
}

func TestMarshal(t *testing.T) {
	b, err := json.Marshal([]Permission{GraphUserMedia, GraphUserProfile})
	require.NoError(t, err)
	assert.JSONEq(t, `["instagram_graph_user_media","instagram_graph_user_profile"]`, string(b))

	_, err = json.Marshal(Permission(42))
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "instagram_graph_user_media", GraphUserMedia.String())
	assert.Equal(t, "Permission(0)", Permission(0).String())
}
