package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeShape(t *testing.T) {
	raw, err := json.Marshal(Success())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Success","msg":null,"data":null}`, string(raw))

	raw, err = json.Marshal(NotFound().Msg("User not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"NotFound","msg":"User not found","data":null}`, string(raw))
}

func TestChainingDoesNotMutate(t *testing.T) {
	base := IncorrectPassword()
	withMsg := base.Msg("nope")

	assert.Nil(t, base.Message)
	assert.Equal(t, "nope", *withMsg.Message)
	assert.Equal(t, KindIncorrectPassword, withMsg.Type)
}

func TestSendAlwaysTransportOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, r := range []Response{
		Success(),
		AlreadyExists(),
		NotFound(),
		ServerError(),
		Unauthorized(),
		IncorrectPassword().Msg("Username or password is incorrect"),
	} {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		r.Send(c)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, string(r.Type), body["type"])
	}
}
