package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/config"
	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/utils/response"
	"github.com/stretchr/testify/require"
)

func catalogConfig() *config.Catalog {
	return &config.Catalog{
		PriceCeiling:      5000,
		PageSize:          12,
		MaxPageSize:       100,
		AdminPageSize:     25,
		LowStockThreshold: 10,
		MinStock:          20,
	}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(raw)
}

// decodeResponse unwraps the envelope and, when dest is non-nil, decodes Data into it.
func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, dest any) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	if dest != nil && resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, dest))
	}

	return resp
}
