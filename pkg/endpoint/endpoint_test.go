// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package endpoint

import (
	"testing"

	"github.com/luxfi/atomicexport/pkg/constants"
	"github.com/luxfi/atomicexport/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		url      string
		expected Endpoint
	}{
		{"http://localhost:9650", Endpoint{"http", "localhost", 9650}},
		{"http://localhost", Endpoint{"http", "localhost", 80}},
		{"http://localhost:", Endpoint{"http", "localhost", 80}},
		{"https://api.lux.network:443/ext/bc/C/rpc", Endpoint{"https", "api.lux.network", 443}},
		{"http://127.0.0.1:9650?foo=bar", Endpoint{"http", "127.0.0.1", 9650}},
		{"http://node.example/ext/info", Endpoint{"http", "node.example", 80}},
		{"http://node.example?x=1", Endpoint{"http", "node.example", 80}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			ep, err := Parse(tt.url)
			require.NoError(t, err)
			require.Equal(t, tt.expected, ep)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, url := range []string{
		"notaurl",
		"",
		"://localhost:9650",
		"http://",
		"http://:9650",
		"http://localhost:/path",
		"http://localhost:port",
		"http://localhost:0",
		"http://localhost:70000",
	} {
		t.Run(url, func(t *testing.T) {
			_, err := Parse(url)
			require.ErrorIs(t, err, constants.ErrInvalidArgument)
		})
	}
}

func TestURLs(t *testing.T) {
	require := require.New(t)

	ep, err := Parse("http://localhost:9650/some/path")
	require.NoError(err)
	require.Equal("http://localhost:9650", ep.URI())
	require.Equal("http://localhost:9650", ep.String())

	cURL, err := ep.APIURL(models.ChainC)
	require.NoError(err)
	require.Equal("http://localhost:9650/ext/bc/C/rpc", cURL)

	xURL, err := ep.APIURL(models.ChainX)
	require.NoError(err)
	require.Equal("http://localhost:9650/ext/bc/X", xURL)

	pURL, err := ep.APIURL(models.ChainP)
	require.NoError(err)
	require.Equal("http://localhost:9650/ext/bc/P", pURL)

	_, err = ep.APIURL(models.ChainID(0))
	require.ErrorIs(err, constants.ErrInvalidArgument)
}
