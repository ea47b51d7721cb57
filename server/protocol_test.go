package server

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"testing"
)

func TestNegotiateProtocolVersion(t *testing.T) {
	var testCases = []struct {
		requested string
		expect    string
	}{
		{requested: schema.LatestProtocolVersion, expect: schema.LatestProtocolVersion},
		{requested: "2025-03-26", expect: "2025-03-26"},
		{requested: "2024-11-05", expect: "2024-11-05"},
		{requested: "2030-01-01", expect: schema.LatestProtocolVersion},
		{requested: "", expect: schema.LatestProtocolVersion},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, NegotiateProtocolVersion(testCase.requested), testCase.requested)
	}
}

func TestNewUnknownTool(t *testing.T) {
	err := NewUnknownTool("get_random_fact")
	assert.Equal(t, jsonrpc.InvalidParams, err.Code)
	assert.Equal(t, "Unknown tool: get_random_fact", err.Message)
	var data map[string]interface{}
	assert.NoError(t, json.Unmarshal(err.Data, &data))
	assert.Equal(t, "get_random_fact", data["name"])
}
