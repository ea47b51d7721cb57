package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRun_Options(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 1, run([]string{"--no-such-flag"}))
	assert.Equal(t, 1, run([]string{"--timeout", "-1s"}))
}
