package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	gormDB, err := Open("mongodb", "mongodb://localhost")

	assert.Nil(t, gormDB)
	assert.EqualError(t, err, `unsupported database driver "mongodb"`)
}
