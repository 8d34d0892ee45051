package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, os.Chdir(wd))
	}()

	tempdir := t.TempDir()
	assert.NoError(t, os.Chdir(tempdir))
	assert.NoError(t, os.Mkdir(filepath.Join(tempdir, "testdata"), 0700))

	assert.NoError(t, generateGolden())
	assert.NoError(t, validateGolden())
}

func TestEvaluateCoversPassword(t *testing.T) {
	analyzer := newAnalyzer()
	for _, c := range goldenCases {
		v, err := evaluate(analyzer, c.password)
		assert.NoError(t, err, "password %q", c.password)
		assert.NotEmpty(t, v.Cover, "password %q", c.password)
	}
}
