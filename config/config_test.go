package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadAPIConfMissingVariables(t *testing.T) {
	t.Setenv("IHC_API_URL", "")
	t.Setenv("IHC_API_KEY", "")
	t.Setenv("IHC_CONV_TYPE_ID", "")

	conf, err := LoadAPIConf()

	assert.Nil(t, conf)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "IHC_API_URL")
	assert.Contains(t, err.Error(), "IHC_API_KEY")
	assert.Contains(t, err.Error(), "IHC_CONV_TYPE_ID")
}

func TestLoadAPIConf(t *testing.T) {
	t.Setenv("IHC_API_URL", "https://api.ihc-attribution.com/v1/compute_ihc")
	t.Setenv("IHC_API_KEY", "secret")
	t.Setenv("IHC_CONV_TYPE_ID", "ihc-challenge")

	conf, err := LoadAPIConf()

	assert.NoError(t, err)
	assert.Equal(t, "https://api.ihc-attribution.com/v1/compute_ihc", conf.Endpoint)
	assert.Equal(t, "secret", conf.Key)
	assert.Equal(t, "ihc-challenge", conf.ConvTypeID)
}
