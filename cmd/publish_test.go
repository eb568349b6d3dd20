package cmd

import (
	"testing"

	"github.com/gnames/watchseed/pkg/config"
	"github.com/gnames/watchseed/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPublishCmd_Flags(t *testing.T) {
	cmd := getPublishCmd()
	assert.Equal(t, "publish", cmd.Use)
	assert.Contains(t, cmd.Long, "WATCHSEED_STORAGE_")

	for _, name := range []string{"bucket", "key"} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestPublishOptions(t *testing.T) {
	cmd := getPublishCmd()
	err := cmd.ParseFlags([]string{"-b", "seeds", "--key", "/watch/seed.json"})
	require.NoError(t, err)

	c := config.New()
	c.Update(publishOptions(cmd))
	assert.Equal(t, "seeds", c.Storage.Bucket)
	assert.Equal(t, "watch/seed.json", c.Storage.ObjectKey)
}

func TestRunPublishBrokenSeed(t *testing.T) {
	testConfig(t)
	writeSeed(t, `{"brands": [`)
	cmd := getPublishCmd()
	require.NoError(t, cmd.ParseFlags([]string{}))
	assert.Equal(t, errcode.SeedDecodeError, errCode(t, runPublish(cmd)))
}
