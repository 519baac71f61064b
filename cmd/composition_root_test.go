package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"workorder/cmd"
	"workorder/internal/core/domain/model/pricelist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() cmd.Config {
	return cmd.Config{
		PriceCatalogBaseURL: "http://localhost:8090",
		PriceCatalogTimeout: "5s",
	}
}

func TestNewCompositionRoot(t *testing.T) {
	t.Run("should wire the catalog and the editing components", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		root, err := cmd.NewCompositionRoot(testConfig(), nil, logger)
		require.NoError(t, err)
		assert.NotNil(t, root.PriceCatalog())

		editSession, err := root.CreateEditSession()
		require.NoError(t, err)

		lookup, err := root.CreateMaterialLookup(editSession,
			func(int, []pricelist.Entry) {})
		require.NoError(t, err)
		lookup.Close()
	})

	t.Run("should reject a blank catalog base URL", func(t *testing.T) {
		configs := testConfig()
		configs.PriceCatalogBaseURL = ""

		_, err := cmd.NewCompositionRoot(configs, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

		assert.Error(t, err)
	})
}
