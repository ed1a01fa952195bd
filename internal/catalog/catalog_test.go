package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCatalog(t *testing.T) {
	t.Run("Марки отсортированы", func(t *testing.T) {
		path := writeCatalog(t, `{"Toyota":["Camry"],"Chevrolet":["Cobalt","Nexia"],"Daewoo":["Matiz"]}`)

		c := New(path)

		brands, err := c.Brands()
		require.NoError(t, err)
		assert.Equal(t, []string{"Chevrolet", "Daewoo", "Toyota"}, brands)

		cars, err := c.Cars()
		require.NoError(t, err)
		assert.Equal(t, []string{"Cobalt", "Nexia"}, cars["Chevrolet"])
	})

	t.Run("Отсутствующий файл", func(t *testing.T) {
		c := New(filepath.Join(t.TempDir(), "nope.json"))

		_, err := c.Cars()
		assert.Error(t, err)

		// ошибка загрузки стабильна при повторных обращениях
		_, err = c.Brands()
		assert.Error(t, err)
	})

	t.Run("Битый JSON", func(t *testing.T) {
		c := New(writeCatalog(t, `{"Toyota": [`))

		_, err := c.Cars()
		assert.Error(t, err)
	})
}
