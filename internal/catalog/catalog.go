package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Catalog - справочник марок и моделей. Загружается лениво один раз,
// после загрузки неизменяем и безопасен для конкурентного чтения.
type Catalog struct {
	path string

	once sync.Once
	err  error
	cars map[string][]string
}

func New(path string) *Catalog {
	return &Catalog{path: path}
}

func (c *Catalog) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		c.err = fmt.Errorf("ошибка при чтении справочника машин: %w", err)
		return
	}

	if err := json.Unmarshal(data, &c.cars); err != nil {
		c.err = fmt.Errorf("ошибка при разборе справочника машин: %w", err)
	}
}

// Cars возвращает всю карту марка -> модели
func (c *Catalog) Cars() (map[string][]string, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return nil, c.err
	}
	return c.cars, nil
}

// Brands возвращает отсортированный список марок
func (c *Catalog) Brands() ([]string, error) {
	cars, err := c.Cars()
	if err != nil {
		return nil, err
	}

	brands := make([]string, 0, len(cars))
	for brand := range cars {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return brands, nil
}
