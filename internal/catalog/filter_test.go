package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog() []Product {
	return []Product{
		{ID: "iphone-15-pro", Name: "iPhone 15 Pro", Description: "Titanium design with A17 Pro chip", Category: "smartphone"},
		{ID: "galaxy-s24-ultra", Name: "Samsung Galaxy S24 Ultra", Description: "Galaxy AI flagship with S Pen", Category: "smartphone"},
		{ID: "airpods-pro-2", Name: "AirPods Pro (2nd Gen)", Description: "Active noise cancellation earbuds", Category: "accessory"},
		{ID: "galaxy-buds2-pro", Name: "Samsung Galaxy Buds2 Pro", Description: "Hi-Fi sound wireless earbuds", Category: "accessory"},
	}
}

func TestFilter_SearchMatchesName(t *testing.T) {
	got := Filter(testCatalog(), "iphone", CategoryAll)

	require.Len(t, got, 1)
	require.Equal(t, "iphone-15-pro", got[0].ID)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	got := Filter(testCatalog(), "GALAXY", CategoryAll)

	require.Len(t, got, 2)
	require.Equal(t, "galaxy-s24-ultra", got[0].ID)
	require.Equal(t, "galaxy-buds2-pro", got[1].ID)
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	got := Filter(testCatalog(), "titanium", CategoryAll)

	require.Len(t, got, 1)
	require.Equal(t, "iphone-15-pro", got[0].ID)
}

func TestFilter_ByCategory(t *testing.T) {
	got := Filter(testCatalog(), "", "accessory")

	require.Len(t, got, 2)
	for _, p := range got {
		require.Equal(t, "accessory", p.Category)
	}
}

func TestFilter_AllCategoryDisablesCategoryFilter(t *testing.T) {
	got := Filter(testCatalog(), "", CategoryAll)

	require.Len(t, got, 4)
}

func TestFilter_SearchAndCategoryCombine(t *testing.T) {
	got := Filter(testCatalog(), "galaxy", "accessory")

	require.Len(t, got, 1)
	require.Equal(t, "galaxy-buds2-pro", got[0].ID)
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(testCatalog(), "nokia", CategoryAll)

	require.Empty(t, got)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(testCatalog(), "", "smartphone")

	require.Equal(t, "iphone-15-pro", got[0].ID)
	require.Equal(t, "galaxy-s24-ultra", got[1].ID)
}

func TestCategories_FirstSeenOrderWithAllSentinel(t *testing.T) {
	got := Categories(testCatalog())

	require.Equal(t, []string{"all", "smartphone", "accessory"}, got)
}

func TestCategories_EmptyCatalog(t *testing.T) {
	require.Equal(t, []string{"all"}, Categories(nil))
}

func TestCategories_DropsEmptyCategory(t *testing.T) {
	products := append(testCatalog(), Product{ID: "x", Name: "X"})

	got := Categories(products)

	require.Equal(t, []string{"all", "smartphone", "accessory"}, got)
}
