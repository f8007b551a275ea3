package catalog

import (
	"testing"

	"driveline/cmd/internal/domain/entity"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore() *Store {
	return New([]entity.VehicleDetail{
		{Vehicle: entity.Vehicle{ID: 1, Name: "Alpha EV", Price: "50,000", Type: "Electric", Year: "2024"}},
		{Vehicle: entity.Vehicle{ID: 2, Name: "Beta Coupe", Price: "50,001", Type: "Sports", Year: "2023"}},
		{Vehicle: entity.Vehicle{ID: 3, Name: "Gamma Sedan", Price: "100,000", Type: "Luxury", Year: "2024"}},
		{Vehicle: entity.Vehicle{ID: 4, Name: "Delta GT", Price: "100,001", Type: "Sports", Year: "2024"}},
	})
}

func ids(cars []entity.Vehicle) []int {
	out := make([]int, len(cars))
	for i, car := range cars {
		out[i] = car.ID
	}
	return out
}

func TestGetByIDUnknown(t *testing.T) {
	s := Default()

	assert.Nil(t, s.GetByID(0))
	assert.Nil(t, s.GetByID(99))
	assert.Nil(t, s.GetByID(-1))
}

func TestGetByIDMatchesCatalogEntry(t *testing.T) {
	s := Default()

	for _, car := range s.List() {
		detail := s.GetByID(car.ID)
		require.NotNil(t, detail, "catalog entry %d has no detail record", car.ID)
		assert.Empty(t, cmp.Diff(car, detail.Vehicle))
	}
}

func TestListStableOrder(t *testing.T) {
	s := Default()

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.List()))
	assert.Equal(t, ids(s.List()), ids(s.List()))
}

func TestFeaturedIsFirstThree(t *testing.T) {
	s := Default()

	assert.Equal(t, ids(s.List())[:3], ids(s.Featured()))
}

func TestFilterNoQueryReturnsEverything(t *testing.T) {
	s := testStore()

	got := s.Filter(Query{})
	assert.Empty(t, cmp.Diff(s.List(), got))
}

func TestFilterPlaceholdersAreInactive(t *testing.T) {
	s := testStore()

	got := s.Filter(Query{Type: "All Types", Price: "Price Range", Year: "Year"})
	assert.Empty(t, cmp.Diff(s.List(), got))
}

func TestFilterPriceBracketBoundaries(t *testing.T) {
	s := testStore()

	// Exactly 50,000 is low, not mid; exactly 100,000 is mid, not high.
	assert.Equal(t, []int{1}, ids(s.Filter(Query{Price: PriceLow})))
	assert.Equal(t, []int{2, 3}, ids(s.Filter(Query{Price: PriceMid})))
	assert.Equal(t, []int{4}, ids(s.Filter(Query{Price: PriceHigh})))
}

func TestFilterMidBracketOnInventory(t *testing.T) {
	s := Default()

	got := s.Filter(Query{Price: PriceMid})
	prices := make([]string, len(got))
	for i, car := range got {
		prices[i] = car.Price
	}
	assert.Equal(t, []string{"73,490", "52,800", "77,535"}, prices)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	s := Default()

	assert.Equal(t, []int{1}, ids(s.Filter(Query{Search: "tesla"})))
	assert.Equal(t, []int{1}, ids(s.Filter(Query{Search: "TESLA"})))

	// Search also matches the vehicle type.
	assert.Equal(t, []int{1, 5}, ids(s.Filter(Query{Search: "electric"})))
}

func TestFilterFacetsCombineWithAnd(t *testing.T) {
	s := Default()

	got := s.Filter(Query{Type: "Luxury", Year: "2024"})
	assert.Equal(t, []int{2}, ids(got))

	got = s.Filter(Query{Search: "luxury", Price: PriceMid, Year: "2023"})
	assert.Equal(t, []int{6}, ids(got))
}

func TestFilterEmptyResultIsNotNil(t *testing.T) {
	s := Default()

	got := s.Filter(Query{Search: "bugatti"})
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestFilterResultIsSubsetOfList(t *testing.T) {
	s := Default()

	all := make(map[int]entity.Vehicle)
	for _, car := range s.List() {
		all[car.ID] = car
	}

	queries := []Query{
		{},
		{Search: "e"},
		{Type: "Sports"},
		{Price: PriceHigh},
		{Year: "2020"},
		{Search: "a", Type: "Luxury", Price: PriceMid, Year: "2023"},
	}
	for _, q := range queries {
		for _, car := range s.Filter(q) {
			want, ok := all[car.ID]
			require.True(t, ok, "filter returned id %d not present in List()", car.ID)
			assert.Empty(t, cmp.Diff(want, car))
		}
	}
}

func TestFilterUnparseablePriceMatchesNoBracket(t *testing.T) {
	s := New([]entity.VehicleDetail{
		{Vehicle: entity.Vehicle{ID: 1, Name: "Mystery", Price: "call us", Type: "Luxury", Year: "2024"}},
	})

	assert.Len(t, s.Filter(Query{Price: PriceLow}), 0)
	assert.Len(t, s.Filter(Query{Price: PriceMid}), 0)
	assert.Len(t, s.Filter(Query{Price: PriceHigh}), 0)
	assert.Len(t, s.Filter(Query{}), 1)
}
