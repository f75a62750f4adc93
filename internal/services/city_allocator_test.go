package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateProportionalToAffinity(t *testing.T) {
	allocator := NewCityAllocator()

	allocations := allocator.Allocate([]string{"tokyo", "kyoto"}, 6, []string{"cultural", "history"})
	require.Len(t, allocations, 2)

	byCity := map[string]int{}
	total := 0
	for _, alloc := range allocations {
		byCity[alloc.City] = alloc.Days
		total += alloc.Days
	}

	assert.Equal(t, 6, total)
	// history/culture strongly favors kyoto over tokyo
	assert.Greater(t, byCity["kyoto"], byCity["tokyo"])
	assert.GreaterOrEqual(t, byCity["tokyo"], 1)
}

func TestAllocateSingleCityGetsAllDays(t *testing.T) {
	allocator := NewCityAllocator()

	allocations := allocator.Allocate([]string{"osaka"}, 4, []string{"food"})
	require.Len(t, allocations, 1)
	assert.Equal(t, 4, allocations[0].Days)
}

func TestAllocateConservesDays(t *testing.T) {
	allocator := NewCityAllocator()

	for days := 3; days <= 14; days++ {
		allocations := allocator.Allocate([]string{"tokyo", "kyoto", "osaka"}, days, []string{"food", "nature"})
		require.NotNil(t, allocations, "days=%d", days)

		total := 0
		for _, alloc := range allocations {
			assert.GreaterOrEqual(t, alloc.Days, 1)
			total += alloc.Days
		}
		assert.Equal(t, days, total, "days=%d", days)
	}
}

func TestAllocateRejectsTooFewDays(t *testing.T) {
	allocator := NewCityAllocator()

	assert.Nil(t, allocator.Allocate([]string{"tokyo", "kyoto"}, 1, nil))
	assert.Nil(t, allocator.Allocate(nil, 5, nil))
}

func TestAllocateUnknownCityUsesDefaultAffinity(t *testing.T) {
	allocator := NewCityAllocator()

	allocations := allocator.Allocate([]string{"tokyo", "atlantis"}, 4, []string{"shopping"})
	require.Len(t, allocations, 2)

	total := 0
	for _, alloc := range allocations {
		total += alloc.Days
	}
	assert.Equal(t, 4, total)
}
