package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripsmith/internal/models/db_models"
	"tripsmith/pkg/utils"
)

func clusterFixture() []db_models.Activity {
	return []db_models.Activity{
		{Name: "Shibuya Crossing", Area: "Shibuya", Latitude: floatPtr(35.6595), Longitude: floatPtr(139.7004)},
		{Name: "Senso-ji Temple", Area: "Asakusa", Latitude: floatPtr(35.7148), Longitude: floatPtr(139.7967)},
		{Name: "Nakamise Shopping Street", Area: "Asakusa", Latitude: floatPtr(35.7115), Longitude: floatPtr(139.7966)},
	}
}

func TestClusterAssignsKnownZones(t *testing.T) {
	clusterer := NewGeographicClusterer()

	clusters := clusterer.Cluster(clusterFixture(), "tokyo", nil)
	require.Len(t, clusters, 2)

	// no hotel keeps first-seen order
	assert.Equal(t, "Shibuya", clusters[0].ZoneName)
	assert.Equal(t, "Asakusa", clusters[1].ZoneName)
	assert.Len(t, clusters[1].Items, 2)
}

func TestClusterOrdersZonesByHotelDistance(t *testing.T) {
	clusterer := NewGeographicClusterer()

	asakusaHotel := &utils.Coordinate{Lat: 35.7150, Lng: 139.7950}
	clusters := clusterer.Cluster(clusterFixture(), "tokyo", asakusaHotel)
	require.Len(t, clusters, 2)

	assert.Equal(t, "Asakusa", clusters[0].ZoneName)
	assert.Equal(t, "Shibuya", clusters[1].ZoneName)
}

func TestClusterMatchesByProximityToZoneCenter(t *testing.T) {
	clusterer := NewGeographicClusterer()

	// no keyword or station hit, but inside 2km of the Gion center
	unnamed := []db_models.Activity{
		{Name: "Teahouse", Latitude: floatPtr(35.0040), Longitude: floatPtr(135.7760)},
	}
	clusters := clusterer.Cluster(unnamed, "kyoto", nil)
	require.Len(t, clusters, 1)
	assert.Equal(t, "Gion", clusters[0].ZoneName)
}

func TestClusterFallsBackToAreaOrGeneric(t *testing.T) {
	clusterer := NewGeographicClusterer()

	activities := []db_models.Activity{
		{Name: "Hidden Garden", Area: "Suburbia"},
		{Name: "Mystery Spot"},
	}
	clusters := clusterer.Cluster(activities, "tokyo", nil)
	require.Len(t, clusters, 2)
	assert.Equal(t, "Suburbia", clusters[0].ZoneName)
	assert.Equal(t, "General", clusters[1].ZoneName)
}

func TestClusterUnknownCityHasNoZoneTable(t *testing.T) {
	clusterer := NewGeographicClusterer()

	activities := []db_models.Activity{{Name: "Somewhere", Area: "Downtown"}}
	clusters := clusterer.Cluster(activities, "springfield", nil)
	require.Len(t, clusters, 1)
	assert.Equal(t, "Downtown", clusters[0].ZoneName)
}
