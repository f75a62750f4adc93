package services

import (
	"sort"
	"strings"

	"tripsmith/internal/models/db_models"
	"tripsmith/internal/staticdata"
	"tripsmith/pkg/utils"
)

// ActivityCluster groups a day's activities into one geographic zone.
type ActivityCluster struct {
	ZoneName string
	Center   *utils.Coordinate
	Items    []db_models.Activity
}

const fallbackZoneName = "General"

type GeographicClustererInterface interface {
	Cluster(activities []db_models.Activity, city string, hotel *utils.Coordinate) []ActivityCluster
}

type GeographicClusterer struct{}

func NewGeographicClusterer() GeographicClustererInterface {
	return &GeographicClusterer{}
}

// Cluster assigns each activity to a known zone of the city, falling
// back to the activity's declared area. Zones come back ordered by
// distance from the hotel; with no hotel, first-seen order is kept.
func (c *GeographicClusterer) Cluster(activities []db_models.Activity, city string, hotel *utils.Coordinate) []ActivityCluster {
	zones := staticdata.ZonesForCity(city)

	var order []string
	byName := make(map[string]*ActivityCluster)

	for _, activity := range activities {
		name, center := resolveZone(activity, zones)
		cluster, ok := byName[name]
		if !ok {
			cluster = &ActivityCluster{ZoneName: name, Center: center}
			byName[name] = cluster
			order = append(order, name)
		}
		cluster.Items = append(cluster.Items, activity)
	}

	clusters := make([]ActivityCluster, 0, len(order))
	for _, name := range order {
		clusters = append(clusters, *byName[name])
	}

	if hotel != nil {
		sort.SliceStable(clusters, func(i, j int) bool {
			return clusterDistance(clusters[i], *hotel) < clusterDistance(clusters[j], *hotel)
		})
	}
	return clusters
}

func resolveZone(activity db_models.Activity, zones []staticdata.Zone) (string, *utils.Coordinate) {
	text := strings.ToLower(activity.Name + " " + activity.Area)
	coord, hasCoord := activity.Coordinates()

	for _, zone := range zones {
		for _, keyword := range zone.Keywords {
			if strings.Contains(text, keyword) {
				center := zone.Center
				return zone.Name, &center
			}
		}
		for _, station := range zone.Stations {
			if activity.Station != "" && strings.EqualFold(activity.Station, station) {
				center := zone.Center
				return zone.Name, &center
			}
		}
		if hasCoord && utils.DistanceKm(coord, zone.Center) <= staticdata.ZoneMatchRadiusKm {
			center := zone.Center
			return zone.Name, &center
		}
	}

	if activity.Area != "" {
		if hasCoord {
			return activity.Area, &coord
		}
		return activity.Area, nil
	}
	return fallbackZoneName, nil
}

// clusterDistance is the hotel distance to the zone center, or to the
// first located activity when the zone has no fixed center.
func clusterDistance(cluster ActivityCluster, hotel utils.Coordinate) float64 {
	if cluster.Center != nil {
		return utils.DistanceKm(hotel, *cluster.Center)
	}
	for _, activity := range cluster.Items {
		if coord, ok := activity.Coordinates(); ok {
			return utils.DistanceKm(hotel, coord)
		}
	}
	return 1e9
}
