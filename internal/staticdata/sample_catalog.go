package staticdata

import (
	"github.com/google/uuid"

	"tripsmith/internal/models/db_models"
)

// SampleActivities returns the built-in catalog used when no database is
// configured. Ratings and costs mirror the public reference data the
// project ships with; ids are deterministic per process start.
func SampleActivities() []db_models.Activity {
	entries := []sampleEntry{
		// Tokyo
		{"Senso-ji Temple", "tokyo", "cultural", "Asakusa", 35.7148, 139.7967, 90, 0, 4.8, 95, db_models.CrowdVeryHigh, db_models.TimeMorning, []string{"cultural", "history"}, []string{"group_friendly"}},
		{"Nakamise Shopping Street", "tokyo", "shopping", "Asakusa", 35.7115, 139.7966, 60, 2000, 4.2, 85, db_models.CrowdHigh, db_models.TimeAny, []string{"shopping", "food"}, nil},
		{"Tokyo Skytree", "tokyo", "attraction", "Asakusa", 35.7101, 139.8107, 120, 2100, 4.4, 85, db_models.CrowdHigh, db_models.TimeEvening, []string{"sightseeing"}, []string{"group_friendly"}},
		{"Sumida River Cruise", "tokyo", "attraction", "Asakusa", 35.7104, 139.8010, 60, 1000, 4.1, 70, db_models.CrowdMedium, db_models.TimeAfternoon, []string{"relax", "sightseeing"}, nil},
		{"Shibuya Crossing", "tokyo", "attraction", "Shibuya", 35.6595, 139.7004, 30, 0, 4.5, 90, db_models.CrowdVeryHigh, db_models.TimeEvening, []string{"urban", "photography"}, nil},
		{"Shibuya Sky Observatory", "tokyo", "attraction", "Shibuya", 35.6580, 139.7016, 90, 2000, 4.6, 80, db_models.CrowdHigh, db_models.TimeEvening, []string{"sightseeing"}, nil},
		{"Shibuya Center Gai", "tokyo", "nightlife", "Shibuya", 35.6616, 139.6991, 90, 3000, 4.0, 70, db_models.CrowdHigh, db_models.TimeNight, []string{"nightlife", "food"}, []string{"adults_only"}},
		{"Shinjuku Gyoen National Garden", "tokyo", "nature", "Shinjuku", 35.6852, 139.7100, 120, 500, 4.7, 85, db_models.CrowdMedium, db_models.TimeMorning, []string{"nature", "relax", "photography"}, []string{"group_friendly"}},
		{"Tokyo Metropolitan Building Observatory", "tokyo", "attraction", "Shinjuku", 35.6896, 139.6917, 60, 0, 4.3, 80, db_models.CrowdMedium, db_models.TimeEvening, []string{"sightseeing"}, nil},
		{"Shinjuku Golden Gai", "tokyo", "nightlife", "Shinjuku", 35.6938, 139.7053, 120, 4000, 4.2, 70, db_models.CrowdHigh, db_models.TimeNight, []string{"nightlife", "culture"}, []string{"adults_only"}},
		{"Omoide Yokocho", "tokyo", "food", "Shinjuku", 35.6925, 139.7006, 90, 2500, 4.3, 75, db_models.CrowdHigh, db_models.TimeEvening, []string{"food", "culture"}, nil},
		{"Meiji Shrine", "tokyo", "cultural", "Harajuku", 35.6764, 139.6993, 90, 0, 4.7, 90, db_models.CrowdHigh, db_models.TimeMorning, []string{"cultural", "nature"}, []string{"group_friendly"}},
		{"Takeshita Street", "tokyo", "shopping", "Harajuku", 35.6702, 139.7027, 90, 3000, 4.0, 85, db_models.CrowdVeryHigh, db_models.TimeAfternoon, []string{"shopping", "fashion", "food"}, nil},
		{"Yoyogi Park", "tokyo", "nature", "Harajuku", 35.6719, 139.6961, 90, 0, 4.3, 70, db_models.CrowdLow, db_models.TimeAny, []string{"nature", "relax"}, []string{"group_friendly"}},
		{"Akihabara Electric Town", "tokyo", "shopping", "Akihabara", 35.7022, 139.7745, 120, 5000, 4.3, 85, db_models.CrowdHigh, db_models.TimeAfternoon, []string{"anime", "shopping", "technology"}, nil},
		{"Ueno Park", "tokyo", "nature", "Ueno", 35.7151, 139.7738, 90, 0, 4.4, 80, db_models.CrowdMedium, db_models.TimeMorning, []string{"nature", "relax"}, []string{"group_friendly"}},
		{"Tokyo National Museum", "tokyo", "museum", "Ueno", 35.7188, 139.7764, 120, 1000, 4.6, 75, db_models.CrowdMedium, db_models.TimeAny, []string{"history", "art"}, []string{"group_friendly"}},
		{"Ameyoko Shopping Street", "tokyo", "shopping", "Ueno", 35.7082, 139.7753, 90, 2500, 4.1, 75, db_models.CrowdHigh, db_models.TimeAny, []string{"shopping", "food", "market"}, nil},
		{"teamLab Borderless", "tokyo", "museum", "Odaiba", 35.6248, 139.7753, 150, 3200, 4.8, 90, db_models.CrowdVeryHigh, db_models.TimeEvening, []string{"art", "technology"}, []string{"group_friendly"}},
		{"Oedo Onsen Monogatari", "tokyo", "onsen", "Odaiba", 35.6193, 139.7839, 180, 2900, 4.2, 75, db_models.CrowdMedium, db_models.TimeEvening, []string{"relax", "culture"}, nil},
		{"Tsukiji Outer Market", "tokyo", "food", "Ginza", 35.6654, 139.7707, 120, 3000, 4.6, 90, db_models.CrowdVeryHigh, db_models.TimeMorning, []string{"food", "market"}, nil},
		{"Ginza Shopping District", "tokyo", "shopping", "Ginza", 35.6717, 139.7640, 120, 8000, 4.3, 80, db_models.CrowdHigh, db_models.TimeAfternoon, []string{"shopping", "fashion"}, nil},
		{"Imperial Palace East Gardens", "tokyo", "nature", "Tokyo Station", 35.6852, 139.7547, 90, 0, 4.4, 75, db_models.CrowdLow, db_models.TimeMorning, []string{"nature", "history"}, []string{"group_friendly"}},
		{"Mori Art Museum", "tokyo", "museum", "Roppongi", 35.6605, 139.7293, 120, 1800, 4.5, 75, db_models.CrowdMedium, db_models.TimeAny, []string{"art"}, nil},
		{"Tokyo Tower", "tokyo", "attraction", "Minato", 35.6586, 139.7454, 90, 1200, 4.3, 80, db_models.CrowdHigh, db_models.TimeEvening, []string{"sightseeing"}, []string{"group_friendly"}},

		// Kyoto
		{"Fushimi Inari Shrine", "kyoto", "cultural", "Fushimi", 34.9671, 135.7727, 120, 0, 4.9, 95, db_models.CrowdVeryHigh, db_models.TimeMorning, []string{"cultural", "nature", "photography"}, []string{"group_friendly"}},
		{"Kiyomizu-dera", "kyoto", "cultural", "Higashiyama", 34.9949, 135.7850, 120, 400, 4.7, 90, db_models.CrowdHigh, db_models.TimeMorning, []string{"cultural", "history"}, []string{"group_friendly"}},
		{"Sannenzaka & Ninenzaka", "kyoto", "shopping", "Higashiyama", 34.9965, 135.7803, 90, 2000, 4.4, 85, db_models.CrowdHigh, db_models.TimeAfternoon, []string{"shopping", "cultural", "photography"}, nil},
		{"Gion District", "kyoto", "cultural", "Gion", 35.0036, 135.7751, 90, 0, 4.6, 85, db_models.CrowdHigh, db_models.TimeEvening, []string{"cultural", "history", "photography"}, nil},
		{"Pontocho Alley", "kyoto", "food", "Gion", 35.0041, 135.7706, 120, 5000, 4.4, 75, db_models.CrowdMedium, db_models.TimeEvening, []string{"food", "culture", "nightlife"}, nil},
		{"Arashiyama Bamboo Grove", "kyoto", "nature", "Arashiyama", 35.0170, 135.6717, 60, 0, 4.7, 90, db_models.CrowdVeryHigh, db_models.TimeMorning, []string{"nature", "photography"}, []string{"group_friendly"}},
		{"Tenryu-ji Temple", "kyoto", "cultural", "Arashiyama", 35.0157, 135.6742, 90, 500, 4.5, 80, db_models.CrowdMedium, db_models.TimeMorning, []string{"cultural", "nature"}, nil},
		{"Monkey Park Iwatayama", "kyoto", "hiking", "Arashiyama", 35.0126, 135.6764, 90, 550, 4.2, 70, db_models.CrowdMedium, db_models.TimeAfternoon, []string{"nature"}, []string{"group_friendly"}},
		{"Kinkaku-ji (Golden Pavilion)", "kyoto", "cultural", "Kita", 35.0394, 135.7292, 90, 400, 4.8, 95, db_models.CrowdVeryHigh, db_models.TimeMorning, []string{"cultural", "photography"}, []string{"group_friendly"}},
		{"Philosopher's Path", "kyoto", "nature", "Sakyo", 35.0262, 135.7949, 90, 0, 4.5, 80, db_models.CrowdLow, db_models.TimeMorning, []string{"nature", "relax", "photography"}, []string{"group_friendly"}},
		{"Ginkaku-ji (Silver Pavilion)", "kyoto", "cultural", "Sakyo", 35.0269, 135.7983, 90, 500, 4.6, 85, db_models.CrowdMedium, db_models.TimeAfternoon, []string{"cultural", "nature"}, nil},
		{"Nishiki Market", "kyoto", "food", "Nakagyo", 35.0051, 135.7638, 90, 2000, 4.5, 85, db_models.CrowdHigh, db_models.TimeMorning, []string{"food", "shopping", "market"}, nil},
		{"Nijo Castle", "kyoto", "cultural", "Nakagyo", 35.0142, 135.7481, 120, 600, 4.5, 85, db_models.CrowdMedium, db_models.TimeAny, []string{"history", "cultural"}, []string{"group_friendly"}},

		// Osaka
		{"Dotonbori", "osaka", "attraction", "Namba", 34.6686, 135.5004, 120, 3000, 4.6, 95, db_models.CrowdVeryHigh, db_models.TimeEvening, []string{"food", "nightlife", "photography"}, nil},
		{"Kuromon Market", "osaka", "food", "Namba", 34.6659, 135.5064, 90, 2500, 4.4, 85, db_models.CrowdHigh, db_models.TimeMorning, []string{"food", "market"}, nil},
		{"Shinsaibashi Shopping Street", "osaka", "shopping", "Shinsaibashi", 34.6724, 135.5010, 120, 5000, 4.2, 85, db_models.CrowdHigh, db_models.TimeAfternoon, []string{"shopping"}, nil},
		{"Umeda Sky Building", "osaka", "attraction", "Umeda", 34.7053, 135.4903, 90, 1500, 4.4, 80, db_models.CrowdMedium, db_models.TimeEvening, []string{"sightseeing"}, nil},
		{"Osaka Castle", "osaka", "cultural", "Chuo", 34.6873, 135.5262, 120, 600, 4.5, 90, db_models.CrowdHigh, db_models.TimeMorning, []string{"history", "cultural"}, []string{"group_friendly"}},
		{"Shinsekai", "osaka", "attraction", "Tennoji", 34.6525, 135.5063, 90, 2000, 4.2, 75, db_models.CrowdMedium, db_models.TimeEvening, []string{"food", "culture"}, nil},
		{"Osaka Aquarium Kaiyukan", "osaka", "attraction", "Minato", 34.6546, 135.4289, 150, 2400, 4.6, 85, db_models.CrowdHigh, db_models.TimeAny, []string{"nature"}, []string{"group_friendly"}},
		{"Spa World", "osaka", "onsen", "Nishinari", 34.6479, 135.5056, 180, 1500, 4.1, 65, db_models.CrowdMedium, db_models.TimeEvening, []string{"relax"}, nil},
	}

	activities := make([]db_models.Activity, 0, len(entries))
	for _, e := range entries {
		activities = append(activities, e.toActivity())
	}
	return activities
}

// mealTypedVenues marks catalog entries that double as a meal; the
// planner skips inserting that meal when one of these is scheduled.
var mealTypedVenues = map[string]string{
	"Tsukiji Outer Market": "breakfast",
	"Kuromon Market":       "breakfast",
	"Nishiki Market":       "lunch",
	"Omoide Yokocho":       "dinner",
	"Pontocho Alley":       "dinner",
	"Dotonbori":            "dinner",
}

type sampleEntry struct {
	name       string
	city       string
	category   string
	area       string
	lat, lng   float64
	duration   int
	cost       float64
	quality    float64
	popularity int
	crowd      string
	preferred  string
	interests  []string
	tags       []string
}

func (e sampleEntry) toActivity() db_models.Activity {
	lat, lng := e.lat, e.lng
	a := db_models.Activity{
		Name:            e.name,
		City:            e.city,
		Category:        e.category,
		Area:            e.area,
		Latitude:        &lat,
		Longitude:       &lng,
		DurationMinutes: e.duration,
		Cost:            e.cost,
		QualityRating:   e.quality,
		Popularity:      e.popularity,
		CrowdLevel:      e.crowd,
		PreferredTime:   e.preferred,
		MealType:        mealTypedVenues[e.name],
		Interests:       e.interests,
		Tags:            e.tags,
		// Street food and nightlife aside, most venues here keep
		// daytime hours; leave opening hours open-ended and mark
		// everything wheelchair accessible except hiking spots.
		WheelchairAccessible: e.category != "hiking",
	}
	a.ID = uuid.New()
	return a
}
