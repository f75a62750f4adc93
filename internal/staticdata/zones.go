package staticdata

import (
	"strings"

	"tripsmith/pkg/utils"
)

// Zone is a named geographic cluster inside a city. An activity belongs
// to a zone when its text matches a keyword, its station matches, or it
// lies within ZoneMatchRadiusKm of the center.
type Zone struct {
	ID       string
	Name     string
	Keywords []string
	Stations []string
	Center   utils.Coordinate
}

const ZoneMatchRadiusKm = 2.0

var cityZones = map[string][]Zone{
	"tokyo": {
		{ID: "asakusa", Name: "Asakusa", Keywords: []string{"asakusa", "senso-ji", "nakamise", "skytree", "sumida"}, Stations: []string{"Asakusa", "Tawaramachi", "Oshiage"}, Center: utils.Coordinate{Lat: 35.7148, Lng: 139.7967}},
		{ID: "shibuya", Name: "Shibuya", Keywords: []string{"shibuya", "hachiko", "center gai"}, Stations: []string{"Shibuya"}, Center: utils.Coordinate{Lat: 35.6595, Lng: 139.7004}},
		{ID: "shinjuku", Name: "Shinjuku", Keywords: []string{"shinjuku", "kabukicho", "golden gai", "omoide"}, Stations: []string{"Shinjuku", "Seibu-Shinjuku"}, Center: utils.Coordinate{Lat: 35.6938, Lng: 139.7034}},
		{ID: "harajuku", Name: "Harajuku", Keywords: []string{"harajuku", "takeshita", "meiji", "omotesando", "yoyogi"}, Stations: []string{"Harajuku", "Meiji-jingumae", "Omotesando"}, Center: utils.Coordinate{Lat: 35.6702, Lng: 139.7029}},
		{ID: "akihabara", Name: "Akihabara", Keywords: []string{"akihabara", "electric town", "mandarake", "maid"}, Stations: []string{"Akihabara", "Suehirocho"}, Center: utils.Coordinate{Lat: 35.7022, Lng: 139.7745}},
		{ID: "ginza", Name: "Ginza", Keywords: []string{"ginza", "tsukiji", "kabuki-za"}, Stations: []string{"Ginza", "Higashi-ginza", "Tsukiji"}, Center: utils.Coordinate{Lat: 35.6717, Lng: 139.7647}},
		{ID: "ueno", Name: "Ueno", Keywords: []string{"ueno", "ameyoko"}, Stations: []string{"Ueno", "Okachimachi"}, Center: utils.Coordinate{Lat: 35.7148, Lng: 139.7744}},
		{ID: "odaiba", Name: "Odaiba", Keywords: []string{"odaiba", "teamlab", "gundam", "divercity"}, Stations: []string{"Daiba", "Tokyo Teleport"}, Center: utils.Coordinate{Lat: 35.6252, Lng: 139.7755}},
		{ID: "roppongi", Name: "Roppongi", Keywords: []string{"roppongi", "mori art"}, Stations: []string{"Roppongi"}, Center: utils.Coordinate{Lat: 35.6605, Lng: 139.7293}},
		{ID: "tokyo-station", Name: "Tokyo Station", Keywords: []string{"tokyo station", "imperial palace", "marunouchi", "ramen street"}, Stations: []string{"Tokyo", "Otemachi"}, Center: utils.Coordinate{Lat: 35.6812, Lng: 139.7671}},
		{ID: "ikebukuro", Name: "Ikebukuro", Keywords: []string{"ikebukuro", "sunshine city", "otome road"}, Stations: []string{"Ikebukuro"}, Center: utils.Coordinate{Lat: 35.7295, Lng: 139.7194}},
	},
	"kyoto": {
		{ID: "gion", Name: "Gion", Keywords: []string{"gion", "hanamikoji", "pontocho"}, Stations: []string{"Gion-Shijo", "Kawaramachi"}, Center: utils.Coordinate{Lat: 35.0036, Lng: 135.7778}},
		{ID: "higashiyama", Name: "Higashiyama", Keywords: []string{"higashiyama", "kiyomizu", "sannenzaka", "ninenzaka", "yasaka", "maruyama"}, Stations: []string{"Kiyomizu-Gojo", "Higashiyama"}, Center: utils.Coordinate{Lat: 34.9966, Lng: 135.7828}},
		{ID: "arashiyama", Name: "Arashiyama", Keywords: []string{"arashiyama", "bamboo", "tenryu-ji", "togetsukyo", "sagano", "monkey park"}, Stations: []string{"Saga-Arashiyama", "Arashiyama"}, Center: utils.Coordinate{Lat: 35.0094, Lng: 135.6728}},
		{ID: "fushimi", Name: "Fushimi", Keywords: []string{"fushimi", "inari", "sake district"}, Stations: []string{"Inari", "Fushimi-Inari"}, Center: utils.Coordinate{Lat: 34.9671, Lng: 135.7727}},
		{ID: "kita", Name: "Kita", Keywords: []string{"kinkaku-ji", "golden pavilion", "ryoan-ji"}, Stations: []string{"Kitaoji"}, Center: utils.Coordinate{Lat: 35.0394, Lng: 135.7292}},
		{ID: "sakyo", Name: "Sakyo", Keywords: []string{"philosopher", "ginkaku-ji", "silver pavilion", "nanzen-ji"}, Stations: []string{"Keage", "Demachiyanagi"}, Center: utils.Coordinate{Lat: 35.0262, Lng: 135.7949}},
		{ID: "nakagyo", Name: "Nakagyo", Keywords: []string{"nishiki", "nijo", "manga museum"}, Stations: []string{"Karasuma", "Nijojo-mae"}, Center: utils.Coordinate{Lat: 35.0106, Lng: 135.7588}},
		{ID: "kyoto-station", Name: "Kyoto Station", Keywords: []string{"kyoto station", "kyoto tower", "to-ji"}, Stations: []string{"Kyoto"}, Center: utils.Coordinate{Lat: 34.9858, Lng: 135.7588}},
	},
	"osaka": {
		{ID: "namba", Name: "Namba", Keywords: []string{"namba", "dotonbori", "kuromon", "hozenji"}, Stations: []string{"Namba", "Nippombashi"}, Center: utils.Coordinate{Lat: 34.6659, Lng: 135.5006}},
		{ID: "shinsaibashi", Name: "Shinsaibashi", Keywords: []string{"shinsaibashi", "amerikamura"}, Stations: []string{"Shinsaibashi"}, Center: utils.Coordinate{Lat: 34.6724, Lng: 135.5010}},
		{ID: "umeda", Name: "Umeda", Keywords: []string{"umeda", "sky building", "grand front", "hep five"}, Stations: []string{"Umeda", "Osaka"}, Center: utils.Coordinate{Lat: 34.7024, Lng: 135.4959}},
		{ID: "castle", Name: "Osaka Castle Area", Keywords: []string{"osaka castle"}, Stations: []string{"Osakajokoen", "Tanimachi 4-chome"}, Center: utils.Coordinate{Lat: 34.6873, Lng: 135.5262}},
		{ID: "tennoji", Name: "Tennoji", Keywords: []string{"tennoji", "shinsekai", "tsutenkaku", "abeno", "spa world"}, Stations: []string{"Tennoji", "Dobutsuen-mae"}, Center: utils.Coordinate{Lat: 34.6525, Lng: 135.5063}},
		{ID: "bay", Name: "Osaka Bay", Keywords: []string{"kaiyukan", "aquarium", "tempozan"}, Stations: []string{"Osakako"}, Center: utils.Coordinate{Lat: 34.6546, Lng: 135.4289}},
	},
}

// ZonesForCity returns the known zones of a city; nil when unknown.
func ZonesForCity(city string) []Zone {
	return cityZones[strings.ToLower(city)]
}
