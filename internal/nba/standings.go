package nba

// StandingsEastern is the Eastern Conference table. This is the only table
// consulted by the team standing join.
var StandingsEastern = []Standing{
	{Team: "Cleveland Cavaliers", W: 64, L: 18, PCT: 0.780, GB: "-", L10: "7-3", Strk: "W2"},
	{Team: "Boston Celtics", W: 61, L: 21, PCT: 0.744, GB: "3.0", L10: "8-2", Strk: "W5"},
	{Team: "New York Knicks", W: 51, L: 31, PCT: 0.622, GB: "13.0", L10: "6-4", Strk: "L1"},
	{Team: "Indiana Pacers", W: 50, L: 32, PCT: 0.610, GB: "14.0", L10: "7-3", Strk: "W3"},
	{Team: "Milwaukee Bucks", W: 48, L: 34, PCT: 0.585, GB: "16.0", L10: "5-5", Strk: "W1"},
	{Team: "Detroit Pistons", W: 44, L: 38, PCT: 0.537, GB: "20.0", L10: "6-4", Strk: "L2"},
	{Team: "Orlando Magic", W: 41, L: 41, PCT: 0.500, GB: "23.0", L10: "4-6", Strk: "W1"},
	{Team: "Atlanta Hawks", W: 40, L: 42, PCT: 0.488, GB: "24.0", L10: "5-5", Strk: "L1"},
	{Team: "Chicago Bulls", W: 39, L: 43, PCT: 0.476, GB: "25.0", L10: "6-4", Strk: "W2"},
	{Team: "Miami Heat", W: 37, L: 45, PCT: 0.451, GB: "27.0", L10: "3-7", Strk: "L3"},
	{Team: "Toronto Raptors", W: 30, L: 52, PCT: 0.366, GB: "34.0", L10: "4-6", Strk: "W1"},
	{Team: "Brooklyn Nets", W: 26, L: 56, PCT: 0.317, GB: "38.0", L10: "3-7", Strk: "L2"},
	{Team: "Philadelphia 76ers", W: 24, L: 58, PCT: 0.293, GB: "40.0", L10: "2-8", Strk: "L4"},
	{Team: "Charlotte Hornets", W: 19, L: 63, PCT: 0.232, GB: "45.0", L10: "3-7", Strk: "W1"},
	{Team: "Washington Wizards", W: 18, L: 64, PCT: 0.220, GB: "46.0", L10: "1-9", Strk: "L6"},
}

// StandingsWestern is the Western Conference table. Exposed as its own
// endpoint but deliberately not part of the team standing join.
var StandingsWestern = []Standing{
	{Team: "Oklahoma City Thunder", W: 68, L: 14, PCT: 0.829, GB: "-", L10: "9-1", Strk: "W7"},
	{Team: "Houston Rockets", W: 52, L: 30, PCT: 0.634, GB: "16.0", L10: "7-3", Strk: "W2"},
	{Team: "Los Angeles Lakers", W: 50, L: 32, PCT: 0.610, GB: "18.0", L10: "6-4", Strk: "L1"},
	{Team: "Denver Nuggets", W: 50, L: 32, PCT: 0.610, GB: "18.0", L10: "5-5", Strk: "W1"},
	{Team: "Los Angeles Clippers", W: 50, L: 32, PCT: 0.610, GB: "18.0", L10: "8-2", Strk: "W4"},
	{Team: "Minnesota Timberwolves", W: 49, L: 33, PCT: 0.598, GB: "19.0", L10: "7-3", Strk: "W3"},
	{Team: "Golden State Warriors", W: 48, L: 34, PCT: 0.585, GB: "20.0", L10: "6-4", Strk: "L2"},
	{Team: "Memphis Grizzlies", W: 48, L: 34, PCT: 0.585, GB: "20.0", L10: "4-6", Strk: "L3"},
	{Team: "Sacramento Kings", W: 40, L: 42, PCT: 0.488, GB: "28.0", L10: "5-5", Strk: "W1"},
	{Team: "Dallas Mavericks", W: 39, L: 43, PCT: 0.476, GB: "29.0", L10: "4-6", Strk: "L1"},
	{Team: "Phoenix Suns", W: 36, L: 46, PCT: 0.439, GB: "32.0", L10: "3-7", Strk: "L2"},
	{Team: "Portland Trail Blazers", W: 36, L: 46, PCT: 0.439, GB: "32.0", L10: "6-4", Strk: "W2"},
	{Team: "San Antonio Spurs", W: 34, L: 48, PCT: 0.415, GB: "34.0", L10: "4-6", Strk: "L1"},
	{Team: "New Orleans Pelicans", W: 21, L: 61, PCT: 0.256, GB: "47.0", L10: "2-8", Strk: "L5"},
	{Team: "Utah Jazz", W: 17, L: 65, PCT: 0.207, GB: "51.0", L10: "1-9", Strk: "L8"},
}
