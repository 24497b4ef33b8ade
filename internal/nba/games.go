package nba

// Games is the scheduled games table. Team names are free text; a game may
// reference a team that has no entry in Teams.
var Games = []Game{
	{Team1: "Boston Celtics", Team2: "New York Knicks", Date: "2025-01-10", Location: "Madison Square Garden, New York"},
	{Team1: "Los Angeles Lakers", Team2: "Golden State Warriors", Date: "2025-01-11", Location: "Chase Center, San Francisco"},
	{Team1: "Milwaukee Bucks", Team2: "Cleveland Cavaliers", Date: "2025-01-12", Location: "Rocket Arena, Cleveland"},
	{Team1: "Denver Nuggets", Team2: "Oklahoma City Thunder", Date: "2025-01-12", Location: "Paycom Center, Oklahoma City"},
	{Team1: "Miami Heat", Team2: "Boston Celtics", Date: "2025-01-14", Location: "TD Garden, Boston"},
	{Team1: "Phoenix Suns", Team2: "Los Angeles Lakers", Date: "2025-01-15", Location: "Crypto.com Arena, Los Angeles"},
	{Team1: "Golden State Warriors", Team2: "Denver Nuggets", Date: "2025-01-17", Location: "Ball Arena, Denver"},
	{Team1: "New York Knicks", Team2: "Miami Heat", Date: "2025-01-18", Location: "Kaseya Center, Miami"},
	{Team1: "Oklahoma City Thunder", Team2: "Memphis Grizzlies", Date: "2025-01-19", Location: "FedExForum, Memphis"},
	{Team1: "Cleveland Cavaliers", Team2: "Phoenix Suns", Date: "2025-01-20", Location: "Footprint Center, Phoenix"},
	{Team1: "Dallas Mavericks", Team2: "Utah Jazz", Date: "2025-01-21", Location: "Delta Center, Salt Lake City"},
	{Team1: "Boston Celtics", Team2: "Milwaukee Bucks", Date: "2025-01-22", Location: "Fiserv Forum, Milwaukee"},
}
