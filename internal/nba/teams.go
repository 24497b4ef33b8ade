package nba

// Teams is the franchise table. IDs are unique; names are unique ignoring
// case. The table spans both conferences even though only the Eastern
// standings table participates in the team standing join.
var Teams = []Team{
	{
		ID:   1,
		Name: "Boston Celtics",
		Roster: []Player{
			{Name: "Jayson Tatum", Position: "F", Height: "6-8", Weight: "210", LastAttended: "Duke", Country: "USA"},
			{Name: "Jaylen Brown", Position: "G-F", Height: "6-6", Weight: "223", LastAttended: "California", Country: "USA"},
			{Name: "Derrick White", Position: "G", Height: "6-4", Weight: "190", LastAttended: "Colorado", Country: "USA"},
			{Name: "Jrue Holiday", Position: "G", Height: "6-4", Weight: "205", LastAttended: "UCLA", Country: "USA"},
			{Name: "Kristaps Porzingis", Position: "C", Height: "7-2", Weight: "240", LastAttended: "Sevilla", Country: "Latvia"},
			{Name: "Al Horford", Position: "C-F", Height: "6-9", Weight: "240", LastAttended: "Florida", Country: "Dominican Republic"},
		},
	},
	{
		ID:   2,
		Name: "New York Knicks",
		Roster: []Player{
			{Name: "Jalen Brunson", Position: "G", Height: "6-2", Weight: "190", LastAttended: "Villanova", Country: "USA"},
			{Name: "Karl-Anthony Towns", Position: "C", Height: "7-0", Weight: "248", LastAttended: "Kentucky", Country: "Dominican Republic"},
			{Name: "Mikal Bridges", Position: "F", Height: "6-6", Weight: "209", LastAttended: "Villanova", Country: "USA"},
			{Name: "OG Anunoby", Position: "F", Height: "6-7", Weight: "240", LastAttended: "Indiana", Country: "United Kingdom"},
			{Name: "Josh Hart", Position: "G", Height: "6-4", Weight: "215", LastAttended: "Villanova", Country: "USA"},
			{Name: "Mitchell Robinson", Position: "C", Height: "7-0", Weight: "240", LastAttended: "Western Kentucky", Country: "USA"},
		},
	},
	{
		ID:   3,
		Name: "Milwaukee Bucks",
		Roster: []Player{
			{Name: "Giannis Antetokounmpo", Position: "F", Height: "6-11", Weight: "243", LastAttended: "Filathlitikos", Country: "Greece"},
			{Name: "Damian Lillard", Position: "G", Height: "6-2", Weight: "195", LastAttended: "Weber State", Country: "USA"},
			{Name: "Khris Middleton", Position: "F", Height: "6-7", Weight: "222", LastAttended: "Texas A&M", Country: "USA"},
			{Name: "Brook Lopez", Position: "C", Height: "7-1", Weight: "282", LastAttended: "Stanford", Country: "USA"},
			{Name: "Bobby Portis", Position: "F", Height: "6-10", Weight: "250", LastAttended: "Arkansas", Country: "USA"},
			{Name: "Gary Trent Jr.", Position: "G", Height: "6-5", Weight: "209", LastAttended: "Duke", Country: "USA"},
		},
	},
	{
		ID:   4,
		Name: "Cleveland Cavaliers",
		Roster: []Player{
			{Name: "Donovan Mitchell", Position: "G", Height: "6-3", Weight: "215", LastAttended: "Louisville", Country: "USA"},
			{Name: "Darius Garland", Position: "G", Height: "6-1", Weight: "192", LastAttended: "Vanderbilt", Country: "USA"},
			{Name: "Evan Mobley", Position: "F", Height: "6-11", Weight: "215", LastAttended: "USC", Country: "USA"},
			{Name: "Jarrett Allen", Position: "C", Height: "6-9", Weight: "243", LastAttended: "Texas", Country: "USA"},
			{Name: "Max Strus", Position: "G-F", Height: "6-5", Weight: "215", LastAttended: "DePaul", Country: "USA"},
			{Name: "Caris LeVert", Position: "G", Height: "6-6", Weight: "205", LastAttended: "Michigan", Country: "USA"},
		},
	},
	{
		ID:   5,
		Name: "Miami Heat",
		Roster: []Player{
			{Name: "Jimmy Butler", Position: "F", Height: "6-7", Weight: "230", LastAttended: "Marquette", Country: "USA"},
			{Name: "Bam Adebayo", Position: "C", Height: "6-9", Weight: "255", LastAttended: "Kentucky", Country: "USA"},
			{Name: "Tyler Herro", Position: "G", Height: "6-5", Weight: "195", LastAttended: "Kentucky", Country: "USA"},
			{Name: "Terry Rozier", Position: "G", Height: "6-1", Weight: "190", LastAttended: "Louisville", Country: "USA"},
			{Name: "Duncan Robinson", Position: "F", Height: "6-7", Weight: "215", LastAttended: "Michigan", Country: "USA"},
			{Name: "Nikola Jovic", Position: "F", Height: "6-10", Weight: "205", LastAttended: "Mega Basket", Country: "Serbia"},
		},
	},
	{
		ID:   6,
		Name: "Los Angeles Lakers",
		Roster: []Player{
			{Name: "LeBron James", Position: "F", Height: "6-9", Weight: "250", LastAttended: "St. Vincent-St. Mary HS (OH)", Country: "USA"},
			{Name: "Anthony Davis", Position: "F-C", Height: "6-10", Weight: "253", LastAttended: "Kentucky", Country: "USA"},
			{Name: "Austin Reaves", Position: "G", Height: "6-5", Weight: "197", LastAttended: "Oklahoma", Country: "USA"},
			{Name: "D'Angelo Russell", Position: "G", Height: "6-4", Weight: "193", LastAttended: "Ohio State", Country: "USA"},
			{Name: "Rui Hachimura", Position: "F", Height: "6-8", Weight: "230", LastAttended: "Gonzaga", Country: "Japan"},
			{Name: "Jarred Vanderbilt", Position: "F", Height: "6-8", Weight: "214", LastAttended: "Kentucky", Country: "USA"},
		},
	},
	{
		ID:   7,
		Name: "Golden State Warriors",
		Roster: []Player{
			{Name: "Stephen Curry", Position: "G", Height: "6-2", Weight: "185", LastAttended: "Davidson", Country: "USA"},
			{Name: "Draymond Green", Position: "F", Height: "6-6", Weight: "230", LastAttended: "Michigan State", Country: "USA"},
			{Name: "Andrew Wiggins", Position: "F", Height: "6-7", Weight: "197", LastAttended: "Kansas", Country: "Canada"},
			{Name: "Jonathan Kuminga", Position: "F", Height: "6-8", Weight: "225", LastAttended: "G League Ignite", Country: "DR Congo"},
			{Name: "Brandin Podziemski", Position: "G", Height: "6-4", Weight: "205", LastAttended: "Santa Clara", Country: "USA"},
			{Name: "Kevon Looney", Position: "C", Height: "6-9", Weight: "222", LastAttended: "UCLA", Country: "USA"},
		},
	},
	{
		ID:   8,
		Name: "Denver Nuggets",
		Roster: []Player{
			{Name: "Nikola Jokic", Position: "C", Height: "6-11", Weight: "284", LastAttended: "Mega Basket", Country: "Serbia"},
			{Name: "Jamal Murray", Position: "G", Height: "6-4", Weight: "215", LastAttended: "Kentucky", Country: "Canada"},
			{Name: "Michael Porter Jr.", Position: "F", Height: "6-10", Weight: "218", LastAttended: "Missouri", Country: "USA"},
			{Name: "Aaron Gordon", Position: "F", Height: "6-8", Weight: "235", LastAttended: "Arizona", Country: "USA"},
			{Name: "Russell Westbrook", Position: "G", Height: "6-3", Weight: "200", LastAttended: "UCLA", Country: "USA"},
			{Name: "Peyton Watson", Position: "F", Height: "6-8", Weight: "200", LastAttended: "UCLA", Country: "USA"},
		},
	},
	{
		ID:   9,
		Name: "Oklahoma City Thunder",
		Roster: []Player{
			{Name: "Shai Gilgeous-Alexander", Position: "G", Height: "6-6", Weight: "195", LastAttended: "Kentucky", Country: "Canada"},
			{Name: "Chet Holmgren", Position: "C", Height: "7-1", Weight: "208", LastAttended: "Gonzaga", Country: "USA"},
			{Name: "Jalen Williams", Position: "F", Height: "6-5", Weight: "211", LastAttended: "Santa Clara", Country: "USA"},
			{Name: "Luguentz Dort", Position: "G", Height: "6-4", Weight: "220", LastAttended: "Arizona State", Country: "Canada"},
			{Name: "Isaiah Hartenstein", Position: "C", Height: "7-0", Weight: "250", LastAttended: "Zalgiris Kaunas", Country: "Germany"},
			{Name: "Alex Caruso", Position: "G", Height: "6-4", Weight: "186", LastAttended: "Texas A&M", Country: "USA"},
		},
	},
	{
		ID:   10,
		Name: "Phoenix Suns",
		Roster: []Player{
			{Name: "Kevin Durant", Position: "F", Height: "6-10", Weight: "240", LastAttended: "Texas", Country: "USA"},
			{Name: "Devin Booker", Position: "G", Height: "6-5", Weight: "206", LastAttended: "Kentucky", Country: "USA"},
			{Name: "Bradley Beal", Position: "G", Height: "6-4", Weight: "207", LastAttended: "Florida", Country: "USA"},
			{Name: "Jusuf Nurkic", Position: "C", Height: "7-0", Weight: "290", LastAttended: "Cedevita", Country: "Bosnia and Herzegovina"},
			{Name: "Grayson Allen", Position: "G", Height: "6-4", Weight: "198", LastAttended: "Duke", Country: "USA"},
			{Name: "Royce O'Neale", Position: "F", Height: "6-4", Weight: "226", LastAttended: "Baylor", Country: "USA"},
		},
	},
}
