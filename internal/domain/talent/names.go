package talent

// Name and nationality pools for generated players. Names are combined
// first+last; the generator guarantees uniqueness within one batch by
// suffixing on collision.

var firstNames = []string{
	"Marcus", "Jalen", "Darius", "Tyrese", "Andre", "Kofi", "Luka", "Mateo",
	"Nikola", "Goran", "Dario", "Emeka", "Trey", "Malik", "Devin", "Cameron",
	"Isaiah", "Jordan", "Kendall", "Rashad", "Tobias", "Zion", "Amari",
	"Bryce", "Cole", "Dante", "Elias", "Franco", "Giannis", "Hugo",
}

var lastNames = []string{
	"Washington", "Carter", "Okafor", "Petrovic", "Jokanovic", "Silva",
	"Ramirez", "Thompson", "Jackson", "Williams", "Brooks", "Diallo",
	"Nurkic", "Vukovic", "Hernandez", "Okonkwo", "Mitchell", "Barnes",
	"Reed", "Fontaine", "Kovac", "Adebayo", "Santos", "Laurent", "Novak",
	"Griffin", "Holloway", "Mensah", "Ortiz", "Vesely",
}

var nationalities = []string{
	"USA", "Canada", "Serbia", "Croatia", "Slovenia", "Spain", "France",
	"Germany", "Nigeria", "Senegal", "Brazil", "Argentina", "Australia",
	"Greece", "Lithuania",
}
