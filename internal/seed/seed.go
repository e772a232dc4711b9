// Package seed provides the built-in sample catalog.
package seed

import "github.com/melisa48/entertainment-agent/internal/model"

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

// Items returns the sample items in insertion order.
func Items() []model.Item {
	return []model.Item{
		model.NewMovie("m1", "The Shawshank Redemption", []string{"Drama"}, 1994, 9.3,
			"Frank Darabont", []string{"Tim Robbins", "Morgan Freeman"}, 142),
		model.NewMovie("m2", "The Godfather", []string{"Crime", "Drama"}, 1972, 9.2,
			"Francis Ford Coppola", []string{"Marlon Brando", "Al Pacino"}, 175),
		model.NewMovie("m3", "Inception", []string{"Action", "Sci-Fi"}, 2010, 8.8,
			"Christopher Nolan", []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"}, 148),
		model.NewMovie("m4", "Parasite", []string{"Drama", "Thriller"}, 2019, 8.6,
			"Bong Joon Ho", []string{"Song Kang-ho", "Lee Sun-kyun"}, 132),
		model.NewMovie("m5", "Avengers: Endgame", []string{"Action", "Adventure", "Sci-Fi"}, 2019, 8.4,
			"Anthony Russo, Joe Russo", []string{"Robert Downey Jr.", "Chris Evans"}, 181),

		model.NewMusic("mu1", "Bohemian Rhapsody", []string{"Rock"}, 1975, 9.5,
			"Queen", str("A Night at the Opera"), num(354)),
		model.NewMusic("mu2", "Thriller", []string{"Pop", "R&B"}, 1982, 9.4,
			"Michael Jackson", str("Thriller"), num(293)),
		model.NewMusic("mu3", "Back in Black", []string{"Rock", "Hard Rock"}, 1980, 9.0,
			"AC/DC", str("Back in Black"), num(255)),
		model.NewMusic("mu4", "After Hours", []string{"R&B", "Pop"}, 2020, 8.7,
			"The Weeknd", str("After Hours"), num(214)),
		model.NewMusic("mu5", "folklore", []string{"Alternative", "Pop"}, 2020, 8.9,
			"Taylor Swift", str("folklore"), num(246)),

		model.NewBook("b1", "To Kill a Mockingbird", []string{"Fiction", "Classic"}, 1960, 9.2,
			"Harper Lee", 281, "J. B. Lippincott & Co."),
		model.NewBook("b2", "1984", []string{"Dystopian", "Science Fiction"}, 1949, 9.1,
			"George Orwell", 328, "Secker & Warburg"),
		model.NewBook("b3", "The Lord of the Rings", []string{"Fantasy", "Adventure"}, 1954, 9.3,
			"J.R.R. Tolkien", 1178, "Allen & Unwin"),
		model.NewBook("b4", "The Hunger Games", []string{"Dystopian", "Science Fiction", "Young Adult"}, 2008, 8.6,
			"Suzanne Collins", 374, "Scholastic"),
		model.NewBook("b5", "Educated", []string{"Memoir", "Biography"}, 2018, 8.9,
			"Tara Westover", 334, "Random House"),

		model.NewGame("g1", "The Legend of Zelda: Breath of the Wild", []string{"Action", "Adventure"}, 2017, 9.5,
			"Nintendo", []string{"Nintendo Switch", "Wii U"}, false),
		model.NewGame("g2", "The Witcher 3: Wild Hunt", []string{"Action", "RPG"}, 2015, 9.4,
			"CD Projekt Red", []string{"PC", "PlayStation 4", "Xbox One", "Nintendo Switch"}, false),
		model.NewGame("g3", "Fortnite", []string{"Battle Royale", "Survival"}, 2017, 8.8,
			"Epic Games", []string{"PC", "PlayStation", "Xbox", "Nintendo Switch", "Mobile"}, true),
		model.NewGame("g4", "Red Dead Redemption 2", []string{"Action", "Adventure"}, 2018, 9.7,
			"Rockstar Games", []string{"PlayStation 4", "Xbox One", "PC"}, true),
		model.NewGame("g5", "Minecraft", []string{"Sandbox", "Survival"}, 2011, 9.3,
			"Mojang", []string{"PC", "Console", "Mobile"}, true),
	}
}

// Catalog returns a new catalog populated with the sample items.
func Catalog() *model.Catalog {
	c := model.NewCatalog()
	for _, it := range Items() {
		// Sample items always carry a payload.
		_ = c.Add(it)
	}
	return c
}
