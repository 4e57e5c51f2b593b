package bible

// Testament values for BookMeta.
const (
	OldTestament = "Old"
	NewTestament = "New"
)

// BookMeta describes one canonical book. Chapters is the full canonical
// chapter count; the count actually available in a loaded translation may be
// smaller and is reported per dataset.
type BookMeta struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Chapters     int    `json:"chapters"`
	Testament    string `json:"testament"`
}

// Books is the canonical 66-book table, in canonical order.
var Books = []BookMeta{
	{"Genesis", "Gen", 50, OldTestament},
	{"Exodus", "Exo", 40, OldTestament},
	{"Leviticus", "Lev", 27, OldTestament},
	{"Numbers", "Num", 36, OldTestament},
	{"Deuteronomy", "Deu", 34, OldTestament},
	{"Joshua", "Jos", 24, OldTestament},
	{"Judges", "Jdg", 21, OldTestament},
	{"Ruth", "Rut", 4, OldTestament},
	{"1 Samuel", "1Sa", 31, OldTestament},
	{"2 Samuel", "2Sa", 24, OldTestament},
	{"1 Kings", "1Ki", 22, OldTestament},
	{"2 Kings", "2Ki", 25, OldTestament},
	{"1 Chronicles", "1Ch", 29, OldTestament},
	{"2 Chronicles", "2Ch", 36, OldTestament},
	{"Ezra", "Ezr", 10, OldTestament},
	{"Nehemiah", "Neh", 13, OldTestament},
	{"Esther", "Est", 10, OldTestament},
	{"Job", "Job", 42, OldTestament},
	{"Psalm", "Psa", 150, OldTestament},
	{"Proverbs", "Pro", 31, OldTestament},
	{"Ecclesiastes", "Ecc", 12, OldTestament},
	{"Song of Songs", "SoS", 8, OldTestament},
	{"Isaiah", "Isa", 66, OldTestament},
	{"Jeremiah", "Jer", 52, OldTestament},
	{"Lamentations", "Lam", 5, OldTestament},
	{"Ezekiel", "Eze", 48, OldTestament},
	{"Daniel", "Dan", 12, OldTestament},
	{"Hosea", "Hos", 14, OldTestament},
	{"Joel", "Joe", 3, OldTestament},
	{"Amos", "Amo", 9, OldTestament},
	{"Obadiah", "Oba", 1, OldTestament},
	{"Jonah", "Jon", 4, OldTestament},
	{"Micah", "Mic", 7, OldTestament},
	{"Nahum", "Nah", 3, OldTestament},
	{"Habakkuk", "Hab", 3, OldTestament},
	{"Zephaniah", "Zep", 3, OldTestament},
	{"Haggai", "Hag", 2, OldTestament},
	{"Zechariah", "Zec", 14, OldTestament},
	{"Malachi", "Mal", 4, OldTestament},
	{"Matthew", "Mat", 28, NewTestament},
	{"Mark", "Mar", 16, NewTestament},
	{"Luke", "Luk", 24, NewTestament},
	{"John", "Joh", 21, NewTestament},
	{"Acts", "Act", 28, NewTestament},
	{"Romans", "Rom", 16, NewTestament},
	{"1 Corinthians", "1Co", 16, NewTestament},
	{"2 Corinthians", "2Co", 13, NewTestament},
	{"Galatians", "Gal", 6, NewTestament},
	{"Ephesians", "Eph", 6, NewTestament},
	{"Philippians", "Phi", 4, NewTestament},
	{"Colossians", "Col", 4, NewTestament},
	{"1 Thessalonians", "1Th", 5, NewTestament},
	{"2 Thessalonians", "2Th", 3, NewTestament},
	{"1 Timothy", "1Ti", 6, NewTestament},
	{"2 Timothy", "2Ti", 4, NewTestament},
	{"Titus", "Tit", 3, NewTestament},
	{"Philemon", "Phm", 1, NewTestament},
	{"Hebrews", "Heb", 13, NewTestament},
	{"James", "Jam", 5, NewTestament},
	{"1 Peter", "1Pe", 5, NewTestament},
	{"2 Peter", "2Pe", 3, NewTestament},
	{"1 John", "1Jo", 5, NewTestament},
	{"2 John", "2Jo", 1, NewTestament},
	{"3 John", "3Jo", 1, NewTestament},
	{"Jude", "Jud", 1, NewTestament},
	{"Revelation", "Rev", 22, NewTestament},
}

// bookOrder maps book name to its canonical position.
var bookOrder = func() map[string]int {
	m := make(map[string]int, len(Books))
	for i, b := range Books {
		m[b.Name] = i
	}
	return m
}()

// BookByName looks up the canonical metadata for a book name.
func BookByName(name string) (BookMeta, bool) {
	i, ok := bookOrder[name]
	if !ok {
		return BookMeta{}, false
	}
	return Books[i], true
}
