package tables

// ICAO Doc 9303 romanization, used for Russian foreign passports since 2013
// and, by order of the Ministry of Internal Affairs N 995, for driver licenses
// since 2016. The soft sign is dropped, so the tables cannot be inverted.

var icaoRu = []Pair{
	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Д", "D"},
	{"Е", "E"}, {"Ё", "E"}, {"Ж", "Zh"}, {"З", "Z"}, {"И", "I"},
	{"Й", "I"}, {"К", "K"}, {"Л", "L"}, {"М", "M"}, {"Н", "N"},
	{"О", "O"}, {"П", "P"}, {"Р", "R"}, {"С", "S"}, {"Т", "T"},
	{"У", "U"}, {"Ф", "F"}, {"Х", "Kh"}, {"Ц", "Ts"}, {"Ч", "Ch"},
	{"Ш", "Sh"}, {"Щ", "Shch"}, {"Ъ", "Ie"}, {"Ы", "Y"}, {"Ь", ""},
	{"Э", "E"}, {"Ю", "Iu"}, {"Я", "Ia"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"},
	{"е", "e"}, {"ё", "e"}, {"ж", "zh"}, {"з", "z"}, {"и", "i"},
	{"й", "i"}, {"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"},
	{"о", "o"}, {"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"},
	{"у", "u"}, {"ф", "f"}, {"х", "kh"}, {"ц", "ts"}, {"ч", "ch"},
	{"ш", "sh"}, {"щ", "shch"}, {"ъ", "ie"}, {"ы", "y"}, {"ь", ""},
	{"э", "e"}, {"ю", "iu"}, {"я", "ia"},
}

// Passport2013Ru returns the table for Russian international passports (2013).
// It extends the ICAO table by the numero sign.
func Passport2013Ru() []Pair {
	return append(clone(icaoRu), Pair{"№", "#"})
}

// OrderN995Ru returns the table for Russian driver licenses.
func OrderN995Ru() []Pair { return clone(icaoRu) }
