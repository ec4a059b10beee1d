package tables

// GOST 7.79 System B (modified ISO 9:1995), ASCII only.
//
// Letters with an ASCII digraph are listed before the letters sharing a prefix
// with them: for targets of equal length, declaration order is substitution order.
// This lets "y`" (ы) win over "``" (ъ) for an input like "y``", and
// converting "`" back yields ь rather than Ь.

var gost779bRu = []Pair{
	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Д", "D"},
	{"Е", "E"}, {"Ё", "Yo"}, {"Ж", "Zh"}, {"З", "Z"}, {"И", "I"},
	{"Й", "J"}, {"К", "K"}, {"Л", "L"}, {"М", "M"}, {"Н", "N"},
	{"О", "O"}, {"П", "P"}, {"Р", "R"}, {"С", "S"}, {"Т", "T"},
	{"У", "U"}, {"Ф", "F"}, {"Х", "X"}, {"Ц", "C"}, {"Ч", "Ch"},
	{"Ш", "Sh"}, {"Щ", "Shh"}, {"Ы", "Y`"}, {"Э", "E`"}, {"Ю", "Yu"},
	{"Я", "Ya"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"},
	{"е", "e"}, {"ё", "yo"}, {"ж", "zh"}, {"з", "z"}, {"и", "i"},
	{"й", "j"}, {"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"},
	{"о", "o"}, {"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"},
	{"у", "u"}, {"ф", "f"}, {"х", "x"}, {"ц", "c"}, {"ч", "ch"},
	{"ш", "sh"}, {"щ", "shh"}, {"ы", "y`"}, {"ъ", "``"}, {"ь", "`"},
	{"э", "e`"}, {"ю", "yu"}, {"я", "ya"},
	{"№", "#"},
	{"Ъ", "``"}, {"Ь", "`"}, // share tokens with ъ and ь, which take precedence
}

var gost779bBy = []Pair{
	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "H"}, {"Д", "D"},
	{"Е", "E"}, {"Ё", "Yo"}, {"Ж", "Zh"}, {"З", "Z"}, {"І", "I"},
	{"Й", "J"}, {"К", "K"}, {"Л", "L"}, {"М", "M"}, {"Н", "N"},
	{"О", "O"}, {"П", "P"}, {"Р", "R"}, {"С", "S"}, {"Т", "T"},
	{"У", "U"}, {"Ў", "U`"}, {"Ф", "F"}, {"Х", "X"}, {"Ц", "C"},
	{"Ч", "Ch"}, {"Ш", "Sh"}, {"Ы", "Y`"}, {"Э", "E`"}, {"Ю", "Yu"},
	{"Я", "Ya"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "h"}, {"д", "d"},
	{"е", "e"}, {"ё", "yo"}, {"ж", "zh"}, {"з", "z"}, {"і", "i"},
	{"й", "j"}, {"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"},
	{"о", "o"}, {"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"},
	{"у", "u"}, {"ў", "u`"}, {"ф", "f"}, {"х", "x"}, {"ц", "c"},
	{"ч", "ch"}, {"ш", "sh"}, {"ы", "y`"}, {"ь", "`"}, {"э", "e`"},
	{"ю", "yu"}, {"я", "ya"},
	{"№", "#"},
	{"Ь", "`"},
}

var gost779bUa = []Pair{
	{"А", "A"}, {"Б", "B"}, {"В", "V"}, {"Г", "G"}, {"Ґ", "G`"},
	{"Д", "D"}, {"Е", "E"}, {"Є", "Ye"}, {"Ж", "Zh"}, {"З", "Z"},
	{"И", "Y`"}, {"І", "I"}, {"Ї", "Yi"}, {"Й", "J"}, {"К", "K"},
	{"Л", "L"}, {"М", "M"}, {"Н", "N"}, {"О", "O"}, {"П", "P"},
	{"Р", "R"}, {"С", "S"}, {"Т", "T"}, {"У", "U"}, {"Ф", "F"},
	{"Х", "X"}, {"Ц", "C"}, {"Ч", "Ch"}, {"Ш", "Sh"}, {"Щ", "Shh"},
	{"Ю", "Yu"}, {"Я", "Ya"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"ґ", "g`"},
	{"д", "d"}, {"е", "e"}, {"є", "ye"}, {"ж", "zh"}, {"з", "z"},
	{"и", "y`"}, {"і", "i"}, {"ї", "yi"}, {"й", "j"}, {"к", "k"},
	{"л", "l"}, {"м", "m"}, {"н", "n"}, {"о", "o"}, {"п", "p"},
	{"р", "r"}, {"с", "s"}, {"т", "t"}, {"у", "u"}, {"ф", "f"},
	{"х", "x"}, {"ц", "c"}, {"ч", "ch"}, {"ш", "sh"}, {"щ", "shh"},
	{"ь", "`"}, {"ю", "yu"}, {"я", "ya"},
	{"№", "#"},
	{"Ь", "`"},
}

// Gost779BRu returns the GOST 7.79 System B table for Russian.
func Gost779BRu() []Pair { return clone(gost779bRu) }

// Gost779BBy returns the GOST 7.79 System B table for Belarusian.
func Gost779BBy() []Pair { return clone(gost779bBy) }

// Gost779BUa returns the GOST 7.79 System B table for Ukrainian.
func Gost779BUa() []Pair { return clone(gost779bUa) }
