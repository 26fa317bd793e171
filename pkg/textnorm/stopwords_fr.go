package textnorm

// frenchStopWords backs up the library list with the short function words
// and elided forms that French tokenization produces.
var frenchStopWords = map[string]bool{
	"au": true, "aux": true, "avec": true, "ce": true, "ces": true, "dans": true,
	"de": true, "des": true, "du": true, "elle": true, "en": true, "et": true,
	"eux": true, "il": true, "ils": true, "je": true, "la": true, "le": true,
	"les": true, "leur": true, "lui": true, "ma": true, "mais": true, "me": true,
	"même": true, "mes": true, "moi": true, "mon": true, "ne": true, "nos": true,
	"notre": true, "nous": true, "on": true, "ou": true, "par": true, "pas": true,
	"pour": true, "qu": true, "que": true, "qui": true, "sa": true, "se": true,
	"ses": true, "son": true, "sur": true, "ta": true, "te": true, "tes": true,
	"toi": true, "ton": true, "tu": true, "un": true, "une": true, "vos": true,
	"votre": true, "vous": true,

	// elided forms: c', d', j', l', m', n', s', t', y
	"c": true, "d": true, "j": true, "l": true, "à": true, "m": true,
	"n": true, "s": true, "t": true, "y": true,

	// être
	"été": true, "étée": true, "étées": true, "étés": true, "étant": true,
	"suis": true, "es": true, "est": true, "sommes": true, "êtes": true,
	"sont": true, "serai": true, "seras": true, "sera": true, "serons": true,
	"serez": true, "seront": true, "serais": true, "serait": true,
	"serions": true, "seriez": true, "seraient": true, "étais": true,
	"était": true, "étions": true, "étiez": true, "étaient": true,
	"fus": true, "fut": true, "fûmes": true, "fûtes": true, "furent": true,
	"sois": true, "soit": true, "soyons": true, "soyez": true, "soient": true,

	// avoir
	"ayant": true, "eu": true, "eue": true, "eues": true, "eus": true,
	"ai": true, "as": true, "avons": true, "avez": true, "ont": true,
	"aurai": true, "auras": true, "aura": true, "aurons": true, "aurez": true,
	"auront": true, "aurais": true, "aurait": true, "aurions": true,
	"auriez": true, "auraient": true, "avais": true, "avait": true,
	"avions": true, "aviez": true, "avaient": true, "eut": true,
	"aie": true, "aies": true, "ait": true, "ayons": true, "ayez": true,
	"aient": true,
}
