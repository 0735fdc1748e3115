package game

// narrateOnlyVerbs is the open-ended flavor vocabulary: commands with no
// mechanical effect that are forwarded to the narrator. Grouped loosely by
// theme; the groupings have no runtime meaning.
var narrateOnlyVerbs = []string{
	// Generic flavor actions
	"dance", "sing", "ponder", "scream", "laugh", "cry", "wave", "sleep",
	"jump", "listen", "smell",

	// Classic text adventure commands
	"xyzzy", "plugh", "frobozz", "zork", "diagnose", "hello", "sailor", "sesame",

	// 80s pop culture
	"flux", "ghostbusters", "macgyver", "grayskull", "thriller", "pacman",
	"radical", "gnarly", "bodacious",

	// Hippies
	"peace", "love", "groovy", "incense", "tie-dye", "meditate", "protest",
	"commune", "tune-in", "drop-out",

	// Punks
	"pogo", "rebel", "safety-pin", "mohawk", "thrash", "sneer", "spit",
	"anarchy", "diy", "slam",

	// Disco dancers
	"boogie", "hustle", "strut", "funk", "groove", "spin", "pose", "shimmer",
	"platform", "leisure",

	// Yuppies
	"network", "power-lunch", "suspenders", "briefcase", "merger", "acquire",
	"cellphone", "uptown", "schmooze",

	// New wavers
	"synthesizer", "angular", "quirky", "keytar", "skinny-tie", "gel",
	"ironic", "devo", "bleep",

	// Metalheads
	"headbang", "shred", "riff", "metal", "leather", "denim", "horns",
	"moshing", "solo", "amp",

	// Grunge fans
	"flannel", "angst", "slouch", "feedback", "seattle", "mumble",
	"unplugged", "thrift", "overcast", "brood",

	// Riot grrrls
	"zine", "feminist", "shout", "marker", "manifesto", "empower",
	"underground", "kathleen", "bikini-kill", "fierce",

	// Dot-com entrepreneurs
	"ipo", "bubble", "burn-rate", "ping-pong", "stock-options", "disrupt",
	"synergy", "vaporware", "clickthrough", "iterate",

	// Skaters
	"ollie", "kickflip", "grind", "shove-it", "vert", "ramp", "deck",
	"trucks", "bail",

	// Ravers
	"glowstick", "trance", "techno", "plur", "warehouse", "sunrise",
	"hydrate", "kandi", "shuffle", "bass",

	// Hip hop heads
	"beatbox", "breakdance", "graffiti", "sample", "cypher", "freestyle",
	"turntable", "mic", "flow", "rhyme",

	// Emo kids
	"myspace", "sideswept", "tight-jeans", "heartache", "confessional",
	"acoustic", "journal", "eyeliner", "sensitive", "rawr",

	// Hipsters
	"irony", "fixed-gear", "vinyl", "artisan", "mustache", "obscure",
	"craft-beer", "fedora", "curated", "portland",

	// Silicon Valley techies
	"agile", "scrum", "standup", "unicorn", "ping", "server", "code",
	"deploy", "optimize",

	// Preppers
	"bunker", "stockpile", "shtf", "survival", "canned-goods", "generator",
	"off-grid", "barter", "bug-out", "cache",

	// Foodies
	"gourmet", "farm-to-table", "fusion", "umami", "deconstructed",
	"food-truck", "gastropub", "blog", "forage", "organic",

	// Gamers
	"level-up", "pwn", "noob", "respawn", "lag", "cheat-code", "easter-egg",
	"console", "joystick",

	// Environmentalists
	"recycle", "conserve", "earth", "solar", "wind-power", "sustainable",
	"activism", "green", "carbon-footprint", "native",

	// Cosplayers
	"costume", "convention", "wig", "craft-foam", "worbla", "anime", "manga",
	"panel", "autograph", "transform",

	// Modern slang
	"rizz", "gyat", "skibidi", "fanumtax", "sigma", "ohio", "delulu", "bet",
	"cap", "nocap", "sus", "bussin", "slay", "periodt", "giving", "ick",
	"simp", "yeet", "pog", "based", "mid", "glowup", "cook", "aura", "mog",
	"mewing", "brainrot", "goated", "touchgrass", "ate", "fr", "ngl", "tbh",
	"iykyk", "stan", "shook", "basic", "bougie", "cringe", "extra", "vibe",
	"yass", "zesty",

	// Musical lovers
	"encore", "intermission", "ovation", "spotlight", "chorus", "ballad",
	"showstopper", "matinee", "belt", "jazzhands",

	// Common verbs with no mechanical effect
	"walk", "run", "move", "step", "crawl", "climb", "push", "pull", "touch",
	"open", "close", "read", "write", "eat", "drink", "throw", "wait", "help",
	"sit", "stand",
}
