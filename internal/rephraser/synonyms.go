package rephraser

// synonyms maps a lowercase base word to its interchangeable replacements.
// Every candidate starts with a lowercase letter; capitalization is applied
// per token.
var synonyms = map[string][]string{
	"important":   {"significant", "crucial", "vital", "essential", "critical"},
	"big":         {"large", "huge", "enormous", "massive", "substantial"},
	"small":       {"tiny", "little", "miniature", "compact", "minor"},
	"good":        {"excellent", "outstanding", "superior", "remarkable", "exceptional"},
	"bad":         {"poor", "inferior", "inadequate", "deficient", "unsatisfactory"},
	"show":        {"demonstrate", "illustrate", "reveal", "display", "exhibit"},
	"help":        {"assist", "support", "aid", "facilitate", "enable"},
	"make":        {"create", "produce", "generate", "construct", "develop"},
	"think":       {"believe", "consider", "suppose", "assume", "conclude"},
	"many":        {"numerous", "several", "various", "multiple", "countless"},
	"different":   {"various", "diverse", "distinct", "alternative", "separate"},
	"use":         {"utilize", "employ", "apply", "implement", "adopt"},
	"people":      {"individuals", "persons", "citizens", "population", "society"},
	"way":         {"method", "approach", "technique", "manner", "strategy"},
	"new":         {"novel", "recent", "modern", "contemporary", "fresh"},
	"old":         {"ancient", "traditional", "historical", "vintage", "established"},
	"first":       {"initial", "primary", "earliest", "foremost", "beginning"},
	"last":        {"final", "ultimate", "concluding", "ending", "terminal"},
	"also":        {"additionally", "furthermore", "moreover", "likewise", "similarly"},
	"however":     {"nevertheless", "nonetheless", "yet", "although", "whereas"},
	"because":     {"since", "due to", "owing to", "as a result of", "given that"},
	"very":        {"extremely", "highly", "considerably", "significantly", "remarkably"},
	"study":       {"research", "investigation", "analysis", "examination", "inquiry"},
	"result":      {"outcome", "consequence", "finding", "conclusion", "effect"},
	"problem":     {"issue", "challenge", "difficulty", "concern", "obstacle"},
	"solution":    {"resolution", "answer", "remedy", "approach", "fix"},
	"increase":    {"enhance", "boost", "elevate", "amplify", "expand"},
	"decrease":    {"reduce", "diminish", "lower", "minimize", "decline"},
	"said":        {"stated", "declared", "mentioned", "expressed", "indicated"},
	"went":        {"traveled", "moved", "proceeded", "journeyed", "advanced"},
	"came":        {"arrived", "appeared", "emerged", "approached", "reached"},
	"see":         {"observe", "notice", "witness", "perceive", "view"},
	"get":         {"obtain", "acquire", "receive", "gain", "secure"},
	"give":        {"provide", "offer", "supply", "deliver", "present"},
	"know":        {"understand", "realize", "recognize", "comprehend", "grasp"},
	"take":        {"seize", "grab", "capture", "obtain", "acquire"},
	"find":        {"discover", "locate", "identify", "uncover", "detect"},
	"work":        {"function", "operate", "perform", "labor", "effort"},
	"time":        {"period", "duration", "moment", "era", "epoch"},
	"year":        {"period", "span", "duration", "cycle", "season"},
	"day":         {"period", "time", "date", "occasion", "moment"},
	"life":        {"existence", "being", "living", "vitality", "experience"},
	"world":       {"globe", "earth", "planet", "universe", "society"},
	"place":       {"location", "position", "spot", "site", "area"},
	"home":        {"residence", "dwelling", "house", "abode", "habitat"},
	"school":      {"institution", "academy", "college", "university", "establishment"},
	"book":        {"volume", "text", "publication", "manuscript", "work"},
	"car":         {"vehicle", "automobile", "auto", "transport", "conveyance"},
	"family":      {"relatives", "household", "clan", "kin", "lineage"},
	"friend":      {"companion", "associate", "ally", "colleague", "partner"},
	"water":       {"liquid", "fluid", "moisture", "aqua", "hydration"},
	"food":        {"nourishment", "sustenance", "nutrition", "provisions", "cuisine"},
	"money":       {"currency", "funds", "cash", "capital", "finance"},
	"love":        {"affection", "devotion", "adoration", "fondness", "care"},
	"hate":        {"despise", "loathe", "detest", "abhor", "dislike"},
	"like":        {"enjoy", "appreciate", "favor", "prefer", "admire"},
	"want":        {"desire", "wish", "crave", "seek", "require"},
	"need":        {"require", "demand", "necessitate", "lack", "want"},
	"hope":        {"wish", "desire", "expect", "anticipate", "trust"},
	"fear":        {"dread", "worry", "anxiety", "concern", "apprehension"},
	"happy":       {"joyful", "cheerful", "content", "pleased", "delighted"},
	"sad":         {"sorrowful", "melancholy", "depressed", "unhappy", "mournful"},
	"angry":       {"furious", "irate", "enraged", "livid", "incensed"},
	"surprised":   {"astonished", "amazed", "shocked", "startled", "stunned"},
	"beautiful":   {"gorgeous", "stunning", "attractive", "lovely", "elegant"},
	"ugly":        {"hideous", "unsightly", "repulsive", "unattractive", "grotesque"},
	"strong":      {"powerful", "robust", "sturdy", "mighty", "forceful"},
	"weak":        {"feeble", "frail", "fragile", "delicate", "vulnerable"},
	"fast":        {"quick", "rapid", "swift", "speedy", "hasty"},
	"slow":        {"sluggish", "gradual", "leisurely", "delayed", "unhurried"},
	"high":        {"tall", "elevated", "lofty", "towering", "soaring"},
	"low":         {"short", "reduced", "minimal", "diminished", "inferior"},
	"long":        {"lengthy", "extended", "prolonged", "extensive", "enduring"},
	"short":       {"brief", "concise", "compact", "abbreviated", "limited"},
	"easy":        {"simple", "effortless", "straightforward", "uncomplicated", "basic"},
	"hard":        {"difficult", "challenging", "tough", "demanding", "complex"},
	"right":       {"correct", "accurate", "proper", "appropriate", "suitable"},
	"wrong":       {"incorrect", "mistaken", "erroneous", "false", "improper"},
	"true":        {"accurate", "correct", "factual", "genuine", "authentic"},
	"example":     {"instance", "illustration", "sample", "case", "specimen"},
	"simple":      {"basic", "elementary", "straightforward", "uncomplicated", "plain"},
	"text":        {"content", "material", "writing", "document", "passage"},
	"changed":     {"altered", "modified", "transformed", "adjusted", "revised"},
	"married":     {"wed", "united", "joined", "coupled", "bonded"},
	"second":      {"subsequent", "following", "next", "additional", "another"},
	"husband":     {"spouse", "partner", "mate", "companion", "consort"},
	"young":       {"youthful", "juvenile", "adolescent", "immature", "tender"},
	"moved":       {"relocated", "transferred", "shifted", "migrated", "traveled"},
	"village":     {"town", "community", "settlement", "hamlet", "locality"},
	"raise":       {"rear", "bring up", "nurture", "educate", "cultivate"},
	"son":         {"child", "offspring", "heir", "descendant", "progeny"},
	"daughter":    {"child", "offspring", "girl", "descendant", "progeny"},
	"years":       {"periods", "decades", "ages", "eras", "spans"},
	"death":       {"demise", "passing", "end", "expiration", "departure"},
	"mother":      {"parent", "matriarch", "maternal figure", "mom", "caregiver"},
	"father":      {"parent", "patriarch", "paternal figure", "dad", "sire"},
	"examined":    {"analyzed", "studied", "investigated", "reviewed", "inspected"},
	"state":       {"condition", "situation", "status", "circumstances", "position"},
	"soul":        {"spirit", "essence", "being", "consciousness", "psyche"},
	"compiled":    {"assembled", "collected", "gathered", "organized", "prepared"},
	"catalog":     {"list", "inventory", "register", "index", "collection"},
	"sins":        {"wrongdoings", "transgressions", "offenses", "misdeeds", "violations"},
	"remembered":  {"recalled", "recollected", "reminisced", "thought of", "brought to mind"},
	"threatening": {"menacing", "intimidating", "warning", "endangering", "frightening"},
	"house":       {"home", "residence", "dwelling", "abode", "building"},
	"acute":       {"severe", "intense", "sharp", "extreme", "critical"},
	"sense":       {"feeling", "perception", "awareness", "understanding", "consciousness"},
	"insecurity":  {"uncertainty", "anxiety", "doubt", "vulnerability", "instability"},
	"rendered":    {"made", "caused", "created", "produced", "generated"},
	"obsessively": {"compulsively", "fixatedly", "intensely", "persistently", "excessively"},
	"anxious":     {"worried", "concerned", "nervous", "troubled", "uneasy"},
	"published":   {"released", "issued", "printed", "distributed", "circulated"},
	"irrational":  {"unreasonable", "illogical", "senseless", "absurd", "groundless"},
	"violent":     {"aggressive", "brutal", "fierce", "destructive", "harsh"},
	"defended":    {"protected", "safeguarded", "supported", "upheld", "maintained"},
	"accompanied": {"went with", "followed", "escorted", "joined", "attended"},
	"throughout":  {"during", "across", "over", "through", "all through"},
	"traced":      {"tracked", "followed", "pursued", "identified", "detected"},
	"early":       {"initial", "beginning", "preliminary", "first", "starting"},
}
