package words

import (
	"math/rand"
	"strings"
)

// Corpus is the local word list consulted before the remote dictionary, and
// the source of fallback example words when a round times out with no
// correct answers. 3+ letters only; shorter words are invalid in the game.
var Corpus = []string{
	// 3-letter words
	"cat", "dog", "bat", "hat", "rat", "mat", "sun", "fun", "run", "gun",
	"pen", "hen", "ten", "men", "den", "car", "bar", "jar", "tar", "war",
	"cup", "pup", "top", "hop", "mop", "pop", "bed", "red", "fed", "led",
	"box", "fox", "mix", "fix", "six", "bag", "tag", "rag", "wag", "lag",
	"map", "tap", "cap", "gap", "nap", "sit", "hit", "bit", "fit", "kit",
	"hot", "not", "pot", "dot", "lot", "big", "dig", "fig", "jig", "pig",

	// 4-letter words
	"book", "cook", "look", "took", "hook", "love", "dove", "move", "cove", "wove",
	"time", "dime", "lime", "mime", "game", "name", "same", "tame", "fame", "came",
	"hope", "rope", "cope", "dope", "mope", "bike", "hike", "like", "mike", "pike",
	"fire", "wire", "tire", "dire", "hire", "make", "take", "wake", "bake", "cake",
	"fish", "dish", "wish", "tree", "free", "flee", "knee", "star", "scar", "char",
	"blue", "glue", "true", "clue", "moon", "soon", "noon", "boon", "door", "poor",
	"mind", "kind", "find", "wind", "bind", "walk", "talk", "milk", "silk", "gift",
	"king", "ring", "sing", "wing", "ding", "fast", "last", "past", "cast", "mast",
	"play", "clay", "gray", "pray", "stay", "song", "long", "gong", "kong", "pong",

	// 5-letter words
	"happy", "sunny", "funny", "bunny", "money", "honey", "dance", "lance", "prance", "glance",
	"table", "cable", "fable", "gable", "light", "night", "fight", "might", "sight", "right",
	"green", "queen", "sheen", "small", "trail", "snail", "brain", "train", "grain", "drain",
	"beach", "teach", "reach", "peach", "world", "bread", "dread", "tread", "magic", "basic",
	"brave", "grave", "shave", "crave", "story", "glory", "fruit", "smart", "start", "chart",
	"party", "heart", "paint", "point", "joint", "grand", "brand", "stand", "plant", "grant",
	"catch", "watch", "patch", "match", "batch", "think", "drink", "blink", "stink", "clink",
	"fresh", "flesh", "sweet", "sleep", "steep", "creep", "sweep", "brown", "crown", "drown",
	"spark", "shark", "stark", "clear", "spear", "shear", "dream", "cream", "steam", "gleam",
	"smile", "while", "style", "stone", "phone", "clone", "alone", "house", "mouse", "throne",

	// 6-letter words
	"castle", "battle", "rattle", "cattle", "basket", "market", "carpet", "target", "garden", "pardon",
	"friend", "attend", "defend", "offend", "bridge", "fridge", "orange", "change", "danger", "ranger",
	"simple", "dimple", "pimple", "temple", "purple", "circle", "muscle", "double", "bubble", "rubble",
	"summer", "hammer", "winter", "filter", "silver", "finger", "ginger", "singer", "turtle", "gentle",
	"mental", "dental", "rental", "portal", "mortal", "normal", "animal", "manual", "casual", "visual",
	"forest", "honest", "modest", "pocket", "rocket", "socket", "bucket", "ticket", "wicket", "settle",
	"dragon", "reason", "season", "person", "prison", "vision", "fusion", "flower", "shower", "bottle",
	"butter", "letter", "better", "matter", "modern", "golden", "wooden", "broken", "little", "master",
	"faster", "planet", "magnet", "rabbit", "combat", "format",

	// 7-letter words
	"kitchen", "chicken", "thicken", "quicken", "blanket", "bracket", "cricket", "trinket", "program", "diagram",
	"weather", "feather", "leather", "brother", "another", "teacher", "picture", "mixture", "culture", "capture",
	"feature", "texture", "lecture", "gesture", "venture", "pasture", "monster", "hamster", "chapter", "captain",
	"certain", "curtain", "freedom", "kingdom", "boredom", "stardom", "perfect", "respect", "inspect", "suspect",
	"project", "subject", "protect", "collect", "correct", "connect", "reflect", "example", "trample", "general",
	"mineral", "funeral", "central", "neutral", "natural", "musical", "magical", "typical", "history", "mystery",
	"battery", "pottery", "lottery", "factory", "victory", "century", "country", "library", "problem", "pattern",
	"lantern", "science", "silence", "balance", "advance", "romance", "finance", "absence", "essence", "defense",

	// 8-letter words
	"computer", "together", "remember", "november", "december", "reporter", "daughter", "laughter", "complete", "concrete",
	"discrete", "obsolete", "treasure", "pleasure", "pressure", "creature", "fracture", "standard", "backward", "forwards",
	"elephant", "pleasant", "constant", "distant", "instant", "relevant", "abundant", "ignorant", "birthday", "thursday",
	"saturday", "everyday", "creation", "relation", "vacation", "location", "fraction", "traction", "surprise", "comprise",
	"exercise", "paradise", "disguise", "memorize", "organize", "finalize", "strength", "research", "approach", "building",
	"learning", "teaching", "reaching", "catching", "matching", "watching", "mountain", "fountain", "maintain", "sustain",

	// 9-letter words
	"beautiful", "wonderful", "powerful", "colorful", "plentiful", "bountiful", "forgetful", "masterful", "adventure", "furniture",
	"signature", "departure", "miniature", "structure", "sculpture", "moisture", "celebrate", "eliminate", "fascinate", "generate",
	"hibernate", "navigate", "penetrate", "cultivate", "fortunate", "community", "chemistry", "discovery", "machinery", "necessary",
	"secretary", "voluntary", "imaginary", "dimension", "extension", "attention", "invention", "retention", "expansion", "beginning",
	"lightning", "happening", "listening", "reasoning", "seasoning", "weakening", "reckoning", "chocolate", "immediate", "desperate",
	"elaborate", "alternate", "moderate", "corporate", "separate", "knowledge", "challenge", "advantage", "encourage", "privilege",
	"cartridge", "partridge", "yesterday", "butterfly", "dragonfly", "jellyfish", "swordfish", "starfish", "goldfish", "happiness",
	"awareness", "darkness", "weakness", "sickness", "thickness", "quickness", "kindness", "goodness",
}

var corpusSet = buildCorpusSet()

func buildCorpusSet() map[string]struct{} {
	set := make(map[string]struct{}, len(Corpus))
	for _, w := range Corpus {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the normalized word is in the local corpus
func Contains(word string) bool {
	_, ok := corpusSet[strings.ToLower(strings.TrimSpace(word))]
	return ok
}

// Example returns a corpus word starting with first and ending with last
// (both uppercase letters), chosen uniformly at random among matches, or ""
// when no corpus word fits. Used only when a round ends with zero correct
// submissions.
func Example(first, last string) string {
	matches := make([]string, 0, 8)
	for _, w := range Corpus {
		if strings.ToUpper(w[:1]) == first && strings.ToUpper(w[len(w)-1:]) == last {
			matches = append(matches, w)
		}
	}
	if len(matches) == 0 {
		return ""
	}
	return matches[rand.Intn(len(matches))]
}
