package analyzers

// EmotionCategories is the fixed NRC affect set, in the order used to
// break dominant-emotion ties.
var EmotionCategories = []string{
	"anger",
	"anticipation",
	"disgust",
	"fear",
	"joy",
	"negative",
	"positive",
	"sadness",
	"surprise",
	"trust",
}

// emotionWords lists lexicon entries per category. A word may belong to
// several categories, matching the NRC association lists.
var emotionWords = map[string][]string{
	"anger": {
		"anger", "angry", "annoyed", "assault", "attack", "bitter",
		"brutal", "destroy", "enraged", "fight", "furious", "fury",
		"hate", "hatred", "hostile", "insult", "irritated", "mad",
		"outrage", "punish", "rage", "resent", "revenge", "violent",
		"war", "wrath",
	},
	"anticipation": {
		"anticipate", "anticipation", "await", "coming", "curious",
		"eager", "expect", "expectation", "forecast", "hope", "hopeful",
		"plan", "predict", "prepare", "ready", "soon", "tomorrow",
		"upcoming", "wait", "watch",
	},
	"disgust": {
		"creepy", "dirty", "disgust", "disgusting", "filthy", "foul",
		"gross", "loathe", "nasty", "repulsive", "revolting", "rotten",
		"sick", "sickening", "stink", "ugly", "vile", "vomit",
	},
	"fear": {
		"afraid", "alarm", "anxious", "danger", "dread", "fear",
		"fearful", "fright", "frightened", "horror", "nightmare",
		"panic", "scare", "scared", "scream", "terrified", "terror",
		"threat", "warning", "worry",
	},
	"joy": {
		"beautiful", "bliss", "celebrate", "cheerful", "delight",
		"delighted", "ecstatic", "enjoy", "fun", "glad", "happiness",
		"happy", "joy", "joyful", "laugh", "laughter", "love", "lovely",
		"pleased", "smile", "sunshine", "thrilled", "wonderful",
	},
	"negative": {
		"abuse", "awful", "bad", "broken", "cruel", "death", "disaster",
		"dreadful", "fail", "failure", "hate", "horrible", "hurt",
		"lie", "loss", "pain", "poor", "problem", "terrible", "ugly",
		"unfair", "useless", "weak", "worst", "wrong",
	},
	"positive": {
		"achieve", "beautiful", "benefit", "brilliant", "excellent",
		"friendly", "generous", "good", "grateful", "great", "happy",
		"honest", "hope", "improve", "kind", "love", "perfect",
		"praise", "safe", "strong", "succeed", "success", "win",
		"wonderful",
	},
	"sadness": {
		"cry", "depressed", "despair", "gloomy", "grief", "heartbroken",
		"hopeless", "lonely", "loss", "misery", "mourn", "mourning",
		"regret", "sad", "sadness", "sorrow", "suffer", "tears",
		"tragic", "unhappy", "weep",
	},
	"surprise": {
		"amaze", "amazed", "amazing", "astonish", "astonished",
		"astonishing", "marvel", "shock", "shocked", "shocking",
		"startle", "startled", "stunned", "sudden", "suddenly",
		"surprise", "surprised", "surprising", "unexpected", "wonder",
	},
	"trust": {
		"assure", "confidence", "confident", "depend", "faith",
		"faithful", "friend", "guardian", "honest", "loyal", "promise",
		"protect", "reliable", "respect", "secure", "sincere", "team",
		"true", "trust", "trusted",
	},
}

// emotionLexicon maps each word to the categories it scores for. Built
// once at init from the category lists above.
var emotionLexicon = buildLexicon()

func buildLexicon() map[string][]string {
	lexicon := make(map[string][]string)
	for _, category := range EmotionCategories {
		for _, word := range emotionWords[category] {
			lexicon[word] = append(lexicon[word], category)
		}
	}
	return lexicon
}
