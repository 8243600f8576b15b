package knowledge

import "fmt"

// entry is a static content definition before it is stamped with an id,
// category and metadata type.
type entry struct {
	content  string
	keywords []string
}

// staticDocuments materializes the fixed topical sets in load order:
// wisdom, cafe, care, emotions, breeds.
func staticDocuments() []Document {
	var docs []Document
	docs = appendSet(docs, "wisdom", CategoryWisdom, "fortune_wisdom", wisdomEntries)
	docs = appendSet(docs, "cafe", CategoryCafe, "cafe_info", cafeEntries)
	docs = appendSet(docs, "care", CategoryCare, "care_tip", careEntries)
	docs = appendSet(docs, "emotion", CategoryEmotions, "emotional_support", emotionEntries)
	docs = appendSet(docs, "breed", CategoryBreeds, "breed_info", breedEntries)
	return docs
}

func appendSet(docs []Document, idPrefix, category, sourceType string, entries []entry) []Document {
	for i, e := range entries {
		docs = append(docs, Document{
			ID:       fmt.Sprintf("%s_%d", idPrefix, i),
			Content:  e.content,
			Category: category,
			Keywords: e.keywords,
			Metadata: map[string]string{"type": sourceType},
		})
	}
	return docs
}

var wisdomEntries = []entry{
	{"A warm lap is worth a thousand words.", []string{"comfort", "warmth", "connection", "love", "lonely"}},
	{"The best things in life are worth waiting for... like dinner.", []string{"patience", "waiting", "anticipation", "reward"}},
	{"Nap often, for dreams await the patient soul.", []string{"rest", "sleep", "tired", "exhausted", "dreams", "patience"}},
	{"Curiosity didn't kill the cat — it made them wiser.", []string{"curiosity", "learning", "growth", "fear", "trying", "new"}},
	{"If it fits, sits. This is the way.", []string{"acceptance", "comfort", "belonging", "finding", "place"}},
	{"The early bird gets the worm, but the wise cat waits for treats.", []string{"wisdom", "timing", "patience", "strategy"}},
	{"A gentle purr can heal any troubled heart.", []string{"healing", "comfort", "sadness", "pain", "heartbreak", "loss"}},
	{"Never underestimate the power of a well-timed head boop.", []string{"affection", "connection", "friendship", "love", "gesture"}},
	{"Chase your dreams as fiercely as you chase the red dot.", []string{"dreams", "goals", "ambition", "determination", "chase", "pursue"}},
	{"Sometimes the best view is from the top of the bookshelf.", []string{"perspective", "overview", "problems", "distance", "clarity"}},
	{"Trust your whiskers — they know the way.", []string{"intuition", "trust", "instinct", "decision", "guidance", "confused"}},
	{"Every cardboard box holds infinite possibilities.", []string{"possibilities", "opportunity", "creativity", "simple", "joy"}},
	{"The sun always shines for those who find the sunny spot.", []string{"optimism", "positivity", "hope", "finding", "happiness", "depressed"}},
	{"Stretch before any important endeavor. Actually, stretch always.", []string{"preparation", "self-care", "health", "wellness", "start"}},
	{"True friends will always share their warmth.", []string{"friendship", "friends", "support", "warmth", "lonely", "alone"}},
	{"Knock things off the table of doubt.", []string{"doubt", "confidence", "action", "decisive", "worry", "overthinking"}},
	{"The path to happiness is paved with soft blankets.", []string{"happiness", "comfort", "peace", "contentment", "simple"}},
	{"Always land on your feet, but don't be afraid to fall.", []string{"resilience", "failure", "fear", "courage", "falling", "mistake"}},
	{"A belly rub a day keeps the grumpies away.", []string{"self-care", "mood", "grumpy", "angry", "stress", "relax"}},
	{"The quietest meow often speaks the loudest truth.", []string{"quiet", "listening", "truth", "voice", "heard", "ignored"}},
	{"Life is better with a little catnip.", []string{"fun", "joy", "playfulness", "serious", "lighten", "enjoy"}},
	{"Judge not by the scratching post, but by the character.", []string{"judgment", "character", "appearance", "surface", "deeper"}},
	{"Patience is the art of hiding your anticipation for treats.", []string{"patience", "waiting", "anticipation", "impatient", "want"}},
	{"Even the mightiest lion started as a curious kitten.", []string{"beginnings", "growth", "starting", "inexperience", "beginner", "new"}},
	{"Elegance is an attitude, not just a coat color.", []string{"confidence", "attitude", "self-esteem", "appearance", "beauty"}},
	{"The window to the soul is best viewed from a windowsill.", []string{"reflection", "soul", "contemplation", "thinking", "meaning"}},
	{"In every ending, there is a new beginning... especially at 3 AM.", []string{"endings", "beginnings", "change", "transition", "loss", "moving"}},
	{"Share your toys generously, except the favorite one.", []string{"sharing", "generosity", "boundaries", "limits", "giving"}},
	{"The greatest journeys begin with a single pounce.", []string{"journey", "start", "beginning", "action", "first", "step"}},
	{"Let your inner kitten guide you to joy.", []string{"joy", "playfulness", "inner", "child", "fun", "serious"}},
}

var cafeEntries = []entry{
	{
		"Welcome to Whiskers & Wonders Cat Cafe! We are a cozy sanctuary where cat lovers can enjoy delicious treats while spending quality time with our adorable resident cats. Each cat has their own unique personality and is available for adoption to loving homes.",
		[]string{"cafe", "about", "welcome", "what", "where", "visit"},
	},
	{
		"Our cafe hours are 10 AM to 8 PM daily. We recommend booking ahead for therapy sessions with our cats, as they are quite popular! Walk-ins are welcome for general cafe visits.",
		[]string{"hours", "open", "visit", "booking", "appointment", "when"},
	},
	{
		"Cat therapy sessions at Whiskers & Wonders provide a unique experience where you can share your thoughts and receive wisdom from our resident feline therapists. Each cat offers a different perspective based on their personality and mood.",
		[]string{"therapy", "session", "advice", "help", "talk", "counsel"},
	},
	{
		"All our cats are rescue cats given a second chance at life. By visiting and potentially adopting, you help support our mission of finding forever homes for cats in need.",
		[]string{"rescue", "adoption", "adopt", "mission", "help", "support", "home"},
	},
	{
		"Our cafe menu features cat-themed treats and beverages, including the Purrfect Latte, Meow Muffins, and Whisker Cookies. All proceeds help care for our resident cats.",
		[]string{"menu", "food", "drinks", "eat", "coffee", "treats"},
	},
}

var careEntries = []entry{
	{
		"Cats thrive on routine. Try to feed, play, and rest at consistent times each day. This helps reduce anxiety and creates a sense of security.",
		[]string{"routine", "schedule", "anxiety", "stress", "calm", "regular"},
	},
	{
		"Play is essential for a cat's mental and physical health. Just 15-20 minutes of interactive play daily can significantly improve mood and reduce behavioral issues.",
		[]string{"play", "exercise", "health", "mental", "behavior", "active"},
	},
	{
		"Cats communicate through body language. A slow blink means trust and affection. Ears back might indicate fear or aggression. A relaxed tail shows contentment.",
		[]string{"communication", "body", "language", "understand", "feelings", "mood"},
	},
	{
		"Creating vertical spaces like cat trees or shelves gives cats a sense of security and territory. Cats feel safer when they can observe from above.",
		[]string{"space", "territory", "safety", "environment", "home", "comfortable"},
	},
	{
		"Quality time with your cat strengthens your bond. Simply sitting near them, gentle petting, or quiet companionship matters more than constant interaction.",
		[]string{"bonding", "time", "relationship", "connection", "love", "together"},
	},
}

var emotionEntries = []entry{
	{
		"Feeling anxious is like having your whiskers constantly twitching. The key is to find your safe cardboard box - a place or activity that makes you feel secure. Start with deep breaths and small, manageable steps.",
		[]string{"anxious", "anxiety", "worried", "nervous", "panic", "stress", "overwhelmed"},
	},
	{
		"Sadness is like a rainy day that keeps you from the sunny spot. Remember, even cats have their off days. Allow yourself to feel, but know that the sun will return. Surround yourself with warmth and comfort.",
		[]string{"sad", "sadness", "depressed", "down", "unhappy", "crying", "tears", "grief"},
	},
	{
		"Loneliness is tough, even for independent cats. Connection matters. Reach out to someone, even if it feels hard. Sometimes a simple meow - or message - can open doors to companionship.",
		[]string{"lonely", "alone", "isolated", "friendless", "single", "missing", "connection"},
	},
	{
		"Anger is like when someone disturbs your nap - intense but temporary. Acknowledge the feeling without acting on it rashly. Find a healthy outlet, like a good scratch on the scratching post of life.",
		[]string{"angry", "anger", "mad", "furious", "frustrated", "annoyed", "irritated"},
	},
	{
		"Fear of failure keeps many from pouncing on opportunities. Remember: cats don't always catch the red dot, but they never stop trying. Each attempt is practice, not failure.",
		[]string{"fear", "failure", "afraid", "scared", "failing", "mistake", "imposter"},
	},
	{
		"Work stress can feel like chasing your tail endlessly. Set boundaries like a cat guards their territory. Rest is not laziness - it's essential maintenance for peak performance.",
		[]string{"work", "job", "career", "stress", "burnout", "tired", "exhausted", "boss"},
	},
	{
		"Relationship troubles? Cats know that sometimes you need space, and sometimes you need closeness. Communication is key - express your needs clearly, listen actively, and respect boundaries.",
		[]string{"relationship", "partner", "boyfriend", "girlfriend", "spouse", "marriage", "dating", "love"},
	},
	{
		"Feeling stuck is like being in a room with a closed door. But remember, cats are persistent - we sit and wait, we meow, we find another way. Your breakthrough is coming.",
		[]string{"stuck", "trapped", "blocked", "stagnant", "nowhere", "hopeless", "giving"},
	},
	{
		"Self-doubt is that voice saying you're not good enough. But look at any cat - we never doubt our worthiness of treats and love. You deserve good things too. Own your space on the couch of life.",
		[]string{"doubt", "confidence", "insecure", "worthy", "enough", "self-esteem", "imposter"},
	},
	{
		"Change is scary, like moving to a new home. But cats adapt - we explore, we claim new sunny spots, we make it ours. You too can find comfort in new beginnings.",
		[]string{"change", "new", "different", "moving", "transition", "starting", "unknown"},
	},
}

var breedEntries = []entry{
	{
		"Maine Coons are gentle giants known for their friendly, dog-like personalities. They are excellent with families and other pets, and their calm demeanor makes them perfect therapy companions. They are patient listeners who offer steady, grounded advice.",
		[]string{"maine", "coon", "gentle", "giant", "friendly", "family", "patient"},
	},
	{
		"Siamese cats are famous for their vocal nature and strong bond with their humans. They are chatty, social, and highly intelligent. As therapists, they offer engaging conversations and aren't afraid to speak their mind with loving honesty.",
		[]string{"siamese", "vocal", "chatty", "social", "intelligent", "talkative"},
	},
	{
		"Scottish Folds are known for their unique folded ears and sweet, playful nature. They adapt well to any environment and are incredibly affectionate. They offer warm, accepting advice and help people feel comfortable.",
		[]string{"scottish", "fold", "sweet", "playful", "adaptable", "affectionate"},
	},
	{
		"Ragdolls are the ultimate lap cats, known for going limp when held. They are docile, calm, and incredibly affectionate. They specialize in comfort and make people feel safe and loved.",
		[]string{"ragdoll", "lap", "docile", "calm", "affectionate", "comfort", "cuddle"},
	},
	{
		"British Shorthairs are dignified, easygoing cats with a calm demeanor. They are independent yet affectionate, offering wise, measured advice without being overwhelming.",
		[]string{"british", "shorthair", "dignified", "calm", "independent", "wise"},
	},
	{
		"Abyssinians are active, curious, and love to explore. They are highly intelligent and playful, encouraging others to embrace curiosity and adventure in life.",
		[]string{"abyssinian", "active", "curious", "explorer", "intelligent", "playful", "adventure"},
	},
	{
		"Tuxedo cats (not a breed, but a pattern) are known for their distinctive black and white markings. They are often described as having big personalities - confident, playful, and charming.",
		[]string{"tuxedo", "black", "white", "confident", "charming", "personality"},
	},
	{
		"Domestic Shorthairs are the most common cats, with diverse personalities and looks. They are adaptable, resilient survivors who remind us that your background doesn't define your potential.",
		[]string{"domestic", "shorthair", "common", "adaptable", "resilient", "survivor"},
	},
}
