package deck

// meanings maps card names to comma-separated upright keywords. Read-only
// table; reversal negation operates on these keywords at draw time.
var meanings = map[string]string{
	// major arcana
	"The Fool":             "beginnings, innocence, spontaneity, a free spirit",
	"The Magician":         "manifestation, resourcefulness, power, inspired action",
	"The High Priestess":   "intuition, sacred knowledge, the subconscious",
	"The Empress":          "femininity, beauty, nature, nurturing, abundance",
	"The Emperor":          "authority, establishment, structure, a father figure",
	"The Hierophant":       "spiritual wisdom, tradition, conformity, institutions",
	"The Lovers":           "love, harmony, relationships, values alignment, choices",
	"The Chariot":          "control, willpower, success, determination",
	"Justice":              "justice, fairness, truth, cause and effect, law",
	"The Hermit":           "soul-searching, introspection, being alone, inner guidance",
	"The Wheel of Fortune": "good luck, karma, life cycles, destiny, a turning point",
	"Strength":             "strength, courage, persuasion, influence, compassion",
	"The Hanged Man":       "pause, surrender, letting go, new perspectives",
	"Death":                "endings, change, transformation, transition",
	"Temperance":           "balance, moderation, patience, purpose",
	"The Devil":            "shadow self, attachment, addiction, restriction",
	"The Tower":            "sudden change, upheaval, chaos, revelation, awakening",
	"The Star":             "hope, faith, purpose, renewal, spirituality",
	"The Moon":             "illusion, fear, anxiety, subconscious, intuition",
	"The Sun":              "positivity, fun, warmth, success, vitality",
	"Judgement":            "judgement, rebirth, inner calling, absolution",
	"The World":            "completion, integration, accomplishment, travel",

	// wands
	"Ace of Wands":    "inspiration, new opportunities, growth, potential",
	"Two of Wands":    "future planning, progress, decisions, discovery",
	"Three of Wands":  "expansion, foresight, overseas opportunities",
	"Four of Wands":   "celebration, joy, harmony, relaxation, homecoming",
	"Five of Wands":   "conflict, disagreements, competition, tension",
	"Six of Wands":    "success, public recognition, progress, self-confidence",
	"Seven of Wands":  "challenge, competition, protection, perseverance",
	"Eight of Wands":  "movement, fast-paced change, action, alignment",
	"Nine of Wands":   "resilience, courage, persistence, test of faith",
	"Ten of Wands":    "burden, extra responsibility, hard work, completion",
	"Page of Wands":   "exploration, excitement, freedom, discovery",
	"Knight of Wands": "energy, passion, inspired action, adventure, impulsiveness",
	"Queen of Wands":  "courage, confidence, independence, social butterfly",
	"King of Wands":   "natural leader, vision, entrepreneur, honour",

	// swords
	"Ace of Swords":    "breakthrough, clarity, sharp thinking, new ideas",
	"Two of Swords":    "difficult decisions, weighing options, an impasse, avoidance",
	"Three of Swords":  "heartbreak, emotional pain, sorrow, grief, hurt",
	"Four of Swords":   "rest, relaxation, meditation, contemplation, recuperation",
	"Five of Swords":   "conflict, disagreements, defeat, winning at all costs",
	"Six of Swords":    "transition, change, rite of passage, releasing baggage",
	"Seven of Swords":  "betrayal, deception, getting away with something, strategy",
	"Eight of Swords":  "negative thoughts, self-imposed restriction, imprisonment",
	"Nine of Swords":   "anxiety, worry, fear, depression, nightmares",
	"Ten of Swords":    "painful endings, deep wounds, betrayal, loss, crisis",
	"Page of Swords":   "new ideas, curiosity, thirst for knowledge, new ways of communicating",
	"Knight of Swords": "ambition, drive, fast thinking, action without thought",
	"Queen of Swords":  "independence, unbiased judgement, clear boundaries, direct communication",
	"King of Swords":   "mental clarity, intellectual power, authority, truth",

	// cups
	"Ace of Cups":    "love, new relationships, compassion, creativity",
	"Two of Cups":    "unified love, partnership, mutual attraction",
	"Three of Cups":  "celebration, friendship, creativity, collaborations",
	"Four of Cups":   "meditation, contemplation, apathy, reevaluation",
	"Five of Cups":   "regret, failure, disappointment, pessimism",
	"Six of Cups":    "revisiting the past, childhood memories, innocence, joy",
	"Seven of Cups":  "opportunities, choices, wishful thinking, illusion",
	"Eight of Cups":  "disappointment, abandonment, withdrawal, escapism",
	"Nine of Cups":   "contentment, satisfaction, gratitude, wish come true",
	"Ten of Cups":    "divine love, blissful relationships, harmony, alignment",
	"Page of Cups":   "creative opportunities, intuitive messages, curiosity, possibility",
	"Knight of Cups": "creativity, romance, charm, imagination, beauty",
	"Queen of Cups":  "compassion, calm, comfort, emotional stability",
	"King of Cups":   "emotional balance, generosity, diplomacy",

	// pentacles
	"Ace of Pentacles":    "a new financial opportunity, manifestation, abundance",
	"Two of Pentacles":    "multiple priorities, time management, adaptability",
	"Three of Pentacles":  "teamwork, collaboration, learning, implementation",
	"Four of Pentacles":   "saving money, security, conservatism, scarcity, control",
	"Five of Pentacles":   "financial loss, poverty, lack mindset, isolation, worry",
	"Six of Pentacles":    "giving, receiving, sharing wealth, generosity, charity",
	"Seven of Pentacles":  "long-term view, sustainable results, perseverance, investment",
	"Eight of Pentacles":  "apprenticeship, repetitive tasks, mastery, skill development",
	"Nine of Pentacles":   "abundance, luxury, self-sufficiency, financial independence",
	"Ten of Pentacles":    "wealth, financial security, family, long-term success",
	"Page of Pentacles":   "manifestation, financial opportunity, skill development",
	"Knight of Pentacles": "hard work, productivity, routine, conservatism",
	"Queen of Pentacles":  "nurturing, practical, providing financially, a working parent",
	"King of Pentacles":   "wealth, business, leadership, security, discipline",
}
