package recommend

// Static lookup tables for the quiz matching logic. Both are process-lifetime
// constants; nothing mutates them after init.

// synonyms maps a primary answer token to tags considered loosely related.
// A synonym hit is worth half an exact hit.
var synonyms = map[string][]string{
	"сладкий":    {"мягкий", "молочный"},
	"терпкий":    {"крепкий", "дымный", "землистый"},
	"цитрусовый": {"освежающий", "свежий"},
	"фруктовый":  {"экзотический"},
	"травяной":   {"землистый", "свежий"},
	"цветочный":  {"мягкий"},
	"освежающий": {"холодный", "свежий"},
	"согревающий": {"тёплый", "пряный"},
	"лёгкий":     {"мягкий", "свежий"},
	"средний":    {"классический", "сбалансированный"},
	"насыщенный": {"крепкий", "дымный", "пряный"},
}

// reasonPhrases renders a matched tag as a human-readable fragment for the
// recommendation reason. Tags without an entry fall back to the raw token.
var reasonPhrases = map[string]string{
	"сладкий":     "сладкий вкус",
	"терпкий":     "терпкие ноты",
	"цитрусовый":  "цитрусовая свежесть",
	"фруктовый":   "фруктовый характер",
	"травяной":    "травяные ноты",
	"цветочный":   "цветочный аромат",
	"освежающий":  "освежающий эффект",
	"согревающий": "согревающие свойства",
	"лёгкий":      "лёгкий вкус",
	"средний":     "сбалансированный характер",
	"насыщенный":  "насыщенный вкус",
	"мягкий":      "мягкость",
	"крепкий":     "крепкий характер",
	"дымный":      "дымные ноты",
	"пряный":      "пряный букет",
	"холодный":    "прохладная подача",
	"экзотический": "экзотические нотки",
	"молочный":    "молочная мягкость",
	"свежий":      "свежесть",
	"землистый":   "землистую глубину",
	"имбирный":    "имбирные ноты",
}

const (
	reasonTemplate = "Подходит благодаря: %s."
	reasonFallback = "Отличный выбор для знакомства с нашим меню."
	reasonMaxTags  = 3
)
