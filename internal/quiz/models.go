package quiz

// Option pairs a display label with the canonical answer token the
// recommendation engine matches on.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Quiz defines the ordered questions. Answer position i corresponds to
// question i; the engine only needs that order, not the quiz itself.
type Quiz struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
}
