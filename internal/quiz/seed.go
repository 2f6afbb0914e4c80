package quiz

import (
	"context"
	"errors"
)

// DefaultQuiz is the bundled five-question flavour quiz. Option values are
// the canonical answer tokens the recommendation engine understands; the
// fifth question is the alcohol axis.
func DefaultQuiz() Quiz {
	return Quiz{
		ID: DefaultID,
		Questions: []Question{
			{
				ID:   1,
				Text: "Какой вкус Вам ближе?",
				Options: []Option{
					{Label: "Сладкий и нежный", Value: "сладкий"},
					{Label: "Терпкий и насыщенный", Value: "терпкий"},
					{Label: "Кисловатый и свежий", Value: "цитрусовый"},
				},
			},
			{
				ID:   2,
				Text: "Какие ноты Вы предпочитаете?",
				Options: []Option{
					{Label: "Фруктовые", Value: "фруктовый"},
					{Label: "Травяные и землистые", Value: "травяной"},
					{Label: "Цветочные", Value: "цветочный"},
				},
			},
			{
				ID:   3,
				Text: "Напиток должен быть...",
				Options: []Option{
					{Label: "Освежающим и прохладным", Value: "освежающий"},
					{Label: "Согревающим и обволакивающим", Value: "согревающий"},
					{Label: "Не имеет значения", Value: "любой_температура"},
				},
			},
			{
				ID:   4,
				Text: "Насколько крепкий вкус Вы предпочитаете?",
				Options: []Option{
					{Label: "Лёгкий и деликатный", Value: "лёгкий"},
					{Label: "Средний и сбалансированный", Value: "средний"},
					{Label: "Насыщенный и глубокий", Value: "насыщенный"},
				},
			},
			{
				ID:   5,
				Text: "Желаете ли Вы алкогольный напиток?",
				Options: []Option{
					{Label: "Да, с удовольствием", Value: "алко_да"},
					{Label: "Нет, безалкогольный", Value: "алко_нет"},
					{Label: "Не принципиально", Value: "алко_любой"},
				},
			},
		},
	}
}

// SeedIfEmpty installs the bundled quiz when no default quiz exists yet.
func SeedIfEmpty(ctx context.Context, s Store) error {
	_, err := s.GetQuiz(ctx, DefaultID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.PutQuiz(ctx, DefaultQuiz())
}
