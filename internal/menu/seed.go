package menu

import "context"

// DefaultCatalog is the bundled tea-bar menu, used until the admin API
// uploads a replacement. Tags come from the controlled vocabulary the quiz
// answers draw on.
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{ID: "tea", Name: "Чай", NameZh: "茶"},
			{ID: "lemonade", Name: "Лимонады", NameZh: "柠檬水"},
			{ID: CategoryAlcohol, Name: "Винная карта", NameZh: "酒"},
			{ID: CategoryTincture, Name: "Настойки", NameZh: "药酒"},
		},
		Items: []MenuItem{
			{
				ID:          "da-hong-pao",
				Name:        "Да Хун Пао",
				Price:       450,
				Description: "Утёсный улун сильной прожарки",
				FullDescription: "Легендарный утёсный улун с гор Уишань. " +
					"Плотный настой с карамельно-дымными нотами и долгим послевкусием.",
				Image:    "img/tea/da-hong-pao.jpg",
				Category: "tea",
				Tags:     []string{"терпкий", "крепкий", "дымный", "насыщенный"},
			},
			{
				ID:          "te-guan-yin",
				Name:        "Те Гуань Инь",
				Price:       420,
				Description: "Светлый улун с цветочным ароматом",
				Image:       "img/tea/te-guan-yin.jpg",
				Category:    "tea",
				Tags:        []string{"цветочный", "мягкий", "свежий", "лёгкий"},
			},
			{
				ID:          "molochny-ulun",
				Name:        "Молочный улун",
				Price:       400,
				Description: "Нежный улун со сливочным вкусом",
				Image:       "img/tea/molochny-ulun.jpg",
				Category:    "tea",
				Tags:        []string{"сладкий", "молочный", "мягкий"},
			},
			{
				ID:          "shen-puer",
				Name:        "Шен Пуэр",
				Price:       480,
				Description: "Молодой пуэр, травянистый и бодрящий",
				Image:       "img/tea/shen-puer.jpg",
				Category:    "tea",
				Tags:        []string{"травяной", "землистый", "крепкий", "свежий"},
			},
			{
				ID:          "shu-puer",
				Name:        "Шу Пуэр",
				Price:       480,
				Description: "Выдержанный пуэр, плотный и согревающий",
				Images:      []string{"img/tea/shu-puer-1.jpg", "img/tea/shu-puer-2.jpg"},
				Category:    "tea",
				Tags:        []string{"землистый", "насыщенный", "тёплый", "классический"},
			},
			{
				ID:          "jasmine",
				Name:        "Жасминовый чай",
				Price:       380,
				Description: "Зелёный чай с цветами жасмина",
				Image:       "img/tea/jasmine.jpg",
				Category:    "tea",
				Tags:        []string{"цветочный", "лёгкий", "свежий", "сладкий"},
			},
			{
				ID:          "citrus-lemonade",
				Name:        "Цитрусовый лимонад",
				Price:       350,
				Description: "Юдзу, лайм и грейпфрут со льдом",
				Image:       "img/lemonade/citrus.jpg",
				Category:    "lemonade",
				Tags:        []string{"цитрусовый", "освежающий", "холодный", "свежий"},
			},
			{
				ID:          "mango-passion",
				Name:        "Манго-маракуйя",
				Price:       370,
				Description: "Тропический лимонад на чайной основе",
				Image:       "img/lemonade/mango.jpg",
				Category:    "lemonade",
				Tags:        []string{"фруктовый", "экзотический", "сладкий", "холодный"},
			},
			{
				ID:          "ginger-lemonade",
				Name:        "Имбирный лимонад",
				Price:       350,
				Description: "Имбирь, мёд и лимон",
				Image:       "img/lemonade/ginger.jpg",
				Category:    "lemonade",
				Tags:        []string{"имбирный", "пряный", "освежающий"},
			},
			{
				ID:          "plum-wine",
				Name:        "Сливовое вино",
				Price:       390,
				Description: "Умэсю — японское сливовое вино",
				Image:       "img/alco/plum-wine.jpg",
				Category:    CategoryAlcohol,
				Tags:        []string{"сладкий", "фруктовый", "лёгкий"},
			},
			{
				ID:          "tea-mulled-wine",
				Name:        "Чайный глинтвейн",
				Price:       420,
				Description: "Красное вино с пуэром и пряностями",
				Image:       "img/alco/mulled.jpg",
				Category:    CategoryAlcohol,
				Tags:        []string{"тёплый", "пряный", "насыщенный"},
			},
			{
				ID:          "ginger-tincture",
				Name:        "Имбирная настойка",
				Price:       250,
				Description: "Домашняя настойка на имбире",
				Image:       "img/tincture/ginger.jpg",
				Category:    CategoryTincture,
				Tags:        []string{"имбирный", "крепкий", "пряный"},
			},
			{
				ID:          "citrus-tincture",
				Name:        "Цитрусовая настойка",
				Price:       250,
				Description: "Настойка на цедре юдзу",
				Image:       "img/tincture/citrus.jpg",
				Category:    CategoryTincture,
				Tags:        []string{"цитрусовый", "крепкий", "свежий"},
			},
		},
	}
}

// SeedIfEmpty loads the bundled catalog when the store has none, mirroring
// the client's local-data fallback.
func SeedIfEmpty(ctx context.Context, s Store) error {
	c, err := s.GetCatalog(ctx)
	if err != nil {
		return err
	}
	if len(c.Items) > 0 {
		return nil
	}
	return s.PutCatalog(ctx, DefaultCatalog())
}
