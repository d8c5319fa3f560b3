package domain

import (
	"strconv"
	"strings"
	"time"
)

type quoteSeed struct {
	text     string
	author   string
	category string
}

var seedQuotes = []quoteSeed{
	{"Единственный способ сделать что-то хорошо — полюбить то, что вы делаете.", "Стив Джобс", "Мотивация"},
	{"Жизнь — это то, что происходит с вами, пока вы строите другие планы.", "Джон Леннон", "Жизнь"},
	{"Путь в тысячу миль начинается с первого шага.", "Лао-цзы", "Начинания"},
	{"Не важно, как медленно вы идете, главное — не останавливаться.", "Конфуций", "Настойчивость"},
	{"Счастье — это не цель, а способ жить.", "Далай-лама", "Счастье"},
	{"Будьте тем изменением, которое хотите видеть в мире.", "Махатма Ганди", "Вдохновение"},
	{"Лучшее время посадить дерево было 20 лет назад. Второе лучшее время — сейчас.", "Китайская пословица", "Действие"},
	{"Успех — это способность идти от неудачи к неудаче, не теряя энтузиазма.", "Уинстон Черчилль", "Успех"},
	{"Ваше время ограничено, не тратьте его на жизнь чужой жизнью.", "Стив Джобс", "Аутентичность"},
	{"Единственная невозможная вещь — это та, которую вы не попытались сделать.", "Неизвестный автор", "Возможности"},
	{"Падать — это нормально. Подниматься — обязательно.", "Конфуций", "Стойкость"},
	{"Мудрость приходит с опытом, а опыт — с ошибками.", "Оскар Уайльд", "Мудрость"},
}

const quoteIDPrefix = "quote_"

func SeedQuoteCount() int { return len(seedQuotes) }

// NewSeededDocument is the state of a never-initialized store.
func NewSeededDocument(now time.Time) Document {
	doc := NewDocument()
	stamp := FormatTime(now)
	for i, seed := range seedQuotes {
		id := quoteIDPrefix + strconv.Itoa(i+1)
		doc.Quotes[id] = QuoteRecord{
			ID:        id,
			Text:      seed.text,
			Author:    seed.author,
			Category:  seed.category,
			CreatedAt: stamp,
		}
	}
	return doc
}

// QuotePosition is the seed position encoded in a quote id, or -1.
func QuotePosition(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, quoteIDPrefix))
	if err != nil || !strings.HasPrefix(id, quoteIDPrefix) {
		return -1
	}
	return n
}
