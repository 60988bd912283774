package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"smartshop-bot/config"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "lower-cases and strips punctuation",
			input:    "FASI  ra Girs!!",
			expected: "fasi ra girs",
		},
		{
			name:     "collapses whitespace",
			input:    "  fasi \t ra \n girs  ",
			expected: "fasi ra girs",
		},
		{
			name:     "preserves georgian letters",
			input:    "რა ღირს?",
			expected: "რა ღირს",
		},
		{
			name:     "preserves cyrillic letters",
			input:    "Сколько стоит???",
			expected: "сколько стоит",
		},
		{
			name:     "strips emoji and symbols",
			input:    "ფასი 🤔 -- (მომწერეთ)",
			expected: "ფასი მომწერეთ",
		},
		{
			name:     "keeps digits and underscores",
			input:    "post_42 costs 120",
			expected: "post_42 costs 120",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"FASI  ra Girs!!",
		"რა ღირს?",
		"Сколько стоит, дружище?",
		"  mixed ტექსტი и 123  ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalize should be idempotent for %q", input)
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("fasi ra girs"), Normalize("FASI  ra Girs!!"))
}

func TestClassifier_IsPriceQuestion(t *testing.T) {
	classifier := NewClassifier(config.DefaultPriceKeywords)

	t.Run("matches every default keyword with noise around it", func(t *testing.T) {
		for _, kw := range config.DefaultPriceKeywords {
			assert.True(t, classifier.IsPriceQuestion("!!! "+kw+" ???"), "keyword %q should classify as a price question", kw)
		}
	})

	t.Run("matches regardless of case", func(t *testing.T) {
		assert.True(t, classifier.IsPriceQuestion("RA GIRS es produqti?"))
		assert.True(t, classifier.IsPriceQuestion("СКОЛЬКО СТОИТ"))
	})

	t.Run("matches keyword inside a longer sentence", func(t *testing.T) {
		assert.True(t, classifier.IsPriceQuestion("gamarjoba, am produqtis fasi ra aqvs?"))
		assert.True(t, classifier.IsPriceQuestion("ძალიან მომეწონა, რა ღირს ეს?"))
	})

	t.Run("substring containment inside unrelated words is accepted", func(t *testing.T) {
		// "сколько" appears inside this sentence as a literal substring;
		// short keywords matching generously is documented behavior.
		assert.True(t, classifier.IsPriceQuestion("насколько это хорошо"))
	})

	t.Run("unrelated text does not match", func(t *testing.T) {
		assert.False(t, classifier.IsPriceQuestion("gamarjoba, rogor xart?"))
		assert.False(t, classifier.IsPriceQuestion("მადლობა, ძალიან კარგია"))
		assert.False(t, classifier.IsPriceQuestion("привет, как дела"))
		assert.False(t, classifier.IsPriceQuestion(""))
	})
}

func TestClassifier_CustomKeywords(t *testing.T) {
	classifier := NewClassifier([]string{"How Much?", "  ", ""})

	assert.True(t, classifier.IsPriceQuestion("how much is it"))
	assert.False(t, classifier.IsPriceQuestion("fasi ra girs"))
}
