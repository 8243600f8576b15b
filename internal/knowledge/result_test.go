package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Helpers(t *testing.T) {
	result := Result{
		Query: "lonely",
		Documents: []Document{
			{ID: "emotion_2", Content: "Loneliness is tough.", Category: CategoryEmotions},
			{ID: "wisdom_0", Content: "A warm lap is worth a thousand words.", Category: CategoryWisdom},
		},
		Scores: []float64{4, 3},
	}

	assert.False(t, result.IsEmpty())
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, []string{"Loneliness is tough.", "A warm lap is worth a thousand words."}, result.Contents())

	top, ok := result.TopDocument()
	assert.True(t, ok)
	assert.Equal(t, "emotion_2", top.ID)

	wisdom := result.ByCategory(CategoryWisdom)
	assert.Len(t, wisdom, 1)
	assert.Equal(t, "wisdom_0", wisdom[0].ID)
}

func TestResult_Empty(t *testing.T) {
	var result Result

	assert.True(t, result.IsEmpty())
	assert.Equal(t, 0, result.Len())
	assert.Empty(t, result.Contents())

	_, ok := result.TopDocument()
	assert.False(t, ok)
}
