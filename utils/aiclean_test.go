package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAIJSON_PassesCleanInputThrough(t *testing.T) {
	in := `{"totalCalories": 2100, "meals": []}`
	assert.Equal(t, in, CleanAIJSON(in))
}

func TestCleanAIJSON_StripsMarkdownFences(t *testing.T) {
	in := "```json\n{\"difficulty\": \"easy\"}\n```"
	assert.Equal(t, `{"difficulty": "easy"}`, CleanAIJSON(in))
}

func TestCleanAIJSON_PrefersFencedBlockOverChatter(t *testing.T) {
	in := "Sure! Here is your plan:\n```json\n{\"meals\": []}\n```\nLet me know if you want changes."
	assert.Equal(t, `{"meals": []}`, CleanAIJSON(in))
}

func TestCleanAIJSON_TruncatesTrailingGarbage(t *testing.T) {
	in := `{"meals": []} I hope this plan works well for you!`
	assert.Equal(t, `{"meals": []}`, CleanAIJSON(in))
}

func TestCleanAIJSON_DropsLeadingChatter(t *testing.T) {
	in := `Here you go: {"meals": []}`
	assert.Equal(t, `{"meals": []}`, CleanAIJSON(in))
}

func TestCleanAIJSON_QuotesBareRanges(t *testing.T) {
	in := `{"sets": 3, "reps": 8-12, "restTime": 90}`
	out := CleanAIJSON(in)
	assert.Equal(t, `{"sets": 3, "reps": "8-12", "restTime": 90}`, out)

	var parsed struct {
		Sets     int    `json:"sets"`
		Reps     string `json:"reps"`
		RestTime int    `json:"restTime"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "8-12", parsed.Reps)
}

func TestCleanAIJSON_ReplacesNaN(t *testing.T) {
	in := `{"calories": NaN, "protein": 12}`
	out := CleanAIJSON(in)

	var parsed map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, 0.0, parsed["calories"])
	assert.Equal(t, 12.0, parsed["protein"])
}

func TestCleanAIJSON_AllClassesCombined(t *testing.T) {
	in := "Of course!\n```json\n" +
		`{"exercises": [{"name": "Squat", "reps": 6-8, "caloriesBurned": NaN}]}` +
		"\n```\nEnjoy your workout."
	out := CleanAIJSON(in)

	var parsed struct {
		Exercises []struct {
			Name           string  `json:"name"`
			Reps           string  `json:"reps"`
			CaloriesBurned float64 `json:"caloriesBurned"`
		} `json:"exercises"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Exercises, 1)
	assert.Equal(t, "6-8", parsed.Exercises[0].Reps)
	assert.Equal(t, 0.0, parsed.Exercises[0].CaloriesBurned)
}

func TestCleanAIJSON_IrrecoverableInputStaysUnparseable(t *testing.T) {
	out := CleanAIJSON("I cannot produce a meal plan right now.")
	var v interface{}
	assert.Error(t, json.Unmarshal([]byte(out), &v))
}
