package assistant

import (
	"KeepEat-Backend/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding chatter", "Here you go:\n{\"a\":1}\nEnjoy!", `{"a":1}`},
		{"leading whitespace", "  \n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func textResponse(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
			},
		},
	})
	return string(body)
}

func testProvider(serverURL string) *geminiProvider {
	return &geminiProvider{
		baseURL:    serverURL,
		textModel:  "test-model",
		imageModel: "test-image-model",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestParseFoodText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", r.URL.Query().Get("key"))
		}
		w.Write([]byte(textResponse(`{"itemName":"Milk","expiryDate":"2025-03-15","location":"Fridge"}`)))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	parsed, err := provider.ParseFoodText(context.Background(), "test-key", "milk expiring friday")
	if err != nil {
		t.Fatalf("ParseFoodText failed: %v", err)
	}

	if parsed.Name != "Milk" {
		t.Errorf("Name = %q, want Milk", parsed.Name)
	}
	if parsed.ExpiryDate != "2025-03-15" {
		t.Errorf("ExpiryDate = %q, want 2025-03-15", parsed.ExpiryDate)
	}
	if parsed.Location != "Fridge" {
		t.Errorf("Location = %q, want Fridge", parsed.Location)
	}
}

func TestParseFoodTextFencedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("```json\n{\"itemName\":\"Eggs\",\"expiryDate\":\"2025-04-01\",\"location\":\"Pantry\"}\n```")))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	parsed, err := provider.ParseFoodText(context.Background(), "k", "a dozen eggs")
	if err != nil {
		t.Fatalf("ParseFoodText failed: %v", err)
	}
	if parsed.Name != "Eggs" || parsed.Location != "Pantry" {
		t.Errorf("got %+v", parsed)
	}
}

func TestParseFoodTextUnknownLocationDefaultsToFridge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"itemName":"Rice","expiryDate":"","location":"Cellar"}`)))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	parsed, err := provider.ParseFoodText(context.Background(), "k", "a bag of rice")
	if err != nil {
		t.Fatalf("ParseFoodText failed: %v", err)
	}
	if parsed.Location != "Fridge" {
		t.Errorf("Location = %q, want Fridge fallback", parsed.Location)
	}
}

func TestAnalyzeFoodImageDateSourceFallsBackToNone(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"itemName":"Yogurt","expiryDate":"2025-03-20","dateSource":"guess"}`)))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	analysis, err := provider.AnalyzeFoodImage(context.Background(), "k", []byte{0xFF, 0xD8}, "image/jpeg", "Fridge")
	if err != nil {
		t.Fatalf("AnalyzeFoodImage failed: %v", err)
	}
	if analysis.DateSource != domain.DateSourceNone {
		t.Errorf("DateSource = %q, want %q", analysis.DateSource, domain.DateSourceNone)
	}
}

func TestGenerateRecipe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{
			"recipeName": "Tomato Egg Stir Fry",
			"description": "A quick homestyle dish.",
			"ingredients": ["2 tomatoes", "3 eggs"],
			"steps": [{"instruction": "Beat the eggs."}, {"instruction": "Stir fry."}],
			"allergens": "Eggs",
			"nutrition": {"calories": "220 kcal", "protein": "12g", "carbs": "8g", "fat": "15g"}
		}`)))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	recipe, err := provider.GenerateRecipe(context.Background(), "k", []string{"tomato", "egg"})
	if err != nil {
		t.Fatalf("GenerateRecipe failed: %v", err)
	}

	if recipe.RecipeName != "Tomato Egg Stir Fry" {
		t.Errorf("RecipeName = %q", recipe.RecipeName)
	}
	if len(recipe.Ingredients) != 2 {
		t.Errorf("got %d ingredients, want 2", len(recipe.Ingredients))
	}
	if len(recipe.Steps) != 2 || recipe.Steps[0].Instruction != "Beat the eggs." {
		t.Errorf("unexpected steps %+v", recipe.Steps)
	}
	if recipe.Nutrition.Calories != "220 kcal" {
		t.Errorf("Calories = %q", recipe.Nutrition.Calories)
	}
}

func TestGenerateRecipeImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-image-model") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := json.Marshal(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"inlineData": map[string]interface{}{
								"mimeType": "image/png",
								"data":     "aGVsbG8=",
							}},
						},
					},
				},
			},
		})
		w.Write(body)
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	dataURL, err := provider.GenerateRecipeImage(context.Background(), "k", "Tomato Egg Stir Fry")
	if err != nil {
		t.Fatalf("GenerateRecipeImage failed: %v", err)
	}
	if dataURL != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("dataURL = %q", dataURL)
	}
}

func TestGenerateRecipeImageNoImageData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("sorry, no image")))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	if _, err := provider.GenerateRecipeImage(context.Background(), "k", "anything"); err == nil {
		t.Fatal("expected error when no image data returned")
	}
}

func TestChatReplyIncludesTranscript(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(textResponse("  Sure, bring it over!  ")))
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	history := []domain.ChatMessage{
		{Sender: "Amy", Text: "I have extra tomatoes."},
	}
	reply, err := provider.ChatReply(context.Background(), "k", history, "Want some?")
	if err != nil {
		t.Fatalf("ChatReply failed: %v", err)
	}

	if reply != "Sure, bring it over!" {
		t.Errorf("reply = %q, want trimmed text", reply)
	}

	raw, _ := json.Marshal(gotBody)
	if !strings.Contains(string(raw), "Amy: I have extra tomatoes.") {
		t.Error("prompt does not include chat history")
	}
}

func TestGenerateContentHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	provider := testProvider(server.URL)
	if _, err := provider.ParseFoodText(context.Background(), "bad-key", "milk"); err == nil {
		t.Fatal("expected error on HTTP 400")
	}
}
