package assistant

import (
	"KeepEat-Backend/domain"
	"KeepEat-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "gemini-2.0-flash-preview-image-generation"
)

type geminiProvider struct {
	baseURL    string
	textModel  string
	imageModel string
	httpClient *http.Client
}

func NewGeminiProvider() Provider {
	textModel := utils.GetConfig("GEMINI_MODEL")
	if textModel == "" {
		textModel = defaultTextModel
	}
	imageModel := utils.GetConfig("GEMINI_IMAGE_MODEL")
	if imageModel == "" {
		imageModel = defaultImageModel
	}

	return &geminiProvider{
		baseURL:    defaultBaseURL,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *geminiProvider) generateContent(ctx context.Context, apiKey string, model string, requestBody map[string]interface{}) (geminiResponse, error) {
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return geminiResponse{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return geminiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return geminiResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return geminiResponse{}, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return geminiResponse{}, err
	}

	return decoded, nil
}

func (g *geminiProvider) generateText(ctx context.Context, apiKey string, model string, requestBody map[string]interface{}) (string, error) {
	decoded, err := g.generateContent(ctx, apiKey, model, requestBody)
	if err != nil {
		return "", err
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON trims markdown fences and surrounding chatter from a model
// response, leaving the outermost JSON object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	if match := jsonObjectPattern.FindString(text); match != "" {
		text = match
	}
	return strings.TrimSpace(text)
}

func (g *geminiProvider) ParseFoodText(ctx context.Context, apiKey string, text string) (domain.ParsedFoodItem, error) {
	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(
		"You are a smart kitchen assistant. Today's date is %s. "+
			"Parse the following utterance into a food inventory item: %q. "+
			"Identify the item name, the storage location mapped onto one of "+
			"'Fridge', 'Freezer' or 'Pantry' (default to 'Fridge' when not mentioned), "+
			"and the expiry date. The date may be relative (e.g. 'tomorrow', 'in three days') "+
			"or absolute; convert it to YYYY-MM-DD. Return null for the date when it cannot "+
			"be determined. Respond ONLY with JSON matching the schema.",
		today, text,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":        0.1,
			"response_mime_type": "application/json",
			"response_schema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"itemName":   map[string]interface{}{"type": "STRING"},
					"expiryDate": map[string]interface{}{"type": "STRING"},
					"location":   map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"itemName", "expiryDate", "location"},
			},
		},
	}

	responseText, err := g.generateText(ctx, apiKey, g.textModel, requestBody)
	if err != nil {
		return domain.ParsedFoodItem{}, err
	}

	var parsed struct {
		ItemName   string `json:"itemName"`
		ExpiryDate string `json:"expiryDate"`
		Location   string `json:"location"`
	}
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &parsed); err != nil {
		return domain.ParsedFoodItem{}, fmt.Errorf("failed to parse gemini response: %v - raw: %s", err, responseText)
	}

	location := parsed.Location
	if location != "Fridge" && location != "Freezer" && location != "Pantry" {
		location = "Fridge"
	}

	return domain.ParsedFoodItem{
		Name:       parsed.ItemName,
		ExpiryDate: parsed.ExpiryDate,
		Location:   location,
	}, nil
}

func (g *geminiProvider) AnalyzeFoodImage(ctx context.Context, apiKey string, image []byte, mimeType string, location string) (domain.ImageAnalysis, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := fmt.Sprintf(
		"You are an expert food inventory assistant. Analyze this image of a grocery item "+
			"stored in the '%s'. First identify the primary food item. Then scrutinize the "+
			"packaging for a printed expiry date in any format and convert it to YYYY-MM-DD. "+
			"Only if no printed date is found, estimate a reasonable shelf life for the item "+
			"in that storage location and compute the expiry date from today. Set dateSource "+
			"to 'ocr' if you read the date, 'estimated' if you estimated it, and 'none' if no "+
			"date could be determined. Respond ONLY with JSON matching the schema.",
		location,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64.StdEncoding.EncodeToString(image),
						},
					},
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":        0.1,
			"response_mime_type": "application/json",
			"response_schema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"itemName":   map[string]interface{}{"type": "STRING"},
					"expiryDate": map[string]interface{}{"type": "STRING"},
					"dateSource": map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"itemName", "expiryDate", "dateSource"},
			},
		},
	}

	responseText, err := g.generateText(ctx, apiKey, g.textModel, requestBody)
	if err != nil {
		return domain.ImageAnalysis{}, err
	}

	var parsed struct {
		ItemName   string `json:"itemName"`
		ExpiryDate string `json:"expiryDate"`
		DateSource string `json:"dateSource"`
	}
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &parsed); err != nil {
		return domain.ImageAnalysis{}, fmt.Errorf("failed to parse gemini response: %v - raw: %s", err, responseText)
	}

	dateSource := parsed.DateSource
	if dateSource != domain.DateSourceOCR && dateSource != domain.DateSourceEstimated {
		dateSource = domain.DateSourceNone
	}

	return domain.ImageAnalysis{
		Name:       parsed.ItemName,
		ExpiryDate: parsed.ExpiryDate,
		DateSource: dateSource,
	}, nil
}

func (g *geminiProvider) GenerateRecipe(ctx context.Context, apiKey string, ingredients []string) (domain.RecipeData, error) {
	prompt := fmt.Sprintf(
		"You are a creative chef. Suggest a simple recipe for a home cook that uses: %s. "+
			"Include a recipe name, a short appetizing description, the full ingredient list, "+
			"step-by-step instructions, common allergens present, and estimated nutrition per "+
			"serving. Respond ONLY with JSON matching the schema.",
		strings.Join(ingredients, ", "),
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":        0.7,
			"response_mime_type": "application/json",
			"response_schema": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"recipeName":  map[string]interface{}{"type": "STRING"},
					"description": map[string]interface{}{"type": "STRING"},
					"ingredients": map[string]interface{}{
						"type":  "ARRAY",
						"items": map[string]interface{}{"type": "STRING"},
					},
					"steps": map[string]interface{}{
						"type": "ARRAY",
						"items": map[string]interface{}{
							"type": "OBJECT",
							"properties": map[string]interface{}{
								"instruction": map[string]interface{}{"type": "STRING"},
							},
							"required": []string{"instruction"},
						},
					},
					"allergens": map[string]interface{}{"type": "STRING"},
					"nutrition": map[string]interface{}{
						"type": "OBJECT",
						"properties": map[string]interface{}{
							"calories": map[string]interface{}{"type": "STRING"},
							"protein":  map[string]interface{}{"type": "STRING"},
							"carbs":    map[string]interface{}{"type": "STRING"},
							"fat":      map[string]interface{}{"type": "STRING"},
						},
					},
				},
				"required": []string{"recipeName", "description", "ingredients", "steps"},
			},
		},
	}

	responseText, err := g.generateText(ctx, apiKey, g.textModel, requestBody)
	if err != nil {
		return domain.RecipeData{}, err
	}

	var recipe domain.RecipeData
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &recipe); err != nil {
		return domain.RecipeData{}, fmt.Errorf("failed to parse gemini response: %v - raw: %s", err, responseText)
	}

	return recipe, nil
}

func (g *geminiProvider) GenerateRecipeImage(ctx context.Context, apiKey string, recipeName string) (string, error) {
	prompt := fmt.Sprintf(
		"A bright, appetizing photo of the finished dish %q, plated on a clean table, "+
			"natural light, no text.",
		recipeName,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseModalities": []string{"TEXT", "IMAGE"},
		},
	}

	decoded, err := g.generateContent(ctx, apiKey, g.imageModel, requestBody)
	if err != nil {
		return "", err
	}

	for _, candidate := range decoded.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				mimeType := part.InlineData.MimeType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mimeType, part.InlineData.Data), nil
			}
		}
	}

	return "", fmt.Errorf("gemini returned no image data")
}

func (g *geminiProvider) ChatReply(ctx context.Context, apiKey string, history []domain.ChatMessage, message string) (string, error) {
	var transcript strings.Builder
	for _, msg := range history {
		transcript.WriteString(fmt.Sprintf("%s: %s\n", msg.Sender, msg.Text))
	}

	prompt := fmt.Sprintf(
		"You are a friendly neighbour in a food-sharing community who loves cooking and "+
			"knows a lot about ingredients. Continue the conversation naturally and keep "+
			"replies short.\n\nConversation so far:\n%sMe: %s",
		transcript.String(), message,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
		},
	}

	reply, err := g.generateText(ctx, apiKey, g.textModel, requestBody)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(reply), nil
}
