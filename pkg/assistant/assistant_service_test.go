package assistant

import (
	"KeepEat-Backend/domain"
	"context"
	"errors"
	"testing"
)

type stubSettingsService struct {
	settings domain.AppSettings
}

func (s *stubSettingsService) GetSettings(ctx context.Context, userID string) domain.AppSettings {
	return s.settings
}

func (s *stubSettingsService) SaveSettings(ctx context.Context, req domain.SaveSettingsRequest, userID string) domain.AppSettings {
	return s.settings
}

type recordingProvider struct {
	calls      int
	lastAPIKey string
	err        error
}

func (p *recordingProvider) ParseFoodText(ctx context.Context, apiKey string, text string) (domain.ParsedFoodItem, error) {
	p.calls++
	p.lastAPIKey = apiKey
	return domain.ParsedFoodItem{Name: "Milk"}, p.err
}

func (p *recordingProvider) AnalyzeFoodImage(ctx context.Context, apiKey string, image []byte, mimeType string, location string) (domain.ImageAnalysis, error) {
	p.calls++
	p.lastAPIKey = apiKey
	return domain.ImageAnalysis{}, p.err
}

func (p *recordingProvider) GenerateRecipe(ctx context.Context, apiKey string, ingredients []string) (domain.RecipeData, error) {
	p.calls++
	p.lastAPIKey = apiKey
	return domain.RecipeData{RecipeName: "Soup"}, p.err
}

func (p *recordingProvider) GenerateRecipeImage(ctx context.Context, apiKey string, recipeName string) (string, error) {
	p.calls++
	p.lastAPIKey = apiKey
	return "data:image/png;base64,aGVsbG8=", p.err
}

func (p *recordingProvider) ChatReply(ctx context.Context, apiKey string, history []domain.ChatMessage, message string) (string, error) {
	p.calls++
	p.lastAPIKey = apiKey
	return "hello", p.err
}

func TestParseFoodTextMissingKeyFailsBeforeProvider(t *testing.T) {
	provider := &recordingProvider{}
	service := NewAssistantService(provider, &stubSettingsService{settings: domain.DefaultSettings()})

	_, err := service.ParseFoodText(context.Background(), domain.ParseTextRequest{Text: "milk"}, "user-1")
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times before key check, want 0", provider.calls)
	}
}

func TestParseFoodTextUsesUserKey(t *testing.T) {
	provider := &recordingProvider{}
	settings := domain.DefaultSettings()
	settings.APIKey = "user-key"
	service := NewAssistantService(provider, &stubSettingsService{settings: settings})

	parsed, err := service.ParseFoodText(context.Background(), domain.ParseTextRequest{Text: "milk"}, "user-1")
	if err != nil {
		t.Fatalf("ParseFoodText failed: %v", err)
	}
	if parsed.Name != "Milk" {
		t.Errorf("Name = %q, want Milk", parsed.Name)
	}
	if provider.lastAPIKey != "user-key" {
		t.Errorf("provider received key %q, want user-key", provider.lastAPIKey)
	}
}

func TestParseFoodTextEmptyText(t *testing.T) {
	provider := &recordingProvider{}
	settings := domain.DefaultSettings()
	settings.APIKey = "user-key"
	service := NewAssistantService(provider, &stubSettingsService{settings: settings})

	_, err := service.ParseFoodText(context.Background(), domain.ParseTextRequest{Text: "   "}, "user-1")
	if !errors.Is(err, domain.ErrEmptyText) {
		t.Fatalf("err = %v, want ErrEmptyText", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for empty text, want 0", provider.calls)
	}
}

func TestProviderFailureWrappedAsAssistantFailed(t *testing.T) {
	provider := &recordingProvider{err: errors.New("connection refused")}
	settings := domain.DefaultSettings()
	settings.APIKey = "user-key"
	service := NewAssistantService(provider, &stubSettingsService{settings: settings})

	_, err := service.GenerateRecipe(context.Background(), []string{"tomato"}, "user-1")
	if !errors.Is(err, domain.ErrAssistantFailed) {
		t.Fatalf("err = %v, want wrapped ErrAssistantFailed", err)
	}
}

func TestGenerateRecipeNoIngredients(t *testing.T) {
	provider := &recordingProvider{}
	service := NewAssistantService(provider, &stubSettingsService{settings: domain.DefaultSettings()})

	_, err := service.GenerateRecipe(context.Background(), nil, "user-1")
	if !errors.Is(err, domain.ErrNoIngredients) {
		t.Fatalf("err = %v, want ErrNoIngredients", err)
	}
}

func TestChatReplyMissingKey(t *testing.T) {
	provider := &recordingProvider{}
	service := NewAssistantService(provider, &stubSettingsService{settings: domain.DefaultSettings()})

	_, err := service.ChatReply(context.Background(), domain.ChatRequest{Message: "hi"}, "user-1")
	if !errors.Is(err, domain.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}
