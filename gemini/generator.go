// Package gemini implements the text-generation collaborator contract
// using Google Gemini.
package gemini

import (
	"context"

	"github.com/peekay/postsift"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Generator implements postsift.TextGenerator at compile time.
var _ postsift.TextGenerator = (*Generator)(nil)

// Generator implements postsift.TextGenerator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate sends a single prompt and returns the model's text response.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", postsift.Errorf(postsift.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", postsift.Errorf(postsift.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls. The
// low temperature keeps the tabular answers deterministic enough to parse.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.1)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert at extracting structured data from professional feed posts. Return CSV only, with no commentary.",
			}},
		},
		Temperature: &temp,
	}
}
