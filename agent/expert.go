// Package agent implements the Gemini-backed assistant of the cbk tool.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represents a chat with a business expert.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewBookkeeper returns the expert that answers questions about the book.
// The rendered book is handed over as system instruction so the expert can
// ground every answer in the actual entries.
func NewBookkeeper(book string) *Expert {
	return &Expert{
		Name:      "Bookkeeper",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the bookkeeper of a small income/expense book.
			The current book, newest entry first, is:

			` + book + `

			IN entries add to the balance, OUT entries subtract from it,
			INOUT entries are balance neutral. Answer questions about the
			entries and the balance, concisely, and never invent entries
			that are not in the book.
		`}}},
		},
	}
}

// Start creates the underlying Gemini chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to return the first text answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (string, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
