package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mariuschr/vinlookup-open/internal/models/dtos"
)

// ChatCompleter is the text-generation API contract.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request dtos.ChatCompletionRequest) (*dtos.ChatCompletionResponse, int, error)
}

// SalesTextService builds the structured sales prompt from a vehicle's model,
// color and ranked equipment and proxies it to the text-generation API. This
// sits outside the resolution core; quality of the copy is the model's
// problem, not ours.
type SalesTextService struct {
	completer ChatCompleter
}

func NewSalesTextService(completer ChatCompleter) *SalesTextService {
	return &SalesTextService{completer: completer}
}

const salesTextSystemPrompt = "Du er en erfaren bilselger som skriver korte, overbevisende salgstekster som fremhever bilens unike utstyr. Du skriver med selvtillit og presisjon, uten overdrevne adjektiv eller lange setninger."

const salesTextUserPrompt = `Kunden kjenner allerede til bilmodellen. Skriv derfor en direkte og slagkraftig annonsetekst som raskt fremhever hvorfor akkurat denne bilen skiller seg ut – på grunn av utstyrskombinasjonen.

Fremhev følgende ekstrautstyr på en konkret og lettfattelig måte, og forklar kort hvorfor det gjør bilen mer attraktiv: %s.

Ikke bruk ord som "verdi", "pris", eller teknisk sjargong. Ikke fokuser på bilen generelt, kun hvorfor denne er ekstra interessant. Teksten skal være kort, engasjerende og selgende – og få kunden til å ville se bilen.

Tilleggsinfo:
- Modell: %s
- Farge: %s`

// Generate produces marketing copy for the given vehicle facts.
func (svc *SalesTextService) Generate(ctx context.Context, request dtos.SalesTextRequest) (string, error) {
	color := request.Color
	if color == "" {
		color = "ukjent"
	}

	completion, _, err := svc.completer.CreateChatCompletion(ctx, dtos.ChatCompletionRequest{
		Model: "gpt-4o",
		Messages: []dtos.ChatMessage{
			{Role: "system", Content: salesTextSystemPrompt},
			{Role: "user", Content: fmt.Sprintf(salesTextUserPrompt,
				strings.Join(request.TopEquipment, ", "),
				request.Model,
				color,
			)},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	return completion.FirstChoiceContent(), nil
}
