package telegramclient

import "strings"

// Marcadores de negrito aplicados pelo integrador antes do escaping. Linhas
// inteiramente envolvidas por eles viram "> *texto*" na citação final.
const (
	BoldPrefix = "[[B]]"
	BoldSuffix = "[[/B]]"
)

var escapeChars = []string{
	"\\",
	"_",
	"*",
	"[",
	"]",
	"(",
	")",
	">",
	"#",
	"+",
	"-",
	"=",
	"|",
	"{",
	"}",
	".",
	"!",
	"~",
	"`",
}

// EscapeMarkdownV2 escapa todos os caracteres reservados do MarkdownV2.
func EscapeMarkdownV2(text string) string {
	result := text
	for _, ch := range escapeChars {
		result = strings.ReplaceAll(result, ch, "\\"+ch)
	}
	return result
}

// FormatQuoteMarkdownV2 converte o texto em um bloco de citação MarkdownV2,
// linha a linha, honrando os marcadores de negrito.
func FormatQuoteMarkdownV2(text string) string {
	lines := strings.Split(text, "\n")
	quoted := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.HasPrefix(line, BoldPrefix) && strings.HasSuffix(line, BoldSuffix) {
			content := line[len(BoldPrefix) : len(line)-len(BoldSuffix)]
			quoted = append(quoted, "> *"+EscapeMarkdownV2(content)+"*")
			continue
		}

		escaped := EscapeMarkdownV2(line)
		if escaped == "" {
			quoted = append(quoted, ">")
			continue
		}
		quoted = append(quoted, "> "+escaped)
	}

	return strings.Join(quoted, "\n")
}
