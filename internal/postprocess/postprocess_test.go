package postprocess

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Hoje é um bom dia.", "Hoje é um bom dia."},
		{"surrounding space", "  Hoje é um bom dia.\n", "Hoje é um bom dia."},
		{"think block", "<think>the user wants pt</think>Hoje é um bom dia.", "Hoje é um bom dia."},
		{"multiline thinking", "<thinking>\nstep 1\nstep 2\n</thinking>\nHoje é um bom dia.", "Hoje é um bom dia."},
		{"truncated reasoning", "Hoje é um bom dia. <reasoning>and then", "Hoje é um bom dia."},
		{"preamble", "Here is the translation: Hoje é um bom dia.", "Hoje é um bom dia."},
		{"polite preamble", "Sure, here's the translated text:\nHoje é um bom dia.", "Hoje é um bom dia."},
		{"language preamble", "Translation in Portuguese: Hoje é um bom dia.", "Hoje é um bom dia."},
		{"double quotes", `"Hoje é um bom dia."`, "Hoje é um bom dia."},
		{"guillemets", "«Hoje é um bom dia.»", "Hoje é um bom dia."},
		{"curly quotes", "“Hoje é um bom dia.”", "Hoje é um bom dia."},
		{"preamble then quotes", `Translation: "Hoje é um bom dia."`, "Hoje é um bom dia."},
		{"inner quotes kept", `Ele disse "sim" hoje.`, `Ele disse "sim" hoje.`},
		{"colon in body kept", "Conselho do dia: descanse.", "Conselho do dia: descanse."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
