package resume

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "fenced with json tag",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "fenced without tag",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "prose around object",
			input: "Sure! Here it is: {\"a\": 1} Hope that helps.",
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "nested braces",
			input: `prefix {"a": {"b": 2}} suffix`,
			want:  `{"a": {"b": 2}}`,
			ok:    true,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "use {curly} braces"}`,
			want:  `{"text": "use {curly} braces"}`,
			ok:    true,
		},
		{
			name:  "escaped quote inside string",
			input: `{"text": "she said \"hi\" {x}"}`,
			want:  `{"text": "she said \"hi\" {x}"}`,
			ok:    true,
		},
		{
			name:  "no object",
			input: "I cannot produce that.",
			ok:    false,
		},
		{
			name:  "unbalanced",
			input: `{"a": 1`,
			ok:    false,
		},
		{
			name:  "fenced prose with object after fence",
			input: "```\nnot json here\n```\nbut {\"a\": 1} outside",
			want:  `{"a": 1}`,
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.input)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
